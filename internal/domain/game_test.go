package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		user     Move
		opponent Move
		expected Outcome
	}{
		{"Rock_Beats_Scissors", MoveRock, MoveScissors, OutcomeWin},
		{"Paper_Beats_Rock", MovePaper, MoveRock, OutcomeWin},
		{"Scissors_Beats_Paper", MoveScissors, MovePaper, OutcomeWin},
		{"Scissors_Loses_To_Rock", MoveScissors, MoveRock, OutcomeLose},
		{"Rock_Loses_To_Paper", MoveRock, MovePaper, OutcomeLose},
		{"Paper_Loses_To_Scissors", MovePaper, MoveScissors, OutcomeLose},
		{"Rock_Draws_Rock", MoveRock, MoveRock, OutcomeDraw},
		{"Paper_Draws_Paper", MovePaper, MovePaper, OutcomeDraw},
		{"Scissors_Draws_Scissors", MoveScissors, MoveScissors, OutcomeDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.user, tt.opponent))
		})
	}
}

func TestRandomMoveIsAlwaysValid(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.True(t, RandomMove().IsValid())
	}
}

func TestMoveIsValid(t *testing.T) {
	assert.True(t, MoveRock.IsValid())
	assert.True(t, MovePaper.IsValid())
	assert.True(t, MoveScissors.IsValid())
	assert.False(t, Move("lizard").IsValid())
	assert.False(t, Move("").IsValid())
}

func TestGameHistoryAppendCapsAtLimit(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var history GameHistory
	for i := 0; i < HistoryLimit+10; i++ {
		history = history.Append(GameRecord{
			UserChoice: MoveRock,
			CompChoice: MoveScissors,
			Result:     OutcomeWin,
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
		})
	}

	assert.Len(t, history, HistoryLimit)
	// oldest entries are evicted first
	assert.Equal(t, base.Add(10*time.Minute), history[0].Timestamp)
	assert.Equal(t, base.Add(time.Duration(HistoryLimit+9)*time.Minute), history[HistoryLimit-1].Timestamp)
}

func TestGameHistoryAppendPreservesOrder(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	stored := GameHistory{
		{UserChoice: MovePaper, CompChoice: MoveRock, Result: OutcomeWin, Timestamp: base},
	}
	merged := stored.Append(
		GameRecord{UserChoice: MoveRock, CompChoice: MoveRock, Result: OutcomeDraw, Timestamp: base.Add(time.Minute)},
		GameRecord{UserChoice: MoveScissors, CompChoice: MoveRock, Result: OutcomeLose, Timestamp: base.Add(2 * time.Minute)},
	)

	assert.Len(t, merged, 3)
	assert.Equal(t, OutcomeWin, merged[0].Result)
	assert.Equal(t, OutcomeDraw, merged[1].Result)
	assert.Equal(t, OutcomeLose, merged[2].Result)
	// the original slice is not mutated
	assert.Len(t, stored, 1)
}

func TestScoreBatchIsEmpty(t *testing.T) {
	assert.True(t, ScoreBatch{}.IsEmpty())
	assert.False(t, ScoreBatch{GamesPlayed: 1}.IsEmpty())
	assert.False(t, ScoreBatch{GamesWon: 1}.IsEmpty())
}

func TestGameHistoryJSONRoundtrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	history := GameHistory{
		{UserChoice: MoveRock, CompChoice: MovePaper, Result: OutcomeLose, Timestamp: now},
	}

	value, err := history.Value()
	assert.NoError(t, err)

	var decoded GameHistory
	assert.NoError(t, decoded.Scan(value))
	assert.Equal(t, history, decoded)
}

func TestGameHistoryScanNil(t *testing.T) {
	var h GameHistory
	assert.NoError(t, h.Scan(nil))
	assert.Nil(t, h)
}
