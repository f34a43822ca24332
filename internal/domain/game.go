package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"
)

// Move represents a player's choice in a single game
type Move string

const (
	MoveRock     Move = "rock"
	MovePaper    Move = "paper"
	MoveScissors Move = "scissors"
)

// Moves lists all valid moves in canonical order
var Moves = []Move{MoveRock, MovePaper, MoveScissors}

// IsValid reports whether the move is one of rock, paper, scissors
func (m Move) IsValid() bool {
	return m == MoveRock || m == MovePaper || m == MoveScissors
}

// Outcome represents a game result from the user's perspective
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomeDraw Outcome = "draw"
)

// beats maps each move to the move it dominates
var beats = map[Move]Move{
	MoveRock:     MoveScissors,
	MovePaper:    MoveRock,
	MoveScissors: MovePaper,
}

// Resolve returns the outcome of a game from the user's perspective.
// Equal moves draw; otherwise the cyclic dominance table decides.
func Resolve(userMove, opponentMove Move) Outcome {
	if userMove == opponentMove {
		return OutcomeDraw
	}
	if beats[userMove] == opponentMove {
		return OutcomeWin
	}
	return OutcomeLose
}

// RandomMove returns a uniformly random move. Opponent simulation is the
// caller's policy, not part of Resolve.
func RandomMove() Move {
	return Moves[rand.Intn(len(Moves))]
}

// GameRecord is a single finished game. Immutable once created.
type GameRecord struct {
	UserChoice Move      `json:"userChoice"`
	CompChoice Move      `json:"compChoice"`
	Result     Outcome   `json:"result"`
	Timestamp  time.Time `json:"timestamp"`
}

// HistoryLimit caps the number of retained game records per player
const HistoryLimit = 50

// GameHistory is an ordered sequence of game records, oldest first.
// It marshals to a JSONB column so GORM can persist it directly.
type GameHistory []GameRecord

// Scan implements the sql.Scanner interface
func (h *GameHistory) Scan(value interface{}) error {
	if value == nil {
		*h = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal game history value: %v", value)
	}
	return json.Unmarshal(bytes, h)
}

// Value implements the driver.Valuer interface
func (h GameHistory) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}
	return json.Marshal(h)
}

// Append returns the history with records added, trimmed to the most recent
// HistoryLimit entries with relative order preserved.
func (h GameHistory) Append(records ...GameRecord) GameHistory {
	merged := make(GameHistory, 0, len(h)+len(records))
	merged = append(merged, h...)
	merged = append(merged, records...)
	if len(merged) > HistoryLimit {
		merged = merged[len(merged)-HistoryLimit:]
	}
	return merged
}

// ScoreBatch is a set of game outcomes reported together in one save request.
// Counters are client-reported running totals for the batch; EndingStreak is
// the run length at the end of the batch, PeakStreak and PeakScore the maxima
// observed during it.
type ScoreBatch struct {
	GamesPlayed  int
	GamesWon     int
	EndingStreak int
	PeakStreak   int
	PeakScore    int
	History      GameHistory
}

// IsEmpty reports whether the batch carries no played games
func (b ScoreBatch) IsEmpty() bool {
	return b.GamesPlayed == 0 && b.GamesWon == 0
}
