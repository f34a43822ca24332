package score

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saradorri/rpsarena/internal/domain"
	"github.com/saradorri/rpsarena/internal/infrastructure/lock"
	"github.com/saradorri/rpsarena/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ScoreUseCase implements domain.ScoreUseCase
type ScoreUseCase struct {
	playerRepo  domain.PlayerRepository
	sessionRepo domain.SessionRepository
	lockManager *lock.PlayerLockManager
	logger      *logger.Logger
}

// NewScoreUseCase creates a new score use case
func NewScoreUseCase(
	playerRepo domain.PlayerRepository,
	sessionRepo domain.SessionRepository,
	lockManager *lock.PlayerLockManager,
	logger *logger.Logger,
) domain.ScoreUseCase {
	return &ScoreUseCase{
		playerRepo:  playerRepo,
		sessionRepo: sessionRepo,
		lockManager: lockManager,
		logger:      logger,
	}
}

// SubmitScore folds a reported batch into the caller's stored aggregate and
// records a game session. The player is resolved by the claim's id, falling
// back to its email.
//
// Reported counters are trusted as-is and never re-derived from the game
// history; a client can report whatever it likes about its own games. Known
// integrity gap, kept deliberately.
func (uc *ScoreUseCase) SubmitScore(playerID int64, email string, sub domain.ScoreSubmission) (*domain.ScoreReceipt, error) {
	player, err := uc.resolvePlayer(playerID, email)
	if err != nil {
		return nil, err
	}
	if player == nil {
		uc.logger.Warn("Score rejected - no player for token",
			zap.Int64("player_id", playerID),
			zap.String("email", email))
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found for token", 401, nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := uc.lockManager.Lock(ctx, player.ID); err != nil {
		return nil, domain.NewInternalError("Failed to serialize score save", err)
	}
	defer uc.lockManager.Unlock(player.ID)

	batch := domain.ScoreBatch{
		GamesPlayed:  sub.TotalGames,
		GamesWon:     sub.TotalWins,
		EndingStreak: sub.CurrentStreak,
		PeakStreak:   sub.MaxStreak,
		PeakScore:    sub.Score,
		History:      sub.GameHistory,
	}

	now := time.Now()

	// empty batches still record a session but leave the aggregate alone
	if !batch.IsEmpty() || len(batch.History) > 0 {
		merged := player.GameHistory.Append(batch.History...)
		if err := uc.playerRepo.ApplyScore(player.ID, batch, merged, now); err != nil {
			uc.logger.Error("Failed to apply score batch",
				zap.Int64("player_id", player.ID),
				zap.Error(err))
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to save score", 500, err)
		}
	}

	session := &domain.GameSession{
		PlayerID:      player.ID,
		SessionID:     uuid.NewString(),
		Score:         sub.Score,
		TotalGames:    sub.TotalGames,
		TotalWins:     sub.TotalWins,
		WinRate:       sub.WinRate,
		CurrentStreak: sub.CurrentStreak,
		MaxStreak:     sub.MaxStreak,
		GameHistory:   sub.GameHistory,
		EndedAt:       now,
	}
	if err := uc.sessionRepo.Create(session); err != nil {
		uc.logger.Error("Failed to record game session",
			zap.Int64("player_id", player.ID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to record game session", 500, err)
	}

	uc.logger.Info("Score saved",
		zap.Int64("player_id", player.ID),
		zap.Int("gamesPlayed", sub.TotalGames),
		zap.Int("gamesWon", sub.TotalWins),
		zap.Int("score", sub.Score))

	return &domain.ScoreReceipt{PlayerID: player.ID, SessionID: session.ID}, nil
}

func (uc *ScoreUseCase) resolvePlayer(playerID int64, email string) (*domain.Player, error) {
	if playerID > 0 {
		player, err := uc.playerRepo.GetByID(playerID)
		if err != nil {
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
		}
		if player != nil {
			return player, nil
		}
	}
	if email != "" {
		player, err := uc.playerRepo.GetByEmail(email)
		if err != nil {
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
		}
		return player, nil
	}
	return nil, nil
}
