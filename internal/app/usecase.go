package app

import (
	"github.com/saradorri/rpsarena/internal/domain"
	"github.com/saradorri/rpsarena/internal/infrastructure/auth"
	"github.com/saradorri/rpsarena/internal/infrastructure/lock"
	"github.com/saradorri/rpsarena/internal/infrastructure/logger"
	"github.com/saradorri/rpsarena/internal/usecase/account"
	"github.com/saradorri/rpsarena/internal/usecase/leaderboard"
	"github.com/saradorri/rpsarena/internal/usecase/score"
)

func (a *application) InitAccountUseCase(pr domain.PlayerRepository, jwt auth.JWTService, log *logger.Logger) domain.AccountUseCase {
	return account.NewAccountUseCase(pr, jwt, log)
}

func (a *application) InitScoreUseCase(
	pr domain.PlayerRepository,
	sr domain.SessionRepository,
	lm *lock.PlayerLockManager,
	log *logger.Logger,
) domain.ScoreUseCase {
	return score.NewScoreUseCase(pr, sr, lm, log)
}

func (a *application) InitLeaderboardUseCase(pr domain.PlayerRepository, log *logger.Logger) domain.LeaderboardUseCase {
	return leaderboard.NewLeaderboardUseCase(pr, log)
}
