package app

import (
	"github.com/saradorri/rpsarena/internal/domain"
	"github.com/saradorri/rpsarena/internal/http/handlers"
)

func (a *application) InitAuthHandler(uc domain.AccountUseCase) *handlers.AuthHandler {
	return handlers.NewAuthHandler(uc)
}

func (a *application) InitScoreHandler(uc domain.ScoreUseCase) *handlers.ScoreHandler {
	return handlers.NewScoreHandler(uc)
}

func (a *application) InitStatsHandler(uc domain.LeaderboardUseCase) *handlers.StatsHandler {
	return handlers.NewStatsHandler(uc)
}
