package app

import (
	"github.com/saradorri/rpsarena/internal/domain"
	"github.com/saradorri/rpsarena/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitRepository(db *gorm.DB) (domain.PlayerRepository, domain.SessionRepository) {
	return repository.NewPlayerRepository(db), repository.NewSessionRepository(db)
}
