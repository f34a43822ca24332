package repository

import (
	"time"

	"github.com/saradorri/rpsarena/internal/domain"

	"gorm.io/gorm"
)

// SessionRepository implements domain.SessionRepository
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new game session repository
func NewSessionRepository(db *gorm.DB) domain.SessionRepository {
	return &SessionRepository{db: db}
}

// Create records a game session
func (r *SessionRepository) Create(session *domain.GameSession) error {
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}
	if session.EndedAt.IsZero() {
		session.EndedAt = time.Now()
	}
	return r.db.Create(session).Error
}

// GetByPlayerID returns a player's sessions, newest first
func (r *SessionRepository) GetByPlayerID(playerID int64, limit, offset int) ([]*domain.GameSession, error) {
	var sessions []*domain.GameSession
	result := r.db.Where("player_id = ?", playerID).
		Order("ended_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}
	return sessions, nil
}
