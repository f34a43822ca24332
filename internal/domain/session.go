package domain

import "time"

// GameSession is an archived save request: the batch a client reported in a
// single save, kept alongside the merged player aggregate.
type GameSession struct {
	ID            int64       `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	PlayerID      int64       `json:"playerId" gorm:"index;not null;type:bigint"`
	SessionID     string      `json:"sessionId" gorm:"type:varchar(64);not null"`
	Score         int         `json:"score" gorm:"not null;default:0"`
	TotalGames    int         `json:"totalGames" gorm:"not null;default:0"`
	TotalWins     int         `json:"totalWins" gorm:"not null;default:0"`
	WinRate       float64     `json:"winRate" gorm:"type:numeric(5,2);not null;default:0"`
	CurrentStreak int         `json:"currentStreak" gorm:"not null;default:0"`
	MaxStreak     int         `json:"maxStreak" gorm:"not null;default:0"`
	GameHistory   GameHistory `json:"gameHistory" gorm:"type:jsonb"`
	StartedAt     time.Time   `json:"startedAt" gorm:"not null"`
	EndedAt       time.Time   `json:"endedAt" gorm:"not null"`

	Player Player `json:"-" gorm:"foreignKey:PlayerID"`
}

// TableName specifies the table name for GameSession
func (s GameSession) TableName() string {
	return "game_sessions"
}

// SessionRepository defines the interface for game session data
type SessionRepository interface {
	Create(session *GameSession) error
	GetByPlayerID(playerID int64, limit, offset int) ([]*GameSession, error)
}
