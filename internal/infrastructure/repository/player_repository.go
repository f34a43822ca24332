package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/saradorri/rpsarena/internal/domain"

	"gorm.io/gorm"
)

// sortColumns maps leaderboard sort keys to their columns. Keys are
// whitelisted in the domain; anything else never reaches this map.
var sortColumns = map[domain.SortKey]string{
	domain.SortByBestScore:  "best_score",
	domain.SortByTotalWins:  "total_wins",
	domain.SortByTotalGames: "total_games",
	domain.SortByMaxStreak:  "max_streak",
}

// PlayerRepository implements domain.PlayerRepository
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id int64) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("id = ?", id).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetByEmail retrieves a player by email, case-insensitively
func (r *PlayerRepository) GetByEmail(email string) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("lower(email) = ?", strings.ToLower(email)).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetByName retrieves a player by display name
func (r *PlayerRepository) GetByName(name string) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("player_name = ?", name).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// Create creates a new player
func (r *PlayerRepository) Create(player *domain.Player) error {
	now := time.Now()
	player.Email = strings.ToLower(player.Email)
	player.CreatedAt = now
	player.UpdatedAt = now
	if player.LastPlayed.IsZero() {
		player.LastPlayed = now
	}
	return r.db.Create(player).Error
}

// Update updates an existing player
func (r *PlayerRepository) Update(player *domain.Player) error {
	player.UpdatedAt = time.Now()
	return r.db.Save(player).Error
}

// ApplyScore folds a batch into the stored row. Counter columns use atomic
// increments and GREATEST so concurrent saves for the same player cannot
// lose updates; the merged history is written whole.
func (r *PlayerRepository) ApplyScore(playerID int64, batch domain.ScoreBatch, history domain.GameHistory, now time.Time) error {
	return r.db.Model(&domain.Player{}).
		Where("id = ?", playerID).
		Updates(map[string]interface{}{
			"total_games":    gorm.Expr("total_games + ?", max(batch.GamesPlayed, 0)),
			"total_wins":     gorm.Expr("total_wins + ?", max(batch.GamesWon, 0)),
			"current_streak": max(batch.EndingStreak, 0),
			"max_streak":     gorm.Expr("GREATEST(max_streak, ?)", max(batch.PeakStreak, batch.EndingStreak, 0)),
			"best_score":     gorm.Expr("GREATEST(best_score, ?)", max(batch.PeakScore, 0)),
			"game_history":   history,
			"last_played":    now,
			"updated_at":     now,
		}).Error
}

// List returns players ordered descending by the sort key. Ties keep the
// storage order, which is stable for repeated reads.
func (r *PlayerRepository) List(limit int, sortKey domain.SortKey) ([]*domain.Player, error) {
	column, ok := sortColumns[sortKey]
	if !ok {
		column = "best_score"
	}

	var players []*domain.Player
	result := r.db.Order(column + " DESC").Limit(limit).Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}
	return players, nil
}

// Count returns the total number of players
func (r *PlayerRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&domain.Player{}).Count(&count)
	return count, result.Error
}

// TopByBestScore returns the single player with the highest best score
func (r *PlayerRepository) TopByBestScore() (*domain.Player, error) {
	var player domain.Player
	result := r.db.Order("best_score DESC").First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// RecentlyPlayed returns players ordered by most recent activity
func (r *PlayerRepository) RecentlyPlayed(limit int) ([]*domain.Player, error) {
	var players []*domain.Player
	result := r.db.Order("last_played DESC").Limit(limit).Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}
	return players, nil
}

// SumTotals aggregates games and wins over all players
func (r *PlayerRepository) SumTotals() (int64, int64, error) {
	var totals struct {
		Games int64
		Wins  int64
	}
	result := r.db.Model(&domain.Player{}).
		Select("COALESCE(SUM(total_games), 0) AS games, COALESCE(SUM(total_wins), 0) AS wins").
		Scan(&totals)
	if result.Error != nil {
		return 0, 0, result.Error
	}
	return totals.Games, totals.Wins, nil
}
