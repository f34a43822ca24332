package domain

import (
	"math"
	"time"
)

// Player represents a player's cumulative aggregate in the system
type Player struct {
	ID            int64       `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	PlayerName    string      `json:"playerName" gorm:"index;not null;type:varchar(50)"`
	Email         string      `json:"email" gorm:"uniqueIndex;not null;type:varchar(128)"`
	PasswordHash  string      `json:"-" gorm:"type:varchar(128)"`
	TotalGames    int         `json:"totalGames" gorm:"not null;default:0"`
	TotalWins     int         `json:"totalWins" gorm:"not null;default:0"`
	CurrentStreak int         `json:"currentStreak" gorm:"not null;default:0"`
	MaxStreak     int         `json:"maxStreak" gorm:"not null;default:0"`
	BestScore     int         `json:"bestScore" gorm:"not null;default:0"`
	GameHistory   GameHistory `json:"gameHistory" gorm:"type:jsonb"`
	LastPlayed    time.Time   `json:"lastPlayed" gorm:"not null"`
	CreatedAt     time.Time   `json:"createdAt" gorm:"not null"`
	UpdatedAt     time.Time   `json:"updatedAt" gorm:"not null"`
}

// TableName specifies the table name for Player
func (p Player) TableName() string {
	return "players"
}

// HasPassword reports whether the account has a credential attached.
// Accounts without one are passwordless (name-only).
func (p *Player) HasPassword() bool {
	return p.PasswordHash != ""
}

// WinRate derives the win percentage, rounded to the nearest integer.
// Never stored; always computed from the current totals.
func (p *Player) WinRate() int {
	if p.TotalGames <= 0 {
		return 0
	}
	return int(math.Round(float64(p.TotalWins) / float64(p.TotalGames) * 100))
}

// ApplyBatch folds a reported batch into the aggregate. Totals accumulate,
// the current streak is replaced by the batch's ending run, max streak and
// best score only ever grow, and the history is trimmed to HistoryLimit.
// A batch with no games and no history is a no-op.
//
// Counters are clamped so the aggregate invariants hold even for adversarial
// batch values. The one exception is totalWins <= totalGames: wins are not
// re-derived from the history, so a caller reporting inconsistent counters
// can break that relation. This mirrors the save endpoint's trust boundary.
func (p *Player) ApplyBatch(batch ScoreBatch, now time.Time) {
	if batch.IsEmpty() && len(batch.History) == 0 {
		return
	}
	p.TotalGames += max(batch.GamesPlayed, 0)
	p.TotalWins += max(batch.GamesWon, 0)
	p.CurrentStreak = max(batch.EndingStreak, 0)
	p.MaxStreak = max(p.MaxStreak, batch.PeakStreak, p.CurrentStreak)
	p.BestScore = max(p.BestScore, batch.PeakScore)
	p.GameHistory = p.GameHistory.Append(batch.History...)
	p.LastPlayed = now
	p.UpdatedAt = now
}

// PlayerRepository defines the interface for player data
type PlayerRepository interface {
	GetByID(id int64) (*Player, error)
	GetByEmail(email string) (*Player, error)
	GetByName(name string) (*Player, error)
	Create(player *Player) error
	Update(player *Player) error
	// ApplyScore folds a batch into the stored row using atomic increments
	// and GREATEST() for the monotonic fields, so concurrent saves for the
	// same player cannot lose counter updates. The merged history is written
	// as a whole.
	ApplyScore(playerID int64, batch ScoreBatch, history GameHistory, now time.Time) error
	List(limit int, sortKey SortKey) ([]*Player, error)
	Count() (int64, error)
	TopByBestScore() (*Player, error)
	RecentlyPlayed(limit int) ([]*Player, error)
	SumTotals() (totalGames int64, totalWins int64, err error)
}

// SortKey selects the leaderboard ordering column
type SortKey string

const (
	SortByBestScore  SortKey = "bestScore"
	SortByTotalWins  SortKey = "totalWins"
	SortByTotalGames SortKey = "totalGames"
	SortByMaxStreak  SortKey = "maxStreak"
)

// ParseSortKey whitelists a client-supplied sort key, falling back to
// bestScore for anything unknown.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByTotalWins, SortByTotalGames, SortByMaxStreak:
		return SortKey(s)
	default:
		return SortByBestScore
	}
}

// AuthResult is the outcome of a successful signup or login
type AuthResult struct {
	Token  string
	Player *Player
}

// AccountUseCase defines the interface for account business logic
type AccountUseCase interface {
	Signup(email, playerName, password string) (*AuthResult, error)
	Login(email, playerName, password string) (*AuthResult, error)
}

// ScoreSubmission is a save-score request after validation
type ScoreSubmission struct {
	Score         int
	TotalGames    int
	TotalWins     int
	WinRate       float64
	CurrentStreak int
	MaxStreak     int
	GameHistory   GameHistory
}

// ScoreReceipt identifies the player row and session recorded by a save
type ScoreReceipt struct {
	PlayerID  int64
	SessionID int64
}

// ScoreUseCase defines the interface for score-save business logic
type ScoreUseCase interface {
	SubmitScore(playerID int64, email string, sub ScoreSubmission) (*ScoreReceipt, error)
}

// LeaderboardEntry is a projected leaderboard row
type LeaderboardEntry struct {
	PlayerName    string    `json:"playerName"`
	BestScore     int       `json:"bestScore"`
	TotalWins     int       `json:"totalWins"`
	TotalGames    int       `json:"totalGames"`
	CurrentStreak int       `json:"currentStreak"`
	MaxStreak     int       `json:"maxStreak"`
	LastPlayed    time.Time `json:"lastPlayed"`
	WinRate       int       `json:"winRate"`
}

// TopPlayer is the best-score leader shown in global stats
type TopPlayer struct {
	PlayerName string `json:"playerName"`
	BestScore  int    `json:"bestScore"`
}

// RecentPlayer is a recently active player shown in global stats
type RecentPlayer struct {
	PlayerName string    `json:"playerName"`
	LastPlayed time.Time `json:"lastPlayed"`
}

// GlobalStats aggregates over all player rows
type GlobalStats struct {
	TotalPlayers  int64          `json:"totalPlayers"`
	TotalGames    int64          `json:"totalGames"`
	TotalWins     int64          `json:"totalWins"`
	TopPlayer     *TopPlayer     `json:"topPlayer"`
	RecentPlayers []RecentPlayer `json:"recentPlayers"`
}

// LeaderboardUseCase defines the read-only projection over stored aggregates
type LeaderboardUseCase interface {
	Top(limit int, sortKey SortKey) ([]LeaderboardEntry, int64, error)
	GlobalStats() (*GlobalStats, error)
	PlayerByID(id int64) (*Player, error)
	PlayerByName(name string) (*Player, error)
}
