package leaderboard

import (
	"github.com/saradorri/rpsarena/internal/domain"
	"github.com/saradorri/rpsarena/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// defaultLimit matches the original API when no limit is supplied
const defaultLimit = 10

// LeaderboardUseCase implements domain.LeaderboardUseCase. Read-only: it
// never mutates a player aggregate.
type LeaderboardUseCase struct {
	playerRepo domain.PlayerRepository
	logger     *logger.Logger
}

// NewLeaderboardUseCase creates a new leaderboard use case
func NewLeaderboardUseCase(playerRepo domain.PlayerRepository, logger *logger.Logger) domain.LeaderboardUseCase {
	return &LeaderboardUseCase{
		playerRepo: playerRepo,
		logger:     logger,
	}
}

// Top returns up to limit players ordered descending by the sort key,
// together with the total player count. Win rates are derived per row.
func (uc *LeaderboardUseCase) Top(limit int, sortKey domain.SortKey) ([]domain.LeaderboardEntry, int64, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	players, err := uc.playerRepo.List(limit, sortKey)
	if err != nil {
		uc.logger.Error("Failed to load leaderboard", zap.Error(err))
		return nil, 0, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to load leaderboard", 500, err)
	}

	total, err := uc.playerRepo.Count()
	if err != nil {
		uc.logger.Error("Failed to count players", zap.Error(err))
		return nil, 0, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to count players", 500, err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(players))
	for _, p := range players {
		entries = append(entries, domain.LeaderboardEntry{
			PlayerName:    p.PlayerName,
			BestScore:     p.BestScore,
			TotalWins:     p.TotalWins,
			TotalGames:    p.TotalGames,
			CurrentStreak: p.CurrentStreak,
			MaxStreak:     p.MaxStreak,
			LastPlayed:    p.LastPlayed,
			WinRate:       p.WinRate(),
		})
	}

	return entries, total, nil
}

// GlobalStats aggregates over all player rows
func (uc *LeaderboardUseCase) GlobalStats() (*domain.GlobalStats, error) {
	totalPlayers, err := uc.playerRepo.Count()
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to count players", 500, err)
	}

	totalGames, totalWins, err := uc.playerRepo.SumTotals()
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to aggregate totals", 500, err)
	}

	stats := &domain.GlobalStats{
		TotalPlayers:  totalPlayers,
		TotalGames:    totalGames,
		TotalWins:     totalWins,
		RecentPlayers: []domain.RecentPlayer{},
	}

	top, err := uc.playerRepo.TopByBestScore()
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to load top player", 500, err)
	}
	if top != nil {
		stats.TopPlayer = &domain.TopPlayer{PlayerName: top.PlayerName, BestScore: top.BestScore}
	}

	recent, err := uc.playerRepo.RecentlyPlayed(5)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to load recent players", 500, err)
	}
	for _, p := range recent {
		stats.RecentPlayers = append(stats.RecentPlayers, domain.RecentPlayer{
			PlayerName: p.PlayerName,
			LastPlayed: p.LastPlayed,
		})
	}

	return stats, nil
}

// PlayerByID returns a player aggregate by row id
func (uc *LeaderboardUseCase) PlayerByID(id int64) (*domain.Player, error) {
	player, err := uc.playerRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}
	return player, nil
}

// PlayerByName returns a player aggregate by display name
func (uc *LeaderboardUseCase) PlayerByName(name string) (*domain.Player, error) {
	player, err := uc.playerRepo.GetByName(name)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}
	return player, nil
}
