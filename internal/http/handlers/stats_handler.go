package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rpsarena/internal/domain"
)

// StatsHandler handles the read-only leaderboard and stats projections
type StatsHandler struct {
	leaderboardUseCase domain.LeaderboardUseCase
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(leaderboardUseCase domain.LeaderboardUseCase) *StatsHandler {
	return &StatsHandler{leaderboardUseCase: leaderboardUseCase}
}

// PlayerPayload is the full player projection returned by player lookups
type PlayerPayload struct {
	ID            int64              `json:"id"`
	PlayerName    string             `json:"playerName"`
	Email         string             `json:"email"`
	TotalGames    int                `json:"totalGames"`
	TotalWins     int                `json:"totalWins"`
	CurrentStreak int                `json:"currentStreak"`
	MaxStreak     int                `json:"maxStreak"`
	BestScore     int                `json:"bestScore"`
	GameHistory   domain.GameHistory `json:"gameHistory"`
	LastPlayed    time.Time          `json:"lastPlayed"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	WinRate       int                `json:"winRate"`
}

func toPlayerPayload(p *domain.Player) PlayerPayload {
	return PlayerPayload{
		ID:            p.ID,
		PlayerName:    p.PlayerName,
		Email:         p.Email,
		TotalGames:    p.TotalGames,
		TotalWins:     p.TotalWins,
		CurrentStreak: p.CurrentStreak,
		MaxStreak:     p.MaxStreak,
		BestScore:     p.BestScore,
		GameHistory:   p.GameHistory,
		LastPlayed:    p.LastPlayed,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		WinRate:       p.WinRate(),
	}
}

// Leaderboard returns the leaderboard projection
// @Summary Leaderboard
// @Description Top players descending by the chosen sort key
// @Tags stats
// @Produce json
// @Param limit query int false "Maximum rows" default(10)
// @Param sortBy query string false "bestScore | totalWins | totalGames | maxStreak" default(bestScore)
// @Success 200 {object} map[string]interface{}
// @Router /api/leaderboard [get]
func (h *StatsHandler) Leaderboard(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	sortKey := domain.ParseSortKey(c.DefaultQuery("sortBy", string(domain.SortByBestScore)))

	entries, total, err := h.leaderboardUseCase.Top(limit, sortKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"leaderboard":  entries,
		"totalPlayers": total,
	})
}

// PlayerByID returns a single player's aggregate
// @Summary Player by id
// @Tags stats
// @Produce json
// @Param id path int true "Player id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/player/{id} [get]
func (h *StatsHandler) PlayerByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Player not found"})
		return
	}

	player, err := h.leaderboardUseCase.PlayerByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "player": toPlayerPayload(player)})
}

// PlayerByName returns a single player's aggregate by display name
// @Summary Player by name
// @Tags stats
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/player/name/{name} [get]
func (h *StatsHandler) PlayerByName(c *gin.Context) {
	player, err := h.leaderboardUseCase.PlayerByName(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "player": toPlayerPayload(player)})
}

// GlobalStats returns aggregates over all players
// @Summary Global stats
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/stats [get]
func (h *StatsHandler) GlobalStats(c *gin.Context) {
	stats, err := h.leaderboardUseCase.GlobalStats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
