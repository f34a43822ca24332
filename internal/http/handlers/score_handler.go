package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rpsarena/internal/domain"
)

// ScoreHandler handles HTTP requests for score saves
type ScoreHandler struct {
	scoreUseCase domain.ScoreUseCase
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoreUseCase domain.ScoreUseCase) *ScoreHandler {
	return &ScoreHandler{scoreUseCase: scoreUseCase}
}

// ScoreRequest represents the save-score request body. Numeric fields are
// pointers so a reported zero still passes the required check.
type ScoreRequest struct {
	Score         *int               `json:"score" binding:"required" example:"7"`
	TotalGames    *int               `json:"totalGames" binding:"required" example:"20"`
	TotalWins     *int               `json:"totalWins" binding:"required" example:"11"`
	WinRate       *float64           `json:"winRate" binding:"required" example:"55"`
	CurrentStreak *int               `json:"currentStreak" binding:"required" example:"2"`
	MaxStreak     *int               `json:"maxStreak" binding:"required" example:"5"`
	GameHistory   domain.GameHistory `json:"gameHistory"`
}

// ScoreResponse represents the save-score response body
type ScoreResponse struct {
	Success   bool   `json:"success" example:"true"`
	Message   string `json:"message" example:"Score saved successfully"`
	PlayerID  int64  `json:"playerId" example:"42"`
	SessionID int64  `json:"sessionId" example:"1337"`
}

// Save handles a score save for the authenticated player
// @Summary Save score
// @Description Fold a reported batch of games into the player's stored aggregate
// @Tags scores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ScoreRequest true "Reported batch"
// @Success 200 {object} ScoreResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/scores [post]
func (h *ScoreHandler) Save(c *gin.Context) {
	var req ScoreRequest
	if !bindJSON(c, &req) {
		return
	}

	playerID, email, ok := h.claimIdentity(c)
	if !ok {
		return
	}

	receipt, err := h.scoreUseCase.SubmitScore(playerID, email, domain.ScoreSubmission{
		Score:         *req.Score,
		TotalGames:    *req.TotalGames,
		TotalWins:     *req.TotalWins,
		WinRate:       *req.WinRate,
		CurrentStreak: *req.CurrentStreak,
		MaxStreak:     *req.MaxStreak,
		GameHistory:   req.GameHistory,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ScoreResponse{
		Success:   true,
		Message:   "Score saved successfully",
		PlayerID:  receipt.PlayerID,
		SessionID: receipt.SessionID,
	})
}

// claimIdentity extracts the authenticated identity set by the JWT middleware
func (h *ScoreHandler) claimIdentity(c *gin.Context) (int64, string, bool) {
	playerIDStr, exists := c.Get("player_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Missing Authorization token"})
		return 0, "", false
	}

	playerID, err := strconv.ParseInt(playerIDStr.(string), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
		return 0, "", false
	}

	email := ""
	if v, exists := c.Get("email"); exists {
		email = v.(string)
	}

	return playerID, email, true
}
