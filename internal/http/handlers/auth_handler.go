package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rpsarena/internal/domain"
)

// AuthHandler handles HTTP requests for account operations
type AuthHandler struct {
	accountUseCase domain.AccountUseCase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountUseCase domain.AccountUseCase) *AuthHandler {
	return &AuthHandler{accountUseCase: accountUseCase}
}

// SignupRequest represents the signup request body
type SignupRequest struct {
	Email      string `json:"email" binding:"required,email" example:"ada@example.com"`
	PlayerName string `json:"playerName" binding:"required,min=2,max=50" example:"Ada"`
	Password   string `json:"password" binding:"required,min=6" example:"hunter22"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email" example:"ada@example.com"`
	PlayerName string `json:"playerName" binding:"omitempty,min=2,max=50" example:"Ada"`
	Password   string `json:"password" binding:"omitempty,min=6" example:"hunter22"`
}

// AuthPlayerInfo is the player payload returned by auth endpoints
type AuthPlayerInfo struct {
	ID         int64  `json:"id" example:"42"`
	Email      string `json:"email" example:"ada@example.com"`
	PlayerName string `json:"playerName" example:"Ada"`
	BestScore  int    `json:"bestScore,omitempty" example:"12"`
	TotalWins  int    `json:"totalWins,omitempty" example:"30"`
	TotalGames int    `json:"totalGames,omitempty" example:"57"`
}

// AuthResponse represents a successful auth response body
type AuthResponse struct {
	Success bool           `json:"success" example:"true"`
	Token   string         `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Player  AuthPlayerInfo `json:"player"`
}

// Signup handles account registration
// @Summary Sign up
// @Description Register a new account, or attach a password to an existing passwordless one
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.accountUseCase.Signup(req.Email, req.PlayerName, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Success: true,
		Token:   result.Token,
		Player: AuthPlayerInfo{
			ID:         result.Player.ID,
			Email:      result.Player.Email,
			PlayerName: result.Player.PlayerName,
		},
	})
}

// Login handles account authentication
// @Summary Log in
// @Description Authenticate an account and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.accountUseCase.Login(req.Email, req.PlayerName, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Token:   result.Token,
		Player: AuthPlayerInfo{
			ID:         result.Player.ID,
			Email:      result.Player.Email,
			PlayerName: result.Player.PlayerName,
			BestScore:  result.Player.BestScore,
			TotalWins:  result.Player.TotalWins,
			TotalGames: result.Player.TotalGames,
		},
	})
}
