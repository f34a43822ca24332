// Package client is the HTTP client for the RPS Arena API, used by the
// terminal game. Calls are fire-and-forget from the game's perspective:
// failures are reported to the caller and local state is never rolled back.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/saradorri/rpsarena/internal/domain"
)

// APIError represents an error response from the API
type APIError struct {
	StatusCode int
	Message    string
	Fields     domain.ValidationErrors
}

// Error implements the error interface
func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s (%s)", e.Message, e.Fields.Error())
	}
	return e.Message
}

// IsUnauthorized reports whether the server rejected the credential
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// Client talks to the RPS Arena API
type Client struct {
	baseURL string
	token   string
	http    *retryablehttp.Client
}

// New creates a client against the given base URL
func New(baseURL string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 5 * time.Second
	rc.HTTPClient.Timeout = 30 * time.Second
	rc.Logger = nil

	return &Client{
		baseURL: baseURL,
		http:    rc,
	}
}

// SetToken attaches a bearer token to subsequent requests
func (c *Client) SetToken(token string) {
	c.token = token
}

// AuthPlayer is the player payload returned by auth endpoints
type AuthPlayer struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	PlayerName string `json:"playerName"`
	BestScore  int    `json:"bestScore"`
	TotalWins  int    `json:"totalWins"`
	TotalGames int    `json:"totalGames"`
}

// AuthResponse is the response of signup and login
type AuthResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	Player  AuthPlayer `json:"player"`
}

// Signup registers an account
func (c *Client) Signup(email, playerName, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "playerName": playerName, "password": password}
	var resp AuthResponse
	if err := c.sendRequest(http.MethodPost, "/api/auth/signup", body, http.StatusCreated, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// Login authenticates an account
func (c *Client) Login(email, playerName, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email}
	if playerName != "" {
		body["playerName"] = playerName
	}
	if password != "" {
		body["password"] = password
	}
	var resp AuthResponse
	if err := c.sendRequest(http.MethodPost, "/api/auth/login", body, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// ScoreRequest mirrors the save-score request body
type ScoreRequest struct {
	Score         int                `json:"score"`
	TotalGames    int                `json:"totalGames"`
	TotalWins     int                `json:"totalWins"`
	WinRate       float64            `json:"winRate"`
	CurrentStreak int                `json:"currentStreak"`
	MaxStreak     int                `json:"maxStreak"`
	GameHistory   domain.GameHistory `json:"gameHistory"`
}

// ScoreResponse is the save-score response
type ScoreResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PlayerID  int64  `json:"playerId"`
	SessionID int64  `json:"sessionId"`
}

// SaveScore reports the local running totals to the server
func (c *Client) SaveScore(req ScoreRequest) (*ScoreResponse, error) {
	var resp ScoreResponse
	if err := c.sendRequest(http.MethodPost, "/api/scores", req, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LeaderboardResponse is the leaderboard projection
type LeaderboardResponse struct {
	Success      bool                      `json:"success"`
	Leaderboard  []domain.LeaderboardEntry `json:"leaderboard"`
	TotalPlayers int64                     `json:"totalPlayers"`
}

// Leaderboard fetches the top players
func (c *Client) Leaderboard(limit int, sortBy string) (*LeaderboardResponse, error) {
	path := fmt.Sprintf("/api/leaderboard?limit=%d&sortBy=%s", limit, sortBy)
	var resp LeaderboardResponse
	if err := c.sendRequest(http.MethodGet, path, nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StatsResponse is the global stats projection
type StatsResponse struct {
	Success bool               `json:"success"`
	Stats   domain.GlobalStats `json:"stats"`
}

// GlobalStats fetches aggregates over all players
func (c *Client) GlobalStats() (*StatsResponse, error) {
	var resp StatsResponse
	if err := c.sendRequest(http.MethodGet, "/api/stats", nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// errorBody is the API error envelope
type errorBody struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Errors  domain.ValidationErrors `json:"errors"`
}

// sendRequest sends an HTTP request and decodes the response
func (c *Client) sendRequest(method, path string, bodyData any, expectedStatus int, out any) error {
	var body io.Reader
	if bodyData != nil {
		jsonBytes, err := json.Marshal(bodyData)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := retryablehttp.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		var errResp errorBody
		if err := json.Unmarshal(respBody, &errResp); err == nil && (errResp.Message != "" || len(errResp.Errors) > 0) {
			message := errResp.Message
			if message == "" {
				message = "request rejected"
			}
			return &APIError{StatusCode: resp.StatusCode, Message: message, Fields: errResp.Errors}
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
