package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/saradorri/rpsarena/internal/config"
	"github.com/saradorri/rpsarena/internal/domain"
	"github.com/saradorri/rpsarena/internal/domain/mocks"
	"github.com/saradorri/rpsarena/internal/http/handlers"
	"github.com/saradorri/rpsarena/internal/http/middleware"
	"github.com/saradorri/rpsarena/internal/infrastructure/auth"
	"github.com/saradorri/rpsarena/internal/infrastructure/lock"
	"github.com/saradorri/rpsarena/internal/infrastructure/logger"
	"github.com/saradorri/rpsarena/internal/usecase/account"
	"github.com/saradorri/rpsarena/internal/usecase/leaderboard"
	"github.com/saradorri/rpsarena/internal/usecase/score"
)

type serverFixture struct {
	server      *Server
	playerRepo  *mocks.MockPlayerRepository
	sessionRepo *mocks.MockSessionRepository
	jwtService  auth.JWTService
}

func newServerFixture(t *testing.T) *serverFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	playerRepo := mocks.NewMockPlayerRepository(ctrl)
	sessionRepo := mocks.NewMockSessionRepository(ctrl)

	log := logger.NewLogger("test", "debug")
	jwtService := auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	lockManager := lock.NewPlayerLockManager()

	accountUC := account.NewAccountUseCase(playerRepo, jwtService, log)
	scoreUC := score.NewScoreUseCase(playerRepo, sessionRepo, lockManager, log)
	leaderboardUC := leaderboard.NewLeaderboardUseCase(playerRepo, log)

	server := NewServer(
		jwtService,
		handlers.NewAuthHandler(accountUC),
		handlers.NewScoreHandler(scoreUC),
		handlers.NewStatsHandler(leaderboardUC),
		middleware.NewErrorHandler(log, "test"),
		log,
		nil,
		"8080",
	)

	return &serverFixture{
		server:      server,
		playerRepo:  playerRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
	}
}

func (f *serverFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.server.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	f := newServerFixture(t)

	w := f.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "OK", body["status"])
}

func TestDBHealthDegradedWithoutDatabase(t *testing.T) {
	f := newServerFixture(t)

	w := f.do(t, http.MethodGet, "/health/db", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "DEGRADED", body["status"])
	assert.Equal(t, false, body["connected"])
}

func TestUnknownRouteReturns404(t *testing.T) {
	f := newServerFixture(t)

	w := f.do(t, http.MethodGet, "/api/does-not-exist", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Route not found", body["message"])
}

func TestSignupEndpoint(t *testing.T) {
	f := newServerFixture(t)

	f.playerRepo.EXPECT().GetByEmail("alice@example.com").Return(nil, nil)
	f.playerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *domain.Player) error {
		p.ID = 42
		return nil
	})

	w := f.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":      "alice@example.com",
		"playerName": "Alice",
		"password":   "secret123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])

	player := body["player"].(map[string]interface{})
	assert.Equal(t, float64(42), player["id"])
	assert.Equal(t, "Alice", player["playerName"])
}

func TestSignupValidationErrors(t *testing.T) {
	f := newServerFixture(t)

	w := f.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":      "not-an-email",
		"playerName": "A",
		"password":   "123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["errors"])
}

func TestSaveScoreRequiresToken(t *testing.T) {
	f := newServerFixture(t)

	w := f.do(t, http.MethodPost, "/api/scores", "", map[string]interface{}{
		"score": 1, "totalGames": 1, "totalWins": 1, "winRate": 100, "currentStreak": 1, "maxStreak": 1,
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Missing Authorization token", body["message"])
}

func TestSaveScoreRejectsInvalidToken(t *testing.T) {
	f := newServerFixture(t)

	w := f.do(t, http.MethodPost, "/api/scores", "garbage", map[string]interface{}{
		"score": 1, "totalGames": 1, "totalWins": 1, "winRate": 100, "currentStreak": 1, "maxStreak": 1,
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Invalid or expired token", body["message"])
}

func TestSaveScoreEndpoint(t *testing.T) {
	f := newServerFixture(t)

	token, err := f.jwtService.GenerateToken("42", "alice@example.com", "Alice")
	assert.NoError(t, err)

	f.playerRepo.EXPECT().GetByID(int64(42)).Return(&domain.Player{ID: 42, Email: "alice@example.com"}, nil)
	f.playerRepo.EXPECT().ApplyScore(int64(42), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.sessionRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *domain.GameSession) error {
		s.ID = 7
		return nil
	})

	w := f.do(t, http.MethodPost, "/api/scores", token, map[string]interface{}{
		"score":         3,
		"totalGames":    10,
		"totalWins":     6,
		"winRate":       60,
		"currentStreak": 1,
		"maxStreak":     3,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Score saved successfully", body["message"])
	assert.Equal(t, float64(42), body["playerId"])
	assert.Equal(t, float64(7), body["sessionId"])
}

func TestSaveScoreAcceptsZeroValues(t *testing.T) {
	f := newServerFixture(t)

	token, err := f.jwtService.GenerateToken("42", "alice@example.com", "Alice")
	assert.NoError(t, err)

	f.playerRepo.EXPECT().GetByID(int64(42)).Return(&domain.Player{ID: 42}, nil)
	// an all-zero batch records a session but never touches the aggregate
	f.sessionRepo.EXPECT().Create(gomock.Any()).Return(nil)

	w := f.do(t, http.MethodPost, "/api/scores", token, map[string]interface{}{
		"score":         0,
		"totalGames":    0,
		"totalWins":     0,
		"winRate":       0,
		"currentStreak": 0,
		"maxStreak":     0,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaderboardEndpoint(t *testing.T) {
	f := newServerFixture(t)

	f.playerRepo.EXPECT().List(10, domain.SortByBestScore).Return([]*domain.Player{
		{PlayerName: "Ada", BestScore: 12, TotalGames: 4, TotalWins: 3},
	}, nil)
	f.playerRepo.EXPECT().Count().Return(int64(1), nil)

	w := f.do(t, http.MethodGet, "/api/leaderboard", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["totalPlayers"])

	entries := body["leaderboard"].([]interface{})
	first := entries[0].(map[string]interface{})
	assert.Equal(t, "Ada", first["playerName"])
	assert.Equal(t, float64(75), first["winRate"])
}

func TestLeaderboardRejectsUnknownSortColumn(t *testing.T) {
	f := newServerFixture(t)

	// unknown sortBy values silently fall back to bestScore
	f.playerRepo.EXPECT().List(10, domain.SortByBestScore).Return([]*domain.Player{}, nil)
	f.playerRepo.EXPECT().Count().Return(int64(0), nil)

	w := f.do(t, http.MethodGet, "/api/leaderboard?sortBy=password_hash", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlayerByIDEndpoint(t *testing.T) {
	f := newServerFixture(t)

	f.playerRepo.EXPECT().GetByID(int64(42)).Return(&domain.Player{
		ID: 42, PlayerName: "Ada", TotalGames: 4, TotalWins: 3, BestScore: 12,
	}, nil)

	w := f.do(t, http.MethodGet, "/api/player/42", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	player := body["player"].(map[string]interface{})
	assert.Equal(t, "Ada", player["playerName"])
	assert.Equal(t, float64(75), player["winRate"])
}

func TestPlayerByIDNonNumeric(t *testing.T) {
	f := newServerFixture(t)

	w := f.do(t, http.MethodGet, "/api/player/abc", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Player not found", body["message"])
}

func TestPlayerByNameEndpoint(t *testing.T) {
	f := newServerFixture(t)

	f.playerRepo.EXPECT().GetByName("Ada").Return(&domain.Player{ID: 42, PlayerName: "Ada"}, nil)

	w := f.do(t, http.MethodGet, "/api/player/name/Ada", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	player := body["player"].(map[string]interface{})
	assert.Equal(t, "Ada", player["playerName"])
}

func TestGlobalStatsEndpoint(t *testing.T) {
	f := newServerFixture(t)

	f.playerRepo.EXPECT().Count().Return(int64(2), nil)
	f.playerRepo.EXPECT().SumTotals().Return(int64(20), int64(11), nil)
	f.playerRepo.EXPECT().TopByBestScore().Return(&domain.Player{PlayerName: "Ada", BestScore: 12}, nil)
	f.playerRepo.EXPECT().RecentlyPlayed(5).Return(nil, nil)

	w := f.do(t, http.MethodGet, "/api/stats", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["totalPlayers"])
	assert.Equal(t, float64(20), stats["totalGames"])

	// empty recent list serializes as [], not null
	recent, ok := stats["recentPlayers"].([]interface{})
	assert.True(t, ok)
	assert.Empty(t, recent)
}

func TestLoginEndpointUnknownEmail(t *testing.T) {
	f := newServerFixture(t)

	f.playerRepo.EXPECT().GetByEmail("ghost@example.com").Return(nil, nil)

	w := f.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "whatever",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Account not found. Please sign up.", body["message"])
}
