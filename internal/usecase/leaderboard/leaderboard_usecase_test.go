package leaderboard

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/saradorri/rpsarena/internal/domain"
	"github.com/saradorri/rpsarena/internal/domain/mocks"
	"github.com/saradorri/rpsarena/internal/infrastructure/logger"
)

func newTestUseCase(repo domain.PlayerRepository) *LeaderboardUseCase {
	return &LeaderboardUseCase{
		playerRepo: repo,
		logger:     logger.NewLogger("test", "debug"),
	}
}

func TestTopProjectsPlayers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lastPlayed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().List(2, domain.SortByBestScore).Return([]*domain.Player{
		{PlayerName: "Ada", BestScore: 12, TotalWins: 30, TotalGames: 40, CurrentStreak: 3, MaxStreak: 7, LastPlayed: lastPlayed},
		{PlayerName: "Grace", BestScore: 9, TotalWins: 10, TotalGames: 40, CurrentStreak: 0, MaxStreak: 4, LastPlayed: lastPlayed},
	}, nil)
	mockRepo.EXPECT().Count().Return(int64(5), nil)

	uc := newTestUseCase(mockRepo)
	entries, total, err := uc.Top(2, domain.SortByBestScore)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, entries, 2)
	assert.Equal(t, "Ada", entries[0].PlayerName)
	assert.Equal(t, 12, entries[0].BestScore)
	assert.Equal(t, 75, entries[0].WinRate)
	assert.Equal(t, 25, entries[1].WinRate)
}

func TestTopDefaultsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().List(defaultLimit, domain.SortByTotalWins).Return([]*domain.Player{}, nil)
	mockRepo.EXPECT().Count().Return(int64(0), nil)

	uc := newTestUseCase(mockRepo)
	entries, total, err := uc.Top(0, domain.SortByTotalWins)

	assert.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, entries)
}

func TestTopListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().List(10, domain.SortByBestScore).Return(nil, errors.New("timeout"))

	uc := newTestUseCase(mockRepo)
	entries, _, err := uc.Top(10, domain.SortByBestScore)

	assert.Nil(t, entries)
	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeDatabaseQuery, appErr.Code)
}

func TestGlobalStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lastPlayed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().Count().Return(int64(3), nil)
	mockRepo.EXPECT().SumTotals().Return(int64(120), int64(70), nil)
	mockRepo.EXPECT().TopByBestScore().Return(&domain.Player{PlayerName: "Ada", BestScore: 12}, nil)
	mockRepo.EXPECT().RecentlyPlayed(5).Return([]*domain.Player{
		{PlayerName: "Grace", LastPlayed: lastPlayed},
	}, nil)

	uc := newTestUseCase(mockRepo)
	stats, err := uc.GlobalStats()

	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalPlayers)
	assert.Equal(t, int64(120), stats.TotalGames)
	assert.Equal(t, int64(70), stats.TotalWins)
	assert.Equal(t, "Ada", stats.TopPlayer.PlayerName)
	assert.Len(t, stats.RecentPlayers, 1)
	assert.Equal(t, "Grace", stats.RecentPlayers[0].PlayerName)
}

func TestGlobalStatsEmptyDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().Count().Return(int64(0), nil)
	mockRepo.EXPECT().SumTotals().Return(int64(0), int64(0), nil)
	mockRepo.EXPECT().TopByBestScore().Return(nil, nil)
	mockRepo.EXPECT().RecentlyPlayed(5).Return(nil, nil)

	uc := newTestUseCase(mockRepo)
	stats, err := uc.GlobalStats()

	assert.NoError(t, err)
	assert.Nil(t, stats.TopPlayer)
	// serializes as an empty array, never null
	assert.NotNil(t, stats.RecentPlayers)
	assert.Empty(t, stats.RecentPlayers)
}

func TestPlayerByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().GetByID(int64(42)).Return(&domain.Player{ID: 42, PlayerName: "Ada"}, nil)

	uc := newTestUseCase(mockRepo)
	player, err := uc.PlayerByID(42)

	assert.NoError(t, err)
	assert.Equal(t, "Ada", player.PlayerName)
}

func TestPlayerByIDNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().GetByID(int64(999)).Return(nil, nil)

	uc := newTestUseCase(mockRepo)
	player, err := uc.PlayerByID(999)

	assert.Nil(t, player)
	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodePlayerNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestPlayerByNameNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().GetByName("Ghost").Return(nil, nil)

	uc := newTestUseCase(mockRepo)
	player, err := uc.PlayerByName("Ghost")

	assert.Nil(t, player)
	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodePlayerNotFound, appErr.Code)
}
