package account

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/saradorri/rpsarena/internal/config"
	"github.com/saradorri/rpsarena/internal/domain"
	"github.com/saradorri/rpsarena/internal/domain/mocks"
	"github.com/saradorri/rpsarena/internal/infrastructure/auth"
	"github.com/saradorri/rpsarena/internal/infrastructure/logger"
)

func newTestJWTService() auth.JWTService {
	return auth.NewJWTService(&config.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
	})
}

func newTestUseCase(repo domain.PlayerRepository) *AccountUseCase {
	return &AccountUseCase{
		playerRepo: repo,
		jwtSvc:     newTestJWTService(),
		logger:     logger.NewLogger("test", "debug"),
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	assert.NoError(t, err)
	return hash
}

func TestSignupCreatesNewAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().GetByEmail("alice@example.com").Return(nil, nil)
	mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *domain.Player) error {
		assert.Equal(t, "alice@example.com", p.Email)
		assert.Equal(t, "Alice", p.PlayerName)
		assert.True(t, p.HasPassword())
		assert.Zero(t, p.TotalGames)
		assert.Zero(t, p.BestScore)
		p.ID = 42
		return nil
	})

	uc := newTestUseCase(mockRepo)
	result, err := uc.Signup("alice@example.com", "Alice", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, int64(42), result.Player.ID)

	claims, err := newTestJWTService().ValidateToken(result.Token)
	assert.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(result.Player.ID, 10), claims.PlayerID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.PlayerName)
}

func TestSignupRejectsRegisteredEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().GetByEmail("alice@example.com").Return(&domain.Player{
		ID:           42,
		Email:        "alice@example.com",
		PasswordHash: hashOf(t, "secret123"),
	}, nil)

	uc := newTestUseCase(mockRepo)
	result, err := uc.Signup("alice@example.com", "Alice", "another")

	assert.Nil(t, result)
	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeEmailTaken, appErr.Code)
	assert.Equal(t, 409, appErr.HTTPStatus)
}

func TestSignupUpgradesPasswordlessAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &domain.Player{
		ID:         7,
		Email:      "bob@example.com",
		PlayerName: "OldBob",
		TotalGames: 12,
		TotalWins:  5,
		BestScore:  4,
	}

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().GetByEmail("bob@example.com").Return(existing, nil)
	mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *domain.Player) error {
		assert.Equal(t, int64(7), p.ID)
		assert.Equal(t, "Bob", p.PlayerName)
		assert.True(t, p.HasPassword())
		// counters survive the upgrade
		assert.Equal(t, 12, p.TotalGames)
		return nil
	})

	uc := newTestUseCase(mockRepo)
	result, err := uc.Signup("bob@example.com", "Bob", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), result.Player.ID)
	assert.Equal(t, 5, result.Player.TotalWins)
}

func TestLoginUnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().GetByEmail("ghost@example.com").Return(nil, nil)

	uc := newTestUseCase(mockRepo)
	result, err := uc.Login("ghost@example.com", "", "whatever")

	assert.Nil(t, result)
	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodePlayerNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestLoginPasswordAccountRequiresPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().GetByEmail("alice@example.com").Return(&domain.Player{
		ID:           42,
		Email:        "alice@example.com",
		PasswordHash: hashOf(t, "secret123"),
	}, nil)

	uc := newTestUseCase(mockRepo)
	result, err := uc.Login("alice@example.com", "", "")

	assert.Nil(t, result)
	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodePasswordRequired, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestLoginWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().GetByEmail("alice@example.com").Return(&domain.Player{
		ID:           42,
		Email:        "alice@example.com",
		PasswordHash: hashOf(t, "secret123"),
	}, nil)

	uc := newTestUseCase(mockRepo)
	result, err := uc.Login("alice@example.com", "", "wrong")

	assert.Nil(t, result)
	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
	assert.Equal(t, 401, appErr.HTTPStatus)
}

func TestLoginCorrectPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().GetByEmail("alice@example.com").Return(&domain.Player{
		ID:           42,
		Email:        "alice@example.com",
		PlayerName:   "Alice",
		PasswordHash: hashOf(t, "secret123"),
		TotalGames:   30,
		TotalWins:    20,
		BestScore:    9,
	}, nil)

	uc := newTestUseCase(mockRepo)
	result, err := uc.Login("alice@example.com", "", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, 9, result.Player.BestScore)
}

func TestLoginPasswordlessRename(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().GetByEmail("bob@example.com").Return(&domain.Player{
		ID:         7,
		Email:      "bob@example.com",
		PlayerName: "OldBob",
	}, nil)
	mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *domain.Player) error {
		assert.Equal(t, "NewBob", p.PlayerName)
		return nil
	})

	uc := newTestUseCase(mockRepo)
	result, err := uc.Login("bob@example.com", "NewBob", "")

	assert.NoError(t, err)
	assert.Equal(t, "NewBob", result.Player.PlayerName)
}

func TestLoginPasswordlessSameNameSkipsUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().GetByEmail("bob@example.com").Return(&domain.Player{
		ID:         7,
		Email:      "bob@example.com",
		PlayerName: "Bob",
	}, nil)

	uc := newTestUseCase(mockRepo)
	result, err := uc.Login("bob@example.com", "Bob", "")

	assert.NoError(t, err)
	assert.Equal(t, "Bob", result.Player.PlayerName)
}

func TestLoginRepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRepo.EXPECT().GetByEmail("alice@example.com").Return(nil, errors.New("connection refused"))

	uc := newTestUseCase(mockRepo)
	result, err := uc.Login("alice@example.com", "", "secret123")

	assert.Nil(t, result)
	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeDatabaseQuery, appErr.Code)
}
