package account

import (
	"strconv"

	"github.com/saradorri/rpsarena/internal/domain"
	"github.com/saradorri/rpsarena/internal/infrastructure/auth"
	"github.com/saradorri/rpsarena/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// AccountUseCase implements domain.AccountUseCase
type AccountUseCase struct {
	playerRepo domain.PlayerRepository
	jwtSvc     auth.JWTService
	logger     *logger.Logger
}

// NewAccountUseCase creates a new account use case
func NewAccountUseCase(playerRepo domain.PlayerRepository, jwtSvc auth.JWTService, logger *logger.Logger) domain.AccountUseCase {
	return &AccountUseCase{
		playerRepo: playerRepo,
		jwtSvc:     jwtSvc,
		logger:     logger,
	}
}

// Signup registers a new account. An existing email with a password attached
// is a conflict; an email-only record is upgraded in place instead of
// duplicated. New accounts start with zero-valued counters.
func (uc *AccountUseCase) Signup(email, playerName, password string) (*domain.AuthResult, error) {
	uc.logger.Info("Starting signup", zap.String("email", email))

	existing, err := uc.playerRepo.GetByEmail(email)
	if err != nil {
		uc.logger.Error("Failed to look up account during signup",
			zap.String("email", email),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to look up account", 500, err)
	}

	if existing != nil && existing.HasPassword() {
		uc.logger.Warn("Signup rejected - email already registered", zap.String("email", email))
		return nil, domain.NewAppError(domain.ErrCodeEmailTaken, "Email already registered", 409, nil)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, domain.NewInternalError("Failed to hash password", err)
	}

	var player *domain.Player
	if existing != nil {
		existing.PlayerName = playerName
		existing.PasswordHash = hash
		if err := uc.playerRepo.Update(existing); err != nil {
			uc.logger.Error("Failed to upgrade passwordless account",
				zap.Int64("player_id", existing.ID),
				zap.Error(err))
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update account", 500, err)
		}
		player = existing
	} else {
		player = &domain.Player{
			Email:        email,
			PlayerName:   playerName,
			PasswordHash: hash,
		}
		if err := uc.playerRepo.Create(player); err != nil {
			uc.logger.Error("Failed to create account", zap.String("email", email), zap.Error(err))
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create account", 500, err)
		}
	}

	token, err := uc.issueToken(player)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Signup successful",
		zap.Int64("player_id", player.ID),
		zap.String("playerName", player.PlayerName))

	return &domain.AuthResult{Token: token, Player: player}, nil
}

// Login authenticates an account. Accounts with a password require a correct
// one; passwordless accounts log in without a credential check and may rename
// their display name.
func (uc *AccountUseCase) Login(email, playerName, password string) (*domain.AuthResult, error) {
	uc.logger.Info("Starting login", zap.String("email", email))

	player, err := uc.playerRepo.GetByEmail(email)
	if err != nil {
		uc.logger.Error("Failed to look up account during login",
			zap.String("email", email),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to look up account", 500, err)
	}

	if player == nil {
		uc.logger.Warn("Login failed - account not found", zap.String("email", email))
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Account not found. Please sign up.", 404, nil)
	}

	if player.HasPassword() {
		if password == "" {
			return nil, domain.NewAppError(domain.ErrCodePasswordRequired, "Password required", 400, nil)
		}
		if !auth.CheckPassword(password, player.PasswordHash) {
			uc.logger.Warn("Login failed - invalid password", zap.Int64("player_id", player.ID))
			return nil, domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
		}
	} else if playerName != "" && playerName != player.PlayerName {
		player.PlayerName = playerName
		if err := uc.playerRepo.Update(player); err != nil {
			uc.logger.Error("Failed to rename passwordless account",
				zap.Int64("player_id", player.ID),
				zap.Error(err))
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update account", 500, err)
		}
	}

	token, err := uc.issueToken(player)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Login successful",
		zap.Int64("player_id", player.ID),
		zap.String("playerName", player.PlayerName))

	return &domain.AuthResult{Token: token, Player: player}, nil
}

func (uc *AccountUseCase) issueToken(player *domain.Player) (string, error) {
	token, err := uc.jwtSvc.GenerateToken(strconv.FormatInt(player.ID, 10), player.Email, player.PlayerName)
	if err != nil {
		uc.logger.Error("Failed to generate JWT token",
			zap.Int64("player_id", player.ID),
			zap.Error(err))
		return "", domain.NewAppError(domain.ErrCodeTokenInvalid, "Token generation failed", 500, err)
	}
	return token, nil
}
