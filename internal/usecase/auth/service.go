package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sentiment-analysis-api/internal/config"
	domainUser "sentiment-analysis-api/internal/domain/user"
	"sentiment-analysis-api/internal/logger"
	appErrors "sentiment-analysis-api/pkg/errors"
	"sentiment-analysis-api/pkg/utils"
)

// Service implements registration, authentication and token issuance
type Service struct {
	userRepo domainUser.Repository
	config   *config.Config
}

// NewService creates a new auth service
func NewService(userRepo domainUser.Repository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		config:   cfg,
	}
}

// Register creates a new active, non-superuser account.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	// Check if username already exists
	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if existing != nil {
		logger.Warn("Registration failed - username exists",
			zap.String("username", req.Username),
		)
		return nil, appErrors.ErrDuplicateUsername
	}

	// Check if email already exists
	existing, err = s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		logger.Warn("Registration failed - email exists",
			zap.String("email", req.Email),
		)
		return nil, appErrors.ErrDuplicateEmail
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domainUser.User{
		Email:          req.Email,
		Username:       req.Username,
		HashedPassword: hashedPassword,
		FullName:       req.FullName,
		IsActive:       true,
		IsSuperuser:    false,
	}

	// The store enforces uniqueness as well; a concurrent registration
	// surfaces here as a duplicate sentinel.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("New user registered",
		zap.String("username", user.Username),
		zap.Int64("user_id", user.ID),
	)

	return ToUserResponse(user), nil
}

// Authenticate verifies the credentials and returns the user on success.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domainUser.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Failed login attempt", zap.String("username", username))
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.HashedPassword, password) {
		logger.Warn("Invalid password", zap.String("username", username))
		return nil, appErrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.Warn("Inactive user login attempt", zap.String("username", username))
		return nil, appErrors.ErrUserInactive
	}

	return user, nil
}

// Login authenticates and issues a signed bearer token.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	return s.IssueToken(user)
}

// IssueToken wraps token generation with the configured expiry window.
func (s *Service) IssueToken(user *domainUser.User) (*TokenResponse, error) {
	ttl := time.Duration(s.config.JWT.ExpiryMinutes) * time.Minute

	token, err := utils.GenerateToken(user.Username, s.config.JWT.Secret, s.config.JWT.Algorithm, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Token created", zap.String("username", user.Username))

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
