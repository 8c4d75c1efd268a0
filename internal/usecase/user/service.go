package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domainUser "sentiment-analysis-api/internal/domain/user"
	"sentiment-analysis-api/internal/logger"
	appErrors "sentiment-analysis-api/pkg/errors"
	"sentiment-analysis-api/pkg/utils"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// Service implements user management use cases
type Service struct {
	userRepo domainUser.Repository
}

// NewService creates a new user service
func NewService(userRepo domainUser.Repository) *Service {
	return &Service{userRepo: userRepo}
}

func (s *Service) GetByID(ctx context.Context, userID int64) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]*UserResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	users, err := s.userRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	return ToUserResponses(users), nil
}

// Update applies a partial update to the user. Only supplied fields change;
// a supplied password is re-hashed before persisting.
func (s *Service) Update(ctx context.Context, userID int64, req *UpdateUserRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.FullName != nil {
		user.FullName = req.FullName
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User updated",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return ToUserResponse(user), nil
}

// Deactivate soft-deletes the user by flipping the active flag. The row is
// never removed.
func (s *Service) Deactivate(ctx context.Context, userID int64) error {
	if err := s.userRepo.Deactivate(ctx, userID); err != nil {
		return err
	}

	logger.Info("User deactivated", zap.Int64("user_id", userID))

	return nil
}
