package user

import (
	"context"
)

// Repository defines the interface for user repository operations
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, skip, limit int) ([]*User, error)
	Update(ctx context.Context, user *User) error
	Deactivate(ctx context.Context, userID int64) error
}
