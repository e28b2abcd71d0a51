package repository

import (
	"context"
	"errors"

	"github.com/rsubandi/account-service/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the given key.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when an insert violates a unique constraint
	// on username or email.
	ErrDuplicate = errors.New("username or email already registered")
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	SetEmailVerified(ctx context.Context, id string) error
}
