package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/writing-practice-api/internal/domain/entity"
)

// ErrDuplicate is returned when an insert violates a uniqueness rule of the store.
var ErrDuplicate = errors.New("duplicate record")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create stores u, assigning its ID and defaults, and returns the stored record.
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
	// FindByUsername returns the first user with the given username, or nil
	// without error when there is none.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
