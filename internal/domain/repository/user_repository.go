package repository

import (
	"context"
	"errors"

	"carrental/internal/domain/entity"
)

// ErrUserNotFound is returned when a user lookup matches no row.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameTaken is returned by Create or Update when the unique username
// constraint rejects the write.
var ErrUsernameTaken = errors.New("username already taken")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by ID, whether active or not.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single active user by exact username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAll retrieves all active users.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindAllIncludingInactive retrieves every user, archived ones included.
	FindAllIncludingInactive(ctx context.Context) ([]*entity.User, error)

	// FindInactive retrieves only archived users.
	FindInactive(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user and assigns its ID.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user.
	Update(ctx context.Context, user *entity.User) error

	// SetActive flips the soft-delete flag of a user.
	SetActive(ctx context.Context, id int64, isActive bool) error
}
