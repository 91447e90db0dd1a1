package usecase

import (
	"context"

	"carrental/internal/domain/entity"
)

// RegisterInput carries the parameters for registering a user account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     entity.Role
}

// LoginInput carries the credentials for a login attempt.
type LoginInput struct {
	Username string
	Password string
}

// UserOutput is the public projection of a user. It never carries the
// password hash or the salt.
type UserOutput struct {
	ID       int64
	Username string
	Email    string
	Role     entity.Role
}

// AuthUsecase registers and authenticates system users.
type AuthUsecase interface {
	// Register validates the input, rejects taken usernames, hashes the
	// password and persists the new account.
	Register(ctx context.Context, input *RegisterInput) (*UserOutput, error)

	// Login verifies the credentials. Bad credentials are not an error: the
	// result is simply nil. Blank username or password short-circuits to nil
	// without a store lookup. A non-nil error means an infrastructure
	// failure, never a wrong password.
	Login(ctx context.Context, input *LoginInput) (*UserOutput, error)
}
