package usecase

import (
	"context"

	"carrental/internal/domain/entity"
)

// CreateUserInput carries the parameters for an admin creating an account.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     entity.Role
}

// UpdateUserInput carries the parameters for updating an account. Empty
// fields are left unchanged.
type UpdateUserInput struct {
	ID       int64
	Username string
	Email    string
}

// UserManagementUsecase is the admin surface for managing accounts. Delete
// archives an account (soft delete).
type UserManagementUsecase interface {
	GetAll(ctx context.Context) ([]*UserOutput, error)
	GetByID(ctx context.Context, id int64) (*UserOutput, error)
	Create(ctx context.Context, input *CreateUserInput) (*UserOutput, error)
	Update(ctx context.Context, input *UpdateUserInput) (*UserOutput, error)
	ChangePassword(ctx context.Context, id int64, newPassword string) error
	ChangeRole(ctx context.Context, id int64, role entity.Role) error
	Delete(ctx context.Context, id int64) error
}
