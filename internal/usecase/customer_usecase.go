package usecase

import "context"

// AddCustomerInput carries the parameters for adding a customer.
type AddCustomerInput struct {
	Name  string
	Email string
}

// UpdateCustomerInput carries the parameters for updating a customer.
type UpdateCustomerInput struct {
	ID    int64
	Name  string
	Email string
}

// CustomerOutput is the public projection of a customer.
type CustomerOutput struct {
	ID       int64
	Name     string
	Email    string
	IsActive bool
}

// CustomerUsecase manages customers. Delete archives a customer (soft
// delete); Restore brings them back.
type CustomerUsecase interface {
	GetAll(ctx context.Context) ([]*CustomerOutput, error)
	GetAllIncludingInactive(ctx context.Context) ([]*CustomerOutput, error)
	GetInactive(ctx context.Context) ([]*CustomerOutput, error)
	GetByID(ctx context.Context, id int64) (*CustomerOutput, error)
	Add(ctx context.Context, input *AddCustomerInput) (*CustomerOutput, error)
	Update(ctx context.Context, input *UpdateCustomerInput) error
	Delete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error

	// SearchByName returns active customers whose name contains the given
	// substring. A blank query yields an empty result without a store call.
	SearchByName(ctx context.Context, name string) ([]*CustomerOutput, error)
}
