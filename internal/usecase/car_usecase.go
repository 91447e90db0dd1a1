package usecase

import "context"

// AddCarInput carries the parameters for adding a car to the fleet.
type AddCarInput struct {
	Brand string
	Model string
	Year  int
	VIN   string
}

// UpdateCarInput carries the parameters for updating a car.
type UpdateCarInput struct {
	ID    int64
	Brand string
	Model string
	Year  int
	VIN   string
}

// CarOutput is the public projection of a car.
type CarOutput struct {
	ID       int64
	Brand    string
	Model    string
	Year     int
	VIN      string
	IsActive bool
}

// CarUsecase manages the car fleet. Delete archives a car (soft delete);
// Restore brings it back.
type CarUsecase interface {
	GetAll(ctx context.Context) ([]*CarOutput, error)
	GetAllIncludingInactive(ctx context.Context) ([]*CarOutput, error)
	GetInactive(ctx context.Context) ([]*CarOutput, error)
	GetByID(ctx context.Context, id int64) (*CarOutput, error)
	Add(ctx context.Context, input *AddCarInput) (*CarOutput, error)
	Update(ctx context.Context, input *UpdateCarInput) error
	Delete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error

	// SearchByBrand returns active cars whose brand contains the given
	// substring. A blank query yields an empty result without a store call.
	SearchByBrand(ctx context.Context, brand string) ([]*CarOutput, error)
}
