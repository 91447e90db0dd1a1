// Package usecase defines the application's use-case interfaces and their
// input/output types. The delivery layer depends on these interfaces, never
// on the implementations in impl.
package usecase

import (
	"context"
	"time"
)

// RentCarInput carries the parameters for renting a car.
type RentCarInput struct {
	CustomerID int64
	CarID      int64
	RentDate   time.Time
}

// ReturnCarInput carries the parameters for returning a rented car.
type ReturnCarInput struct {
	RentalID   int64
	ReturnDate time.Time
}

// RentalOutput is the public projection of a rental.
type RentalOutput struct {
	ID         int64
	CustomerID int64
	CarID      int64
	RentDate   time.Time
	ReturnDate *time.Time
	IsActive   bool
}

// RentalUsecase orchestrates the rental lifecycle and guarantees at most one
// active rental per car.
type RentalUsecase interface {
	// RentCar validates the request, checks that the customer and car exist
	// and are active, verifies the car is not already rented, and creates an
	// active rental. The availability check and the insert are atomic.
	RentCar(ctx context.Context, input *RentCarInput) (*RentalOutput, error)

	// ReturnCar closes an active rental. Returning a closed rental or using
	// a return date before the rent date fails with a domain error.
	ReturnCar(ctx context.Context, input *ReturnCarInput) error

	// GetAll returns every rental, most recent rent date first.
	GetAll(ctx context.Context) ([]*RentalOutput, error)

	// GetActive returns rentals that have not been returned, most recent
	// rent date first.
	GetActive(ctx context.Context) ([]*RentalOutput, error)
}
