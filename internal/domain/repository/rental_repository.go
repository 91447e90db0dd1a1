package repository

import (
	"context"
	"errors"

	"carrental/internal/domain/entity"
)

// ErrRentalNotFound is returned when a rental lookup matches no row.
var ErrRentalNotFound = errors.New("rental not found")

// ErrCarAlreadyRented is returned by Create when the storage-level constraint
// on one open rental per car rejects the insert. It closes the race between
// two concurrent rent attempts that both passed the availability check.
var ErrCarAlreadyRented = errors.New("car already has an active rental")

// RentalRepository defines the operations for rental persistence. Rentals
// have no active flag and are never soft-deleted; they only move from active
// to closed when the return date is set.
type RentalRepository interface {
	// FindByID retrieves a single rental by ID.
	FindByID(ctx context.Context, id int64) (*entity.Rental, error)

	// FindAll retrieves all rentals, most recent rent date first.
	FindAll(ctx context.Context) ([]*entity.Rental, error)

	// FindActive retrieves rentals without a return date, most recent rent
	// date first.
	FindActive(ctx context.Context) ([]*entity.Rental, error)

	// Create persists a new rental and assigns its ID.
	Create(ctx context.Context, rental *entity.Rental) error

	// Update modifies an existing rental.
	Update(ctx context.Context, rental *entity.Rental) error
}
