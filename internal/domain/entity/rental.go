package entity

import (
	"time"

	domainerrors "carrental/internal/domain/errors"
)

// Rental represents a single rental of a car by a customer. A rental is
// Active while ReturnDate is nil and becomes Closed once it is set; Closed is
// terminal. Rentals are never soft-deleted.
type Rental struct {
	ID         int64
	CustomerID int64
	CarID      int64
	RentDate   time.Time
	ReturnDate *time.Time
}

// NewRental creates an active rental pending persistence. The rent date must
// be set; references are validated by the usecase layer against the store.
func NewRental(customerID, carID int64, rentDate time.Time) (*Rental, error) {
	if rentDate.IsZero() {
		return nil, domainerrors.NewDomainError("Rent date is required.")
	}

	return &Rental{
		CustomerID: customerID,
		CarID:      carID,
		RentDate:   rentDate,
	}, nil
}

// IsActive reports whether the car has not been returned yet.
func (r *Rental) IsActive() bool {
	return r.ReturnDate == nil
}

// Return closes the rental. The transition is guarded: a closed rental cannot
// be returned again, and the return date may not precede the rent date. Once
// set, the return date is immutable.
func (r *Rental) Return(returnDate time.Time) error {
	if r.ReturnDate != nil {
		return domainerrors.NewDomainError("Rental is already returned.")
	}
	if returnDate.Before(r.RentDate) {
		return domainerrors.NewDomainError("Return date cannot be earlier than rent date.")
	}

	r.ReturnDate = &returnDate

	return nil
}
