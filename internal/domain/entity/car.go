// Package entity contains the core business objects of the application. All
// entities are built through validating constructors; an entity that exists
// is always in a consistent state. Identity is assigned by the store on
// insert, so a zero ID marks an entity that has not been persisted yet.
package entity

import (
	"strings"

	domainerrors "carrental/internal/domain/errors"
)

// Year bounds for cars accepted into the fleet.
const (
	MinCarYear = 1950
	MaxCarYear = 2100
)

// Car represents a car that can be rented. Cars are archived with the
// IsActive flag instead of being deleted, so historical rentals keep a valid
// reference.
type Car struct {
	ID       int64
	Brand    string
	Model    string
	Year     int
	VIN      string
	IsActive bool
}

// NewCar validates the input and creates a Car pending persistence.
func NewCar(brand, model string, year int, vin string) (*Car, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, domainerrors.NewDomainError("Brand cannot be empty.")
	}

	model = strings.TrimSpace(model)
	if model == "" {
		return nil, domainerrors.NewDomainError("Model cannot be empty.")
	}

	if year < MinCarYear || year > MaxCarYear {
		return nil, domainerrors.NewDomainError("Year is out of valid range.")
	}

	vin = strings.TrimSpace(vin)
	if vin == "" {
		return nil, domainerrors.NewDomainError("VIN cannot be empty.")
	}

	return &Car{
		Brand:    brand,
		Model:    model,
		Year:     year,
		VIN:      vin,
		IsActive: true,
	}, nil
}
