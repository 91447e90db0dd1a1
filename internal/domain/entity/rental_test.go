package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "carrental/internal/domain/errors"
)

func TestNewRental_StartsActive(t *testing.T) {
	rentDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	rental, err := NewRental(1, 2, rentDate)
	require.NoError(t, err)

	assert.EqualValues(t, 1, rental.CustomerID)
	assert.EqualValues(t, 2, rental.CarID)
	assert.Equal(t, rentDate, rental.RentDate)
	assert.Nil(t, rental.ReturnDate)
	assert.True(t, rental.IsActive())
}

func TestNewRental_RequiresRentDate(t *testing.T) {
	_, err := NewRental(1, 2, time.Time{})
	require.Error(t, err)

	var domainErr *domainerrors.DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestRental_Return(t *testing.T) {
	rentDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	returnDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	rental, err := NewRental(1, 2, rentDate)
	require.NoError(t, err)

	require.NoError(t, rental.Return(returnDate))
	assert.False(t, rental.IsActive())
	require.NotNil(t, rental.ReturnDate)
	assert.Equal(t, returnDate, *rental.ReturnDate)
}

func TestRental_ReturnSameDayAllowed(t *testing.T) {
	rentDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	rental, err := NewRental(1, 2, rentDate)
	require.NoError(t, err)

	assert.NoError(t, rental.Return(rentDate))
}

func TestRental_ReturnBeforeRentDateRejected(t *testing.T) {
	rentDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	rental, err := NewRental(1, 2, rentDate)
	require.NoError(t, err)

	err = rental.Return(rentDate.Add(-24 * time.Hour))
	require.Error(t, err)
	assert.EqualError(t, err, "Return date cannot be earlier than rent date.")
	assert.True(t, rental.IsActive(), "rental must stay active after a rejected return")
}

func TestRental_DoubleReturnRejected(t *testing.T) {
	rentDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	firstReturn := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	rental, err := NewRental(1, 2, rentDate)
	require.NoError(t, err)
	require.NoError(t, rental.Return(firstReturn))

	err = rental.Return(firstReturn.Add(24 * time.Hour))
	require.Error(t, err)
	assert.EqualError(t, err, "Rental is already returned.")

	// The first return date is immutable.
	require.NotNil(t, rental.ReturnDate)
	assert.Equal(t, firstReturn, *rental.ReturnDate)
}
