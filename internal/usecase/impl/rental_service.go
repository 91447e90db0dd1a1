// Package impl contains the implementation of the application's business
// logic.
package impl

import (
	"context"
	"log/slog"

	"carrental/internal/domain/entity"
	domainerrors "carrental/internal/domain/errors"
	"carrental/internal/domain/repository"
	"carrental/internal/errors"
	"carrental/internal/usecase"
)

// rentalService implements the RentalUsecase interface.
type rentalService struct {
	txManager  repository.TransactionManager
	rentalRepo repository.RentalRepository
	logger     *slog.Logger
}

// NewRentalService is the constructor for rentalService.
func NewRentalService(
	txManager repository.TransactionManager,
	rentalRepo repository.RentalRepository,
	logger *slog.Logger,
) usecase.RentalUsecase {
	return &rentalService{
		txManager:  txManager,
		rentalRepo: rentalRepo,
		logger:     logger,
	}
}

// RentCar creates an active rental after checking that the customer and car
// exist and are active and that the car is free. The availability check and
// the insert run in one transaction, and the partial unique index on open
// rentals backs the check up, so two concurrent attempts on the same car
// cannot both succeed.
func (srv *rentalService) RentCar(ctx context.Context, input *usecase.RentCarInput) (*usecase.RentalOutput, error) {
	var messages []string
	if input.CustomerID <= 0 {
		messages = append(messages, "Customer ID must be greater than zero.")
	}
	if input.CarID <= 0 {
		messages = append(messages, "Car ID must be greater than zero.")
	}
	if input.RentDate.IsZero() {
		messages = append(messages, "Rent date is required.")
	}
	if len(messages) > 0 {
		return nil, domainerrors.NewValidationError(messages...)
	}

	var rental *entity.Rental
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		customer, err := repos.CustomerRepo().FindByID(ctx, input.CustomerID)
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.NewNotFoundError("Customer", input.CustomerID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find customer")
		}
		if !customer.IsActive {
			return domainerrors.NewNotFoundError("Customer", input.CustomerID)
		}

		car, err := repos.CarRepo().FindByID(ctx, input.CarID)
		if errors.Is(err, repository.ErrCarNotFound) {
			return domainerrors.NewNotFoundError("Car", input.CarID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find car")
		}
		if !car.IsActive {
			return domainerrors.NewNotFoundError("Car", input.CarID)
		}

		activeRentals, err := repos.RentalRepo().FindActive(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list active rentals")
		}
		for _, active := range activeRentals {
			if active.CarID == input.CarID {
				return domainerrors.NewValidationError("Car is already rented.")
			}
		}

		rental, err = entity.NewRental(input.CustomerID, input.CarID, input.RentDate)
		if err != nil {
			return err
		}

		if err := repos.RentalRepo().Create(ctx, rental); err != nil {
			// The storage constraint caught a concurrent rent that slipped
			// past the availability check.
			if errors.Is(err, repository.ErrCarAlreadyRented) {
				return domainerrors.NewValidationError("Car is already rented.")
			}

			return errors.Wrap(err, "failed to create rental")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Car rented",
		slog.Int64("carID", input.CarID),
		slog.Int64("customerID", input.CustomerID),
		slog.Time("rentDate", input.RentDate))

	return toRentalOutput(rental), nil
}

// ReturnCar closes an active rental. The state transition itself is guarded
// by the entity; the service translates lookup misses and persists the
// result.
func (srv *rentalService) ReturnCar(ctx context.Context, input *usecase.ReturnCarInput) error {
	var messages []string
	if input.RentalID <= 0 {
		messages = append(messages, "Rental ID must be greater than zero.")
	}
	if input.ReturnDate.IsZero() {
		messages = append(messages, "Return date is required.")
	}
	if len(messages) > 0 {
		return domainerrors.NewValidationError(messages...)
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		rental, err := repos.RentalRepo().FindByID(ctx, input.RentalID)
		if errors.Is(err, repository.ErrRentalNotFound) {
			return domainerrors.NewNotFoundError("Rental", input.RentalID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find rental")
		}

		if err := rental.Return(input.ReturnDate); err != nil {
			return err
		}

		if err := repos.RentalRepo().Update(ctx, rental); err != nil {
			return errors.Wrap(err, "failed to update rental")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Car returned",
		slog.Int64("rentalID", input.RentalID),
		slog.Time("returnDate", input.ReturnDate))

	return nil
}

// GetAll returns every rental, most recent rent date first.
func (srv *rentalService) GetAll(ctx context.Context) ([]*usecase.RentalOutput, error) {
	rentals, err := srv.rentalRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rentals")
	}

	return toRentalOutputs(rentals), nil
}

// GetActive returns open rentals, most recent rent date first.
func (srv *rentalService) GetActive(ctx context.Context) ([]*usecase.RentalOutput, error) {
	rentals, err := srv.rentalRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active rentals")
	}

	return toRentalOutputs(rentals), nil
}

func toRentalOutput(rental *entity.Rental) *usecase.RentalOutput {
	return &usecase.RentalOutput{
		ID:         rental.ID,
		CustomerID: rental.CustomerID,
		CarID:      rental.CarID,
		RentDate:   rental.RentDate,
		ReturnDate: rental.ReturnDate,
		IsActive:   rental.IsActive(),
	}
}

func toRentalOutputs(rentals []*entity.Rental) []*usecase.RentalOutput {
	outputs := make([]*usecase.RentalOutput, 0, len(rentals))
	for _, rental := range rentals {
		outputs = append(outputs, toRentalOutput(rental))
	}

	return outputs
}
