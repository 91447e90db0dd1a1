package impl

import (
	"context"

	"carrental/internal/domain/repository"
	"carrental/internal/errors"
	"carrental/internal/usecase"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	carRepo      repository.CarRepository
	customerRepo repository.CustomerRepository
	rentalRepo   repository.RentalRepository
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
	rentalRepo repository.RentalRepository,
) usecase.DashboardUsecase {
	return &dashboardService{
		carRepo:      carRepo,
		customerRepo: customerRepo,
		rentalRepo:   rentalRepo,
	}
}

// GetSummary counts active cars, active customers and open rentals. The
// counts are read independently, so a mutation landing between reads can
// skew the summary by one; the dashboard is informational only.
func (srv *dashboardService) GetSummary(ctx context.Context) (*usecase.DashboardSummary, error) {
	cars, err := srv.carRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count cars")
	}

	customers, err := srv.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}

	rentals, err := srv.rentalRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active rentals")
	}

	return &usecase.DashboardSummary{
		TotalCars:      len(cars),
		TotalCustomers: len(customers),
		ActiveRentals:  len(rentals),
	}, nil
}
