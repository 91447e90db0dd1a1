package usecase

import "context"

// DashboardSummary aggregates headline counts for the main menu.
type DashboardSummary struct {
	TotalCars      int
	TotalCustomers int
	ActiveRentals  int
}

// DashboardUsecase composes counts from the stores; it has no invariants of
// its own.
type DashboardUsecase interface {
	GetSummary(ctx context.Context) (*DashboardSummary, error)
}
