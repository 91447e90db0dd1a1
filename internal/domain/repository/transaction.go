package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the usecase layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back; otherwise it is
	// committed. All repository operations obtained from the factory use the
	// same transaction.
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction,
// so a multi-step operation (for example the rent availability check followed
// by the insert) is atomic.
type RepositoryFactory interface {
	// CarRepo returns a CarRepository bound to the current transaction.
	CarRepo() CarRepository

	// CustomerRepo returns a CustomerRepository bound to the current transaction.
	CustomerRepo() CustomerRepository

	// RentalRepo returns a RentalRepository bound to the current transaction.
	RentalRepo() RentalRepository

	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository
}
