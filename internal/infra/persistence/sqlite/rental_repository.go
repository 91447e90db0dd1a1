package sqlite

import (
	"context"

	"gorm.io/gorm"

	"carrental/internal/domain/entity"
	"carrental/internal/domain/repository"
	"carrental/internal/errors"
	"carrental/internal/infra/persistence/model"
)

// rentalRepository implements repository.RentalRepository using GORM.
type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository is the constructor for rentalRepository.
func NewRentalRepository(db *gorm.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (repo *rentalRepository) FindByID(ctx context.Context, id int64) (*entity.Rental, error) {
	var rentalM model.RentalModel
	err := repo.db.WithContext(ctx).First(&rentalM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRentalNotFound
		}

		return nil, errors.Wrap(err, "failed to find rental by id")
	}

	return model.ToRentalDomain(&rentalM), nil
}

func (repo *rentalRepository) FindAll(ctx context.Context) ([]*entity.Rental, error) {
	var models []model.RentalModel
	err := repo.db.WithContext(ctx).Order("rent_date DESC").Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rentals")
	}

	return toRentalDomains(models), nil
}

func (repo *rentalRepository) FindActive(ctx context.Context) ([]*entity.Rental, error) {
	var models []model.RentalModel
	err := repo.db.WithContext(ctx).
		Where("return_date IS NULL").
		Order("rent_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active rentals")
	}

	return toRentalDomains(models), nil
}

// Create inserts the rental. The ux_rentals_active_car index rejects a second
// open rental for the same car; that violation surfaces as
// repository.ErrCarAlreadyRented so the usecase can report it as an
// availability failure instead of an infrastructure error.
func (repo *rentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	rentalM := model.FromRentalDomain(rental)
	if err := repo.db.WithContext(ctx).Create(rentalM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCarAlreadyRented
		}

		return errors.Wrap(err, "failed to create rental")
	}

	rental.ID = rentalM.ID

	return nil
}

func (repo *rentalRepository) Update(ctx context.Context, rental *entity.Rental) error {
	rentalM := model.FromRentalDomain(rental)
	result := repo.db.WithContext(ctx).Model(&model.RentalModel{}).
		Where("id = ?", rentalM.ID).
		Updates(map[string]any{
			"customer_id": rentalM.CustomerID,
			"car_id":      rentalM.CarID,
			"rent_date":   rentalM.RentDate,
			"return_date": rentalM.ReturnDate,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update rental")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRentalNotFound
	}

	return nil
}

func toRentalDomains(models []model.RentalModel) []*entity.Rental {
	rentals := make([]*entity.Rental, 0, len(models))
	for i := range models {
		rentals = append(rentals, model.ToRentalDomain(&models[i]))
	}

	return rentals
}
