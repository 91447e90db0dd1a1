package sqlite

import (
	"context"

	"gorm.io/gorm"

	"carrental/internal/domain/entity"
	"carrental/internal/domain/repository"
	"carrental/internal/errors"
	"carrental/internal/infra/persistence/model"
)

// carRepository implements repository.CarRepository using GORM.
type carRepository struct {
	db *gorm.DB
}

// NewCarRepository is the constructor for carRepository.
func NewCarRepository(db *gorm.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (repo *carRepository) FindByID(ctx context.Context, id int64) (*entity.Car, error) {
	var carM model.CarModel
	err := repo.db.WithContext(ctx).First(&carM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCarNotFound
		}

		return nil, errors.Wrap(err, "failed to find car by id")
	}

	return model.ToCarDomain(&carM), nil
}

func (repo *carRepository) FindAll(ctx context.Context) ([]*entity.Car, error) {
	return repo.findWhere(ctx, "is_active = ?", true)
}

func (repo *carRepository) FindAllIncludingInactive(ctx context.Context) ([]*entity.Car, error) {
	return repo.findWhere(ctx)
}

func (repo *carRepository) FindInactive(ctx context.Context) ([]*entity.Car, error) {
	return repo.findWhere(ctx, "is_active = ?", false)
}

func (repo *carRepository) SearchByBrand(ctx context.Context, brand string) ([]*entity.Car, error) {
	return repo.findWhere(ctx, "is_active = ? AND brand LIKE ?", true, "%"+brand+"%")
}

func (repo *carRepository) findWhere(ctx context.Context, conds ...any) ([]*entity.Car, error) {
	var models []model.CarModel
	query := repo.db.WithContext(ctx).Order("id")
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cars")
	}

	cars := make([]*entity.Car, 0, len(models))
	for i := range models {
		cars = append(cars, model.ToCarDomain(&models[i]))
	}

	return cars, nil
}

func (repo *carRepository) Create(ctx context.Context, car *entity.Car) error {
	carM := model.FromCarDomain(car)
	if err := repo.db.WithContext(ctx).Create(carM).Error; err != nil {
		return errors.Wrap(err, "failed to create car")
	}

	car.ID = carM.ID

	return nil
}

func (repo *carRepository) Update(ctx context.Context, car *entity.Car) error {
	carM := model.FromCarDomain(car)
	result := repo.db.WithContext(ctx).Model(&model.CarModel{}).
		Where("id = ?", carM.ID).
		Updates(map[string]any{
			"brand":     carM.Brand,
			"model":     carM.Model,
			"year":      carM.Year,
			"vin":       carM.VIN,
			"is_active": carM.IsActive,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update car")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCarNotFound
	}

	return nil
}

func (repo *carRepository) SetActive(ctx context.Context, id int64, isActive bool) error {
	result := repo.db.WithContext(ctx).Model(&model.CarModel{}).
		Where("id = ?", id).
		Update("is_active", isActive)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set car active flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCarNotFound
	}

	return nil
}
