package sqlite

import (
	"context"

	"gorm.io/gorm"

	"carrental/internal/domain/entity"
	"carrental/internal/domain/repository"
	"carrental/internal/errors"
	"carrental/internal/infra/persistence/model"
)

// customerRepository implements repository.CustomerRepository using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (repo *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).First(&customerM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return model.ToCustomerDomain(&customerM), nil
}

func (repo *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	return repo.findWhere(ctx, "is_active = ?", true)
}

func (repo *customerRepository) FindAllIncludingInactive(ctx context.Context) ([]*entity.Customer, error) {
	return repo.findWhere(ctx)
}

func (repo *customerRepository) FindInactive(ctx context.Context) ([]*entity.Customer, error) {
	return repo.findWhere(ctx, "is_active = ?", false)
}

func (repo *customerRepository) SearchByName(ctx context.Context, name string) ([]*entity.Customer, error) {
	return repo.findWhere(ctx, "is_active = ? AND name LIKE ?", true, "%"+name+"%")
}

func (repo *customerRepository) findWhere(ctx context.Context, conds ...any) ([]*entity.Customer, error) {
	var models []model.CustomerModel
	query := repo.db.WithContext(ctx).Order("id")
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(models))
	for i := range models {
		customers = append(customers, model.ToCustomerDomain(&models[i]))
	}

	return customers, nil
}

func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := model.FromCustomerDomain(customer)
	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		return errors.Wrap(err, "failed to create customer")
	}

	customer.ID = customerM.ID

	return nil
}

func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerM := model.FromCustomerDomain(customer)
	result := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).
		Where("id = ?", customerM.ID).
		Updates(map[string]any{
			"name":      customerM.Name,
			"email":     customerM.Email,
			"is_active": customerM.IsActive,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func (repo *customerRepository) SetActive(ctx context.Context, id int64, isActive bool) error {
	result := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).
		Where("id = ?", id).
		Update("is_active", isActive)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set customer active flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}
