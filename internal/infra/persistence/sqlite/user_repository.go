package sqlite

import (
	"context"

	"gorm.io/gorm"

	"carrental/internal/domain/entity"
	"carrental/internal/domain/repository"
	"carrental/internal/errors"
	"carrental/internal/infra/persistence/model"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).First(&userM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return model.ToUserDomain(&userM), nil
}

// FindByUsername matches the username exactly and case-sensitively; archived
// accounts are excluded so a retired username cannot log in.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("username = ? AND is_active = ?", username, true).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return model.ToUserDomain(&userM), nil
}

func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	return repo.findWhere(ctx, "is_active = ?", true)
}

func (repo *userRepository) FindAllIncludingInactive(ctx context.Context) ([]*entity.User, error) {
	return repo.findWhere(ctx)
}

func (repo *userRepository) FindInactive(ctx context.Context) ([]*entity.User, error) {
	return repo.findWhere(ctx, "is_active = ?", false)
}

func (repo *userRepository) findWhere(ctx context.Context, conds ...any) ([]*entity.User, error) {
	var models []model.UserModel
	query := repo.db.WithContext(ctx).Order("id")
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, model.ToUserDomain(&models[i]))
	}

	return users, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUsernameTaken
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", userM.ID).
		Updates(map[string]any{
			"username":      userM.Username,
			"email":         userM.Email,
			"password_hash": userM.PasswordHash,
			"salt":          userM.Salt,
			"role":          userM.Role,
			"is_active":     userM.IsActive,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrUsernameTaken
		}

		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) SetActive(ctx context.Context, id int64, isActive bool) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("is_active", isActive)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set user active flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
