package sqlite

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"carrental/internal/domain/entity"
	"carrental/internal/domain/service"
	"carrental/internal/errors"
	"carrental/internal/infra/persistence/model"
)

// Partial unique index allowing at most one open rental per car. Together
// with the immediate transaction in TransactionManager.Execute it closes the
// race between two concurrent rent attempts on the same car.
const activeRentalIndexSQL = `
CREATE UNIQUE INDEX IF NOT EXISTS ux_rentals_active_car
ON rentals (car_id)
WHERE return_date IS NULL;`

// Migrate creates or updates the schema and seeds the initial admin account
// when the users table is empty.
func Migrate(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher, logger *slog.Logger) error {
	err := db.WithContext(ctx).AutoMigrate(
		&model.CarModel{},
		&model.CustomerModel{},
		&model.RentalModel{},
		&model.UserModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	if err := db.WithContext(ctx).Exec(activeRentalIndexSQL).Error; err != nil {
		return errors.Wrap(err, "failed to create active rental index")
	}

	if err := seedAdminUser(ctx, db, hasher, logger); err != nil {
		return err
	}

	logger.Info("Database initialized")

	return nil
}

// seedAdminUser creates the bootstrap admin account ("admin" / "admin123")
// so a fresh installation can be logged into. The password is expected to be
// changed on first use.
func seedAdminUser(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher, logger *slog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count users")
	}
	if count > 0 {
		return nil
	}

	hash, salt, err := hasher.Hash("admin123")
	if err != nil {
		return errors.Wrap(err, "failed to hash seed admin password")
	}

	email, err := entity.NewEmail("admin@example.com")
	if err != nil {
		return errors.Wrap(err, "failed to build seed admin email")
	}

	admin, err := entity.NewUser("admin", email, hash, salt, entity.RoleAdmin)
	if err != nil {
		return errors.Wrap(err, "failed to build seed admin user")
	}

	if err := db.WithContext(ctx).Create(model.FromUserDomain(admin)).Error; err != nil {
		return errors.Wrap(err, "failed to seed admin user")
	}

	logger.Info("Seeded initial admin user", slog.String("username", admin.Username))

	return nil
}
