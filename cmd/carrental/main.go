package main

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"carrental/config"
	"carrental/internal/delivery"
	"carrental/internal/delivery/console"
	"carrental/internal/domain/service"
	"carrental/internal/infra/auth"
	logs "carrental/internal/infra/log"
	"carrental/internal/infra/persistence/sqlite"
	"carrental/internal/usecase/impl"
)

type startConsoleParams struct {
	fx.In

	Deliveries []delivery.Delivery `group:"deliveries"`
	Shutdowner fx.Shutdowner
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			runMigrations,
			startConsole,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewCarRepository,
			sqlite.NewCustomerRepository,
			sqlite.NewRentalRepository,
			sqlite.NewUserRepository,
			sqlite.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
		),
	)
}

// newPasswordHasher builds the credential hasher with the configured
// iteration count.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth.PBKDF2Iterations > 0 {
		return auth.NewPBKDF2HasherWithIterations(cfg.Auth.PBKDF2Iterations)
	}

	return auth.NewPBKDF2Hasher()
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewRentalService,
			impl.NewCarService,
			impl.NewCustomerService,
			impl.NewUserService,
			impl.NewDashboardService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				console.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func runMigrations(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher, logger *slog.Logger) error {
	return sqlite.Migrate(ctx, db, hasher, logger)
}

func startConsole(ctx context.Context, params startConsoleParams) {
	for _, d := range params.Deliveries {
		go func(d delivery.Delivery) {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Console exited with error", slog.Any("error", err))
			}
			if err := params.Shutdowner.Shutdown(); err != nil {
				slog.Error("Failed to shut down", slog.Any("error", err))
			}
		}(d)
	}
}
