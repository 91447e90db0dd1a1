// Package sqlite contains the concrete implementation of the persistence
// layer using GORM on a local SQLite database.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"carrental/config"
	"carrental/internal/errors"
)

// Params defines the required parameters.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the SQLite database and manages its lifecycle. Transactions are
// started with BEGIN IMMEDIATE (txlock) so concurrent writers serialize at
// transaction start instead of deadlocking on a lock upgrade.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := sqlDB.PingContext(startCtx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open opens a GORM handle on the configured database file. It is separate
// from New so tests can open a throwaway database without an fx lifecycle.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	busyTimeout := cfg.BusyTimeoutMillis
	if busyTimeout <= 0 {
		busyTimeout = 10_000
	}

	dsn := fmt.Sprintf(
		"%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)&_txlock=immediate",
		cfg.Path, busyTimeout,
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Surface unique/FK violations as gorm.ErrDuplicatedKey and friends.
		TranslateError: true,
		// Single statements don't need the implicit wrapping transaction; we
		// keep explicit transactions via TransactionManager.Execute for
		// multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	// SQLite handles one writer at a time; a large pool just queues on the
	// database lock.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	sqlDB.SetMaxOpenConns(4)

	return db, nil
}
