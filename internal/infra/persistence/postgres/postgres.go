// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"hbnb/config"
	"hbnb/internal/domain/lifecycle"
	"hbnb/internal/errors"
	"hbnb/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client and wires its lifecycle.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := gorm.Open(postgres.Open(buildDSN(params.Config.Postgres)), &gorm.Config{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Config.Postgres.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(params.Config.Postgres.MaxIdleConns)
	}
	if params.Config.Postgres.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(params.Config.Postgres.MaxOpenConns)
	}
	if params.Config.Postgres.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(params.Config.Postgres.ConnMaxLifetime)
	}

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := db.WithContext(ctx).AutoMigrate(
				&model.UserModel{},
				&model.AmenityModel{},
				&model.PlaceModel{},
				&model.ReviewModel{},
			); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

func buildDSN(cfg *config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	timezone := cfg.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.Port, cfg.UserName, cfg.Password, cfg.Database, sslMode, timezone,
	)
}
