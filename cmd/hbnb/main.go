package main

import (
	"context"
	"log/slog"
	"os"

	"hbnb/config"
	"hbnb/internal/delivery"
	"hbnb/internal/delivery/http"
	"hbnb/internal/delivery/http/middleware"
	"hbnb/internal/delivery/http/router/handler"
	"hbnb/internal/domain/service"
	"hbnb/internal/infra/auth"
	logs "hbnb/internal/infra/log"
	"hbnb/internal/infra/persistence/memory"
	"hbnb/internal/infra/persistence/postgres"
	"hbnb/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg.Storage),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

// injectRepo selects the persistence backend. The in-memory store keeps
// everything in process maps and is meant for demos and tests; anything
// else gets the relational backend.
func injectRepo(storage string) fx.Option {
	if storage == "memory" {
		return fx.Options(
			fx.Provide(
				memory.NewStore,
				memory.NewUserRepository,
				memory.NewPlaceRepository,
				memory.NewAmenityRepository,
				memory.NewReviewRepository,
				memory.NewTransactionManager,
			),
		)
	}

	return fx.Options(
		fx.Provide(
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewPlaceRepository,
			postgres.NewAmenityRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher from configuration.
// A missing or zero cost falls back to bcrypt's default.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPlaceService,
			impl.NewAmenityService,
			impl.NewReviewService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewPlaceHandler,
			handler.NewAmenityHandler,
			handler.NewReviewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
