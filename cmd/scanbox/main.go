package main

import (
	"context"
	"log/slog"
	"os"

	"scanbox/config"
	"scanbox/internal/delivery"
	"scanbox/internal/delivery/http"
	"scanbox/internal/delivery/http/middleware"
	"scanbox/internal/delivery/http/router/handler"
	"scanbox/internal/infra/auth"
	"scanbox/internal/infra/auth/google"
	logs "scanbox/internal/infra/log"
	"scanbox/internal/infra/persistence/postgres"
	"scanbox/internal/infra/pubsub"
	"scanbox/internal/infra/qrcode"
	"scanbox/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
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
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		pubsub.NewEventPublisher,
		qrcode.NewLabelService,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewStorageRepository,
			postgres.NewBoxRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPasswordHasher,
			auth.NewJWTService,
			google.NewVerifier,
			google.NewExchanger,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewStorageService,
			impl.NewBoxService,
			impl.NewLabelService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewStorageHandler,
			handler.NewBoxHandler,
			handler.NewLabelHandler,
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
