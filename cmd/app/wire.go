//go:build wireinject
// +build wireinject

package main

import (
	"stundenmanager/config"
	"stundenmanager/internal/command"
	"stundenmanager/internal/cron"
	"stundenmanager/internal/database"
	"stundenmanager/internal/handler"
	"stundenmanager/internal/middleware"
	"stundenmanager/internal/router"
	"stundenmanager/internal/service"
	"stundenmanager/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			telemetry.ProviderSet,
			command.ProviderSet,
		),
	)
}
