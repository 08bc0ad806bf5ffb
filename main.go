package main

import (
	"context"

	"admin/internal/configuration"
	"admin/internal/core"
	"admin/internal/database"
	"admin/internal/gateway"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	config := configuration.Read()
	core.NewLogger(config.App.LogLevel)

	profile := configuration.GetProfile(config.App.Profile)

	shutdownTracing := core.InitTracing(config.Tracing)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			zap.L().Error("Failed to shut down tracing", zap.Error(err))
		}
	}()

	db := database.InitDB(config.Database)
	cache := core.NewCache(config.Cache)
	store := core.NewStorage(config.Storage)
	notify := core.NewNotifier(config.Notifier)

	login := gateway.Login(context.Background(), config.Upstream.BaseURL, config.Upstream.Email, config.Upstream.Password)
	if !login.Success {
		zap.L().Fatal("Failed to authenticate against marketplace backend", zap.String("reason", login.Message))
	}
	gw := gateway.NewClient(config.Upstream.BaseURL, gateway.Session{Token: login.Data.Token})

	fixtures, err := gateway.NewFixtureStore()
	if err != nil {
		zap.L().Fatal("Failed to load fixture data", zap.Error(err))
	}

	eventsManager := core.NewEventsManager()

	appIdentity := uuid.New().String()

	if cache != nil {
		go cache.StartIdentityTicker(appIdentity)
		zap.L().Info("Cache identity ticker started")
	}

	if profile.Workers.AnyEnabled() {
		core.StartWorkers(
			profile,
			eventsManager,
			db,
			cache,
			gw,
			fixtures,
			notify,
			config,
			appIdentity,
		)
	}

	if profile.HTTPServer {
		core.StartHTTPServer(config, db, cache, store, gw, fixtures)
	} else if profile.Workers.AnyEnabled() {
		zap.L().Info("Running in worker-only mode")
		select {} // Block forever
	}
}
