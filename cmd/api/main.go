package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	apphttp "github.com/rehabcade/spin-to-eat-v2/internal/http"
	"github.com/rehabcade/spin-to-eat-v2/internal/http/router"
	"github.com/rehabcade/spin-to-eat-v2/internal/places"
	"github.com/rehabcade/spin-to-eat-v2/platform/config"
	"github.com/rehabcade/spin-to-eat-v2/platform/logger"
	"github.com/rehabcade/spin-to-eat-v2/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr, "provider", cfg.POIProvider)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	placesModule := places.NewModule(cfg, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Env:    cfg.Env,
		Logger: log,
		Modules: []apphttp.Module{
			placesModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, exiting")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
