package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/greeter/internal/config"
	"github.com/osse101/greeter/internal/greeting"
	"github.com/osse101/greeter/internal/server"
)

//go:generate swag init --dir ../../ --generalInfo cmd/greeter/main.go --output ../../docs

const shutdownTimeout = 10 * time.Second

// @title Greeter API
// @version 1.0
// @description Localized greetings by time of day, weekday and calendar date.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Greeter failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := initLogger(cfg)
	for _, warning := range cfg.Warnings() {
		log.Warn(warning)
	}

	ctx := context.Background()

	st, closeStore, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	overlay, err := greeting.LoadLanguageFile(cfg.LanguagesFile)
	if err != nil {
		return err
	}

	resolver, err := greeting.New(greeting.Options{
		Locale:         cfg.Locale,
		TimeSlots:      overlay.TimeSlots,
		Languages:      overlay.Languages,
		UpdateInterval: cfg.UpdateInterval,
		Store:          st,
		Logger:         log,
	})
	if err != nil {
		return err
	}

	resolver.StartAutoUpdate(func(text string) {
		log.Info("Greeting", "text", text)
	})
	defer resolver.StopAutoUpdate()

	serverErr := make(chan error, 1)
	var srv *server.Server
	if cfg.HTTPEnabled() {
		srv = server.NewServer(cfg.HTTPPort, cfg.APIKey, resolver)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer signal.Stop(sc)

	log.Info("Greeter running", "locale", resolver.Locale(), "interval", resolver.UpdateInterval())

	select {
	case sig := <-sc:
		log.Info("Shutting down", "signal", sig.String())
	case err = <-serverErr:
		log.Error("Server failed", "error", err)
	}

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if stopErr := srv.Stop(shutdownCtx); stopErr != nil {
			log.Error("Server shutdown failed", "error", stopErr)
		}
	}

	return err
}
