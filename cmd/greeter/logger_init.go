package main

import (
	"log/slog"

	"github.com/osse101/greeter/internal/config"
	"github.com/osse101/greeter/internal/logger"
)

// initLogger installs the default logger described by cfg
func initLogger(cfg *config.Config) *slog.Logger {
	return logger.InitLogger(logger.FromSettings(cfg.LogLevel, cfg.LogFormat, logger.Service{
		Name:        cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
	}))
}
