package main

import (
	"github.com/mwren/craftcost/internal/config"
	"github.com/mwren/craftcost/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		"craftcost",
		version,
		false,
	)

	logger.InitLogger(loggerConfig)
}
