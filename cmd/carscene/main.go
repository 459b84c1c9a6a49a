// Package main is the entry point for the car scene viewer.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/carscene/internal/app"
	"github.com/Faultbox/carscene/internal/config"
	"github.com/Faultbox/carscene/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Car Scene ===")
	for _, msg := range cfg.Validate() {
		logger.Warn("config value replaced", zap.String("detail", msg))
	}
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Warn("could not save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("path", config.UserConfigPath()))
		}
	}

	a, err := app.New(cfg)
	if err != nil {
		if errors.Is(err, app.ErrMissingRenderContext) {
			logger.Error("cannot render: no window or OpenGL 4.1 context", zap.Error(err))
		} else {
			logger.Error("failed to start", zap.Error(err))
		}
		logger.Sync()
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("run error", zap.Error(err))
		a.Close()
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("closed normally")
}
