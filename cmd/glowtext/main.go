// Package main is the entry point for the glowtext demo.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/glowtext/internal/config"
	"github.com/Faultbox/glowtext/internal/demo"
	"github.com/Faultbox/glowtext/internal/logger"
)

// autoSnapshot asks for a generated file name under the snapshot directory.
const autoSnapshot = "auto"

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== glowtext ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to save config", zap.Error(err))
			return 1
		}
		logger.Info("config saved", zap.String("path", path))
		return 0
	}

	if path := config.SnapshotPath(); path != "" {
		if path == autoSnapshot {
			path = ""
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if _, err := demo.RenderSnapshot(ctx, cfg, config.KeySequence(), path); err != nil {
			logger.Error("snapshot failed", zap.Error(err))
			return 1
		}
		return 0
	}

	d, err := demo.New(cfg)
	if err != nil {
		logger.Error("failed to create demo", zap.Error(err))
		return 1
	}

	runErr := d.Run()
	if err := d.Close(); err != nil {
		logger.Warn("errors during shutdown", zap.Error(err))
	}
	if runErr != nil {
		logger.Error("demo error", zap.Error(runErr))
		return 1
	}

	logger.Info("demo closed normally")
	return 0
}
