package main

import (
	"os"

	"github.com/liviaellen/sourmimosa/config"
	"github.com/liviaellen/sourmimosa/pipeline"
	"github.com/liviaellen/sourmimosa/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.NewLogger("info").Error("Invalid configuration: %v", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.LogLevel)
	logger.Info("=== Sourmimosa portfolio build starting ===")

	if _, err := pipeline.Run(cfg, logger, os.Stdout); err != nil {
		logger.Error("Portfolio build failed: %v", err)
		os.Exit(1)
	}
}
