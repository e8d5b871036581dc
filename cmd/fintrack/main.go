package main

import (
	"context"
	"log/slog"
	"os"

	"fintrack/internal/cli"
	"fintrack/internal/commands"
	"fintrack/internal/ledger"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(slog.LevelInfo)
	cfg := cli.LoadAndValidateConfig(logger)
	if cfg.LogLevel != slog.LevelInfo {
		logger = cli.SetupLogger(cfg.LogLevel)
	}

	ctx := context.Background()
	store := cli.InitStore(ctx, logger, cfg.DBPath)
	svc := ledger.NewService(store)

	rootCmd := commands.NewRootCommand(svc, cfg)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
