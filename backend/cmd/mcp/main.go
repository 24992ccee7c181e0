package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"reddit-mcp/backend/internal/adapter"
	"reddit-mcp/backend/internal/reddit"
	"reddit-mcp/backend/internal/tools"
	"reddit-mcp/backend/pkg/config"
	"reddit-mcp/backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	if err := logger.Init("development", ""); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal("Failed to load configuration", zap.Error(err))
	}

	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		logger.Get().Fatal("Failed to initialize logger", zap.Error(err))
	}

	log := logger.Get()
	log.Info("Starting Reddit MCP server over stdio...")

	// Initialize dependencies
	redditClient, err := reddit.New(reddit.ConfigFrom(cfg, log))
	if err != nil {
		log.Fatal("Failed to create Reddit client", zap.Error(err))
	}
	executor := tools.NewExecutor(redditClient)
	server := adapter.NewMCPServer(executor, tools.GetAllTools())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := adapter.ServeStdio(ctx, server); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Server error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	log.Info("Reddit MCP server exited")
}
