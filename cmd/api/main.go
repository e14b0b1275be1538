package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"engage-api/config"
	"engage-api/config/postgre"
	"engage-api/internal/httpserver"
	"engage-api/internal/pacing"
	"engage-api/internal/platform/bridge"
	"engage-api/pkg/discord"
	"engage-api/pkg/log"
	"engage-api/pkg/metrics"
	"engage-api/pkg/scope"
)

// @Name Engage API
// @description Gating and approval engine for automated engagement comments.
// @version 1
// @host localhost:8080
// @schemes http
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	// Register graceful shutdown
	registerGracefulShutdown(logger)

	// Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize Discord
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Discord: ", err)
		return
	}

	// Initialize JWT manager
	jwtManager, err := scope.New(cfg.JWT.SecretKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// Initialize Prometheus registry and pipeline metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	pipelineMetrics := metrics.New(registry)

	// Initialize platform bridge (discovery, generation, publishing)
	bridgeClient := bridge.New(logger, bridge.Config{
		BaseURL: cfg.Bridge.BaseURL,
		APIKey:  cfg.Bridge.APIKey,
		Timeout: cfg.Bridge.Timeout,
	})

	// Initialize pacing gate
	gate := pacing.New(time.Now)

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
		Mode: cfg.Server.Mode,

		// Database Configuration
		PostgresDB: postgresDB,

		// Authentication & Security Configuration
		JWTManager: jwtManager,

		// Engagement pipeline Configuration
		Gate:      gate,
		Discovery: bridgeClient,
		Generator: bridgeClient,
		Publisher: bridgeClient,
		Engage:    cfg.Engage,

		// Monitoring & Notification Configuration
		Registry: registry,
		Metrics:  pipelineMetrics,
		Discord:  discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
