package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"engage-api/config"
	engagementRepository "engage-api/internal/engagement/repository"
	monitorRepository "engage-api/internal/monitor/repository"
	"engage-api/internal/pacing"
	"engage-api/internal/platform"
	"engage-api/pkg/discord"
	pkgLog "engage-api/pkg/log"
	"engage-api/pkg/metrics"
	"engage-api/pkg/scope"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) restores pacing state and starts serving.
type HTTPServer struct {
	// Server configuration
	gin    *gin.Engine
	logger pkgLog.Logger
	host   string
	port   int
	mode   string

	// Database
	db *sql.DB

	// Auth & security
	jwtManager scope.Manager

	// Engagement pipeline
	gate      *pacing.Gate
	discovery platform.Discovery
	generator platform.TextGenerator
	publisher platform.Publisher
	engageCfg config.EngageConfig

	// Observability & alerting
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	discord  discord.IDiscord

	// Wired during mapHandlers, used by restorePacing.
	monitorRepo monitorRepository.Repository
	postedRepo  engagementRepository.Repository
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host string
	Port int
	Mode string

	// Database
	PostgresDB *sql.DB

	// Auth & security
	JWTManager scope.Manager

	// Engagement pipeline
	Gate      *pacing.Gate
	Discovery platform.Discovery
	Generator platform.TextGenerator
	Publisher platform.Publisher
	Engage    config.EngageConfig

	// Observability & alerting
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Discord  discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start the server. Use (*HTTPServer).Run() for that.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:    gin.New(),
		logger: logger,
		host:   cfg.Host,
		port:   cfg.Port,
		mode:   cfg.Mode,

		db: cfg.PostgresDB,

		jwtManager: cfg.JWTManager,

		gate:      cfg.Gate,
		discovery: cfg.Discovery,
		generator: cfg.Generator,
		publisher: cfg.Publisher,
		engageCfg: cfg.Engage,

		registry: cfg.Registry,
		metrics:  cfg.Metrics,
		discord:  cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("PostgreSQL connection is required")
	}
	if srv.jwtManager == nil {
		return errors.New("JWTManager is required")
	}
	if srv.gate == nil {
		return errors.New("pacing gate is required")
	}
	if srv.discovery == nil || srv.generator == nil || srv.publisher == nil {
		return errors.New("platform bridge is required")
	}

	return nil
}
