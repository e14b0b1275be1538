package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Database Configuration
	Postgres PostgresConfig

	// Authentication & Security Configuration
	JWT JWTConfig

	// Upstream worker Configuration
	Bridge BridgeConfig

	// Engagement pipeline Configuration
	Engage EngageConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServerConfig is the configuration for the HTTP server
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// PostgresConfig is the configuration for PostgreSQL
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// JWTConfig is the configuration for the JWT
type JWTConfig struct {
	SecretKey string
}

// BridgeConfig is the configuration for the browser-automation worker
// that handles discovery, comment generation and publishing.
type BridgeConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// EngageConfig tunes the engagement pipeline.
type EngageConfig struct {
	PublishTimeout      time.Duration
	RefreshMinStaleness time.Duration
	// RestoreLookback bounds how far back posted records are loaded at
	// startup to rebuild pacing state.
	RestoreLookback time.Duration

	// Default comment style passed to the generator.
	StyleTone      string
	StyleLanguage  string
	StyleMaxLength int
	StylePersona   string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("engage-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/engage/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = viper.GetString("environment.name")

	// Server
	cfg.Server.Host = viper.GetString("server.host")
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Server.Mode = viper.GetString("server.mode")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// JWT
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")

	// Bridge
	cfg.Bridge.BaseURL = viper.GetString("bridge.base_url")
	cfg.Bridge.APIKey = viper.GetString("bridge.api_key")
	cfg.Bridge.Timeout = viper.GetDuration("bridge.timeout")

	// Engage
	cfg.Engage.PublishTimeout = viper.GetDuration("engage.publish_timeout")
	cfg.Engage.RefreshMinStaleness = viper.GetDuration("engage.refresh_min_staleness")
	cfg.Engage.RestoreLookback = viper.GetDuration("engage.restore_lookback")
	cfg.Engage.StyleTone = viper.GetString("engage.style.tone")
	cfg.Engage.StyleLanguage = viper.GetString("engage.style.language")
	cfg.Engage.StyleMaxLength = viper.GetInt("engage.style.max_length")
	cfg.Engage.StylePersona = viper.GetString("engage.style.persona")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Postgres
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.dbname", "engage")
	viper.SetDefault("postgres.sslmode", "disable")

	// Bridge
	viper.SetDefault("bridge.timeout", 30*time.Second)

	// Engage
	viper.SetDefault("engage.publish_timeout", 45*time.Second)
	viper.SetDefault("engage.refresh_min_staleness", 6*time.Hour)
	viper.SetDefault("engage.restore_lookback", 48*time.Hour)
	viper.SetDefault("engage.style.tone", "friendly")
	viper.SetDefault("engage.style.language", "en")
	viper.SetDefault("engage.style.max_length", 280)
}

func validate(cfg *Config) error {
	// Validate JWT
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}

	// Validate Postgres
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}

	// Validate Bridge
	if cfg.Bridge.BaseURL == "" {
		return fmt.Errorf("bridge.base_url is required")
	}

	return nil
}
