package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration. Built once at startup and passed
// explicitly to every component; nothing reads the environment after Load.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Fireflies FirefliesConfig
	OpenAI    OpenAIConfig
	Notifier  NotifierConfig
	Pipeline  PipelineConfig

	Environment string `envconfig:"ENVIRONMENT" default:"development"`
}

// ServerConfig holds the admin HTTP server configuration
type ServerConfig struct {
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	Port            string `envconfig:"PORT" default:"8080"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds Postgres configuration
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"pulse"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns int    `envconfig:"DB_MIN_CONNS" default:"5"`
}

// RedisConfig holds the transcript cache configuration. An empty host
// disables Redis and the pipeline falls back to the in-memory store.
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:""`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// FirefliesConfig holds meeting-source configuration. Per-organization API
// keys come from the integrations table, not from the environment.
type FirefliesConfig struct {
	URI      string        `envconfig:"FF_URI" default:"https://api.fireflies.ai/graphql"`
	CacheTTL time.Duration `envconfig:"FF_CACHE_TTL" default:"15m"`
}

// OpenAIConfig holds LLM configuration
type OpenAIConfig struct {
	APIKey  string `envconfig:"OPENAI_API_KEY" validate:"required"`
	BaseURL string `envconfig:"OPENAI_API_URL" default:"https://api.openai.com"`
	Model   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
}

// NotifierConfig holds webhook notifier configuration. An empty URL routes
// notifications to the log-only notifier.
type NotifierConfig struct {
	WebhookURL string `envconfig:"NOTIFY_WEBHOOK_URL" default:""`
	Secret     string `envconfig:"NOTIFY_WEBHOOK_SECRET" default:""`
}

// PipelineConfig holds run parameters
type PipelineConfig struct {
	GoalType        string        `envconfig:"PIPELINE_GOAL_TYPE" default:"objectives"`
	IntegrationType string        `envconfig:"PIPELINE_INTEGRATION_TYPE" default:"fireflies"`
	Workers         int           `envconfig:"PIPELINE_WORKERS" default:"2"`
	Interval        time.Duration `envconfig:"PIPELINE_INTERVAL" default:"0"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.Pipeline.Workers < 1 {
		return fmt.Errorf("PIPELINE_WORKERS must be at least 1")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// RedisEnabled reports whether a Redis-backed cache is configured
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}
