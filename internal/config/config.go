// Package config provides configuration management for the Lattice projector.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like DATABASE_URL, LOG_LEVEL)
// 3. Default values
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	River     RiverConfig     `mapstructure:"river"`
	Worker    WorkerConfig    `mapstructure:"worker"`
	Projector ProjectorConfig `mapstructure:"projector"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// A single pgxpool is shared by Ent, River and the event feed poller.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	// Pool configuration (shared by Ent, River and raw SQL)
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RiverConfig contains River Queue settings for maintenance jobs.
type RiverConfig struct {
	MaxWorkers                  int           `mapstructure:"max_workers"`
	CompletedJobRetentionPeriod time.Duration `mapstructure:"completed_job_retention_period"`
	IndexPruneInterval          time.Duration `mapstructure:"index_prune_interval"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	ProjectionPoolSize  int `mapstructure:"projection_pool_size"`
	MaintenancePoolSize int `mapstructure:"maintenance_pool_size"`
}

// ProjectorConfig contains event feed consumption settings.
type ProjectorConfig struct {
	// ConsumerName identifies this projector's checkpoint row.
	ConsumerName string `mapstructure:"consumer_name"`

	// EventsTable is the event store's append-only table to poll.
	EventsTable string `mapstructure:"events_table"`

	// CheckpointsTable tracks the last processed global position per consumer.
	CheckpointsTable string `mapstructure:"checkpoints_table"`

	BatchSize    int           `mapstructure:"batch_size"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// Load reads configuration from file and environment variables.
// Standard environment variables without prefix (DATABASE_URL, LOG_LEVEL, etc.).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/lattice")

	// Maps nested config: database.max_conns → DATABASE_MAX_CONNS
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Projector.ConsumerName == "" {
		return fmt.Errorf("projector.consumer_name must not be empty")
	}
	if c.Projector.BatchSize <= 0 {
		return fmt.Errorf("projector.batch_size must be positive")
	}
	if c.Projector.PollInterval <= 0 {
		return fmt.Errorf("projector.poll_interval must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Database (shared pool)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "lattice")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "lattice")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "15m")
	v.SetDefault("database.auto_migrate", false)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// River
	v.SetDefault("river.max_workers", 10)
	v.SetDefault("river.completed_job_retention_period", "24h")
	v.SetDefault("river.index_prune_interval", "1h")

	// Worker pools
	v.SetDefault("worker.projection_pool_size", 50)
	v.SetDefault("worker.maintenance_pool_size", 10)

	// Projector
	v.SetDefault("projector.consumer_name", "lattice-projector")
	v.SetDefault("projector.events_table", "events")
	v.SetDefault("projector.checkpoints_table", "projection_checkpoints")
	v.SetDefault("projector.batch_size", 100)
	v.SetDefault("projector.poll_interval", "500ms")
}
