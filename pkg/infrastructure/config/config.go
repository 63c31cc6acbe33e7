package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Log      LogConfig
	Stock    StockConfig
	Export   ExportConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
}

// DatabaseConfig holds the SQLite state database settings
type DatabaseConfig struct {
	Path string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// StockConfig holds the initial low-stock boundaries. They only apply to a
// fresh database; once state exists, the persisted thresholds win.
type StockConfig struct {
	WarnAt   int64
	DangerAt int64
}

// ExportConfig holds report export settings
type ExportConfig struct {
	Dir string
}

// Load loads configuration from an optional config file and environment
// variables. Priority (highest to lowest):
// 1. Environment variables with MAGAZYN_ prefix (e.g. MAGAZYN_DATABASE_PATH)
// 2. config.yaml in the working directory
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine, defaults and env vars apply.
	}

	v.SetEnvPrefix("MAGAZYN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Stock: StockConfig{
			WarnAt:   v.GetInt64("stock.warn_at"),
			DangerAt: v.GetInt64("stock.danger_at"),
		},
		Export: ExportConfig{
			Dir: v.GetString("export.dir"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "magazyn"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "magazyn.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Stock.WarnAt == 0 {
		cfg.Stock.WarnAt = 100
	}
	if cfg.Stock.DangerAt == 0 {
		cfg.Stock.DangerAt = 50
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "."
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	if c.Stock.WarnAt < 0 || c.Stock.DangerAt < 0 {
		return fmt.Errorf("stock thresholds cannot be negative")
	}
	if c.Stock.DangerAt > c.Stock.WarnAt {
		return fmt.Errorf("stock.danger_at (%d) cannot exceed stock.warn_at (%d)",
			c.Stock.DangerAt, c.Stock.WarnAt)
	}
	return nil
}
