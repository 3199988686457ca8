package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/forgo/todos/api/internal/database"
)

// DefaultConfigFile is read when CONFIG_FILE is unset and the file exists
const DefaultConfigFile = "todos.toml"

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
	SeedFile string         `toml:"seed_file"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string        `toml:"port"`
	Env            string        `toml:"env"`
	ReadTimeout    time.Duration `toml:"read_timeout"`
	WriteTimeout   time.Duration `toml:"write_timeout"`
	MaxBodyBytes   int64         `toml:"max_body_bytes"`
	AllowedOrigins []string      `toml:"allowed_origins"`
}

// DatabaseConfig selects the storage driver and its connection settings.
// Path is used by sqlite; the remaining fields by surrealdb.
type DatabaseConfig struct {
	Driver    string `toml:"driver"`
	Path      string `toml:"path"`
	Host      string `toml:"host"`
	Port      string `toml:"port"`
	Namespace string `toml:"namespace"`
	Database  string `toml:"database"`
	User      string `toml:"user"`
	Password  string `toml:"password"`
}

// LogConfig holds slog settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Load builds the configuration in three layers: defaults, then an optional
// TOML file, then environment variables. A .env file in the working
// directory is loaded into the environment first if present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaults()

	path, explicit := configFilePath()
	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("load config file %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			MaxBodyBytes:   1 << 20,
			AllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Driver:    database.DriverSQLite,
			Path:      "todos.db",
			Host:      "localhost",
			Port:      "8000",
			Namespace: "todos",
			Database:  "main",
			User:      "root",
			Password:  "root",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// configFilePath reports which TOML file to read and whether the caller
// asked for it explicitly.
func configFilePath() (string, bool) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return path, true
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile, false
	}
	return "", false
}

// loadFile decodes a TOML file over cfg. Durations are strings such as "15s".
func loadFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		slog.Warn("unknown config keys ignored", slog.Any("keys", undecoded))
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnv("SERVER_PORT", cfg.Server.Port)
	cfg.Server.Env = getEnv("SERVER_ENV", cfg.Server.Env)
	cfg.Server.ReadTimeout = getDurationEnv("SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = getDurationEnv("SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout)
	cfg.Server.MaxBodyBytes = getInt64Env("SERVER_MAX_BODY_BYTES", cfg.Server.MaxBodyBytes)
	cfg.Server.AllowedOrigins = getSliceEnv("CORS_ALLOWED_ORIGINS", cfg.Server.AllowedOrigins)

	cfg.Database.Driver = getEnv("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.Path = getEnv("DB_PATH", cfg.Database.Path)
	cfg.Database.Host = getEnv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnv("DB_PORT", cfg.Database.Port)
	cfg.Database.Namespace = getEnv("DB_NAMESPACE", cfg.Database.Namespace)
	cfg.Database.Database = getEnv("DB_DATABASE", cfg.Database.Database)
	cfg.Database.User = getEnv("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)

	cfg.SeedFile = getEnv("SEED_FILE", cfg.SeedFile)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// DriverConfig converts the database section into the driver config
func (c *Config) DriverConfig() database.Config {
	return database.Config{
		Driver:    c.Database.Driver,
		Path:      c.Database.Path,
		Host:      c.Database.Host,
		Port:      c.Database.Port,
		User:      c.Database.User,
		Password:  c.Database.Password,
		Namespace: c.Database.Namespace,
		Database:  c.Database.Database,
	}
}

// SlogLevel maps LOG_LEVEL onto a slog level. Unknown values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("SERVER_MAX_BODY_BYTES must be positive"))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	// Database validation
	switch c.Database.Driver {
	case database.DriverSQLite:
		if c.Database.Path == "" {
			errs = append(errs, errors.New("DB_PATH is required for the sqlite driver"))
		}
	case database.DriverSurrealDB:
		var missing []string
		if c.Database.Host == "" {
			missing = append(missing, "DB_HOST")
		}
		if c.Database.Port == "" {
			missing = append(missing, "DB_PORT")
		}
		if c.Database.Namespace == "" {
			missing = append(missing, "DB_NAMESPACE")
		}
		if c.Database.Database == "" {
			missing = append(missing, "DB_DATABASE")
		}
		if len(missing) > 0 {
			errs = append(errs, fmt.Errorf("surrealdb driver: missing required fields: %s", strings.Join(missing, ", ")))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be '%s' or '%s', got '%s'",
			database.DriverSQLite, database.DriverSurrealDB, c.Database.Driver))
	}

	// Log validation
	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be 'json' or 'text', got '%s'", c.Log.Format))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
