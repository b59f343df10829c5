// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	// Loads a .env file from the working directory, if present, before any
	// variable is read. Real environment variables always win.
	_ "github.com/joho/godotenv/autoload"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is tried first for every variable. envconfig falls back to the
// bare name (e.g. DB_USER) when the prefixed one (APP_DB_USER) is unset.
const envPrefix = "APP"

// Config holds all application configuration.
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds PostgreSQL connection and pool settings.
type DatabaseConfig struct {
	// Host is a hostname or, when it starts with "/", a unix socket directory.
	Host string `envconfig:"DB_HOST" default:"127.0.0.1"`

	// Port is only used for TCP hosts.
	Port int `envconfig:"DB_PORT" default:"5432"`

	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASS" default:""`
	Name     string `envconfig:"DB_NAME" default:"vertigo_clan_dev"`

	// Schema and Table locate the clans table.
	Schema string `envconfig:"DB_SCHEMA" default:"clan_schema"`
	Table  string `envconfig:"DB_TABLE" default:"clans"`

	MinConns int `envconfig:"DB_MIN_CONNS" default:"1"`
	MaxConns int `envconfig:"DB_MAX_CONNS" default:"5"`

	// ConnectTimeout bounds dialing a new pooled connection.
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`

	// FailFast makes an unreachable database at startup fatal. When false the
	// failure is logged and the process keeps serving health checks.
	FailFast bool `envconfig:"DB_FAIL_FAST" default:"false"`

	// AutoMigrate runs the create-if-missing schema setup at startup.
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text, plain (default: json)
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// IsSocket reports whether Host names a unix socket directory.
func (c *DatabaseConfig) IsSocket() bool {
	return strings.HasPrefix(c.Host, "/")
}

// SSLMode is "disable" for socket hosts and "prefer" for TCP hosts.
func (c *DatabaseConfig) SSLMode() string {
	if c.IsSocket() {
		return "disable"
	}
	return "prefer"
}

// DSN returns the PostgreSQL connection URL.
// Socket hosts are passed as the host query parameter without a port.
func (c *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Path:   "/" + c.Name,
	}

	q := url.Values{}
	q.Set("sslmode", c.SSLMode())
	if c.IsSocket() {
		q.Set("host", c.Host)
	} else {
		u.Host = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from environment variables.
// It returns an error if a variable cannot be coerced to its field type.
func Load() (*Config, error) {
	var cfg Config

	// Load each config section separately to flatten env var names
	if err := envconfig.Process(envPrefix, &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if err := envconfig.Process(envPrefix, &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	if err := envconfig.Process(envPrefix, &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}

	return &cfg, nil
}
