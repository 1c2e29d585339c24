package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete configuration schema for Herodex.
//
// Configuration sources (in order of precedence):
//  1. Defaults
//  2. Configuration file (optional)
//  3. Environment variables
//  4. Command-line port argument
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	EnableCORS      bool          `mapstructure:"enable_cors" yaml:"enable_cors"`
	CORSOrigins     []string      `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type CatalogConfig struct {
	BaseURL      string        `mapstructure:"base_url" yaml:"base_url" validate:"required,url"`
	ResourcePath string        `mapstructure:"resource_path" yaml:"resource_path" validate:"required,startswith=/"`
	PublicKey    string        `mapstructure:"public_key" yaml:"public_key"`
	PrivateKey   string        `mapstructure:"private_key" yaml:"private_key"`
	Timestamp    string        `mapstructure:"timestamp" yaml:"timestamp"` // fixed ts; "now" means wall clock
	PageSize     int           `mapstructure:"page_size" yaml:"page_size" validate:"min=1,max=100"`
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout"`
	UserAgent    string        `mapstructure:"user_agent" yaml:"user_agent" validate:"max=200"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes" yaml:"max_body_bytes" validate:"min=1024"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error, fatal, panic
	Pretty bool   `mapstructure:"pretty" yaml:"pretty"` // human-readable console output
}

// Option adjusts loading.
type Option func(*loadOptions)

type loadOptions struct {
	port string
}

// WithPort sets the port given on the command line. It wins over every
// other source when it parses as a valid port and is ignored otherwise.
func WithPort(port string) Option {
	return func(o *loadOptions) {
		o.port = port
	}
}

// Load loads configuration from defaults, configuration file,
// and environment variables, then validates the result.
//
// The function fails fast on:
//   - Invalid configuration file
//   - Invalid or missing required configuration values
//
// Missing API keys are reported as catalog.ErrConfiguration.
func Load(opts ...Option) (*Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()

	// Register default values
	setDefaults(v)

	// Environment variable support
	v.SetEnvPrefix("HERODEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(false)
	v.AutomaticEnv()

	// Optional configuration file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Cross-platform config directory
	if configDir := getConfigDir(); configDir != "" {
		v.AddConfigPath(configDir)
	}

	// Read configuration file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	// Well-known un-prefixed variables take precedence over the prefixed ones.
	if err := bindEnv(v, envBindings); err != nil {
		return nil, err
	}

	// Unmarshal configuration into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Port: CLI argument, then PORT, then whatever the other sources gave.
	cfg.Server.Port = resolvePort(cfg.Server.Port, o.port, os.Getenv("PORT"))

	// Normalize configuration
	normalizeConfig(&cfg)

	// Validate final configuration
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envBindings maps config keys to the environment variables read for them,
// in order of precedence.
var envBindings = map[string][]string{
	"catalog.public_key":  {"PUB_API_KEY", "HERODEX_CATALOG_PUBLIC_KEY"},
	"catalog.private_key": {"PRI_API_KEY", "HERODEX_CATALOG_PRIVATE_KEY"},
	"catalog.page_size":   {"DB_QUERY_LIMIT", "HERODEX_CATALOG_PAGE_SIZE"},
}

func bindEnv(v *viper.Viper, bindings map[string][]string) error {
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

// resolvePort returns the first candidate that parses as a port in range,
// or fallback when none does.
func resolvePort(fallback int, candidates ...string) int {
	for _, c := range candidates {
		port, err := strconv.Atoi(strings.TrimSpace(c))
		if err == nil && port >= 1 && port <= 65535 {
			return port
		}
	}
	return fallback
}

// getConfigDir returns the appropriate config directory for the current OS
func getConfigDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "herodex")
		}
		return ""
	}

	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".herodex")
	}
	return ""
}
