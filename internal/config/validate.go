package config

import (
	"errors"
	"fmt"
	"net"
	"slices"
	"strings"
	"time"

	"herodex/internal/catalog"

	"github.com/go-playground/validator/v10"
)

// Package-level constants for performance optimization
var (
	validLogLevels  = []string{"debug", "info", "warn", "error", "fatal", "panic"}
	structValidator = validator.New()
)

// validateConfig validates the configuration and returns an error if invalid.
func validateConfig(c *Config) error {
	for _, validate := range []func() error{
		func() error { return validateCatalogConfig(c.Catalog) },
		func() error { return validateServerConfig(c.Server) },
		func() error { return validateLogConfig(c.Log) },
	} {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

// validateServerConfig validates server configuration.
func validateServerConfig(s ServerConfig) error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("server.port out of range (1-65535)")
	}

	// Validate host if specified
	if s.Host != "" && s.Host != "0.0.0.0" && s.Host != "localhost" {
		if ip := net.ParseIP(s.Host); ip == nil {
			return fmt.Errorf("server.host invalid: %s", s.Host)
		}
	}

	// Validate timeouts
	if s.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be greater than 0")
	}
	if s.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be greater than 0")
	}
	if s.IdleTimeout <= 0 {
		return fmt.Errorf("server.idle_timeout must be greater than 0")
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be greater than 0")
	}

	// Validate timeout ranges (reasonable limits)
	if s.ReadTimeout > 5*time.Minute {
		return fmt.Errorf("server.read_timeout too large (max 5m)")
	}
	if s.WriteTimeout > 5*time.Minute {
		return fmt.Errorf("server.write_timeout too large (max 5m)")
	}
	if s.IdleTimeout > 30*time.Minute {
		return fmt.Errorf("server.idle_timeout too large (max 30m)")
	}
	if s.ShutdownTimeout > 5*time.Minute {
		return fmt.Errorf("server.shutdown_timeout too large (max 5m)")
	}

	// Minimum timeout validation
	if s.ReadTimeout < time.Second {
		return fmt.Errorf("server.read_timeout too small (min 1s)")
	}
	if s.WriteTimeout < time.Second {
		return fmt.Errorf("server.write_timeout too small (min 1s)")
	}

	if s.EnableCORS && len(s.CORSOrigins) == 0 {
		return fmt.Errorf("server.cors_origins is required when enable_cors is set")
	}

	return nil
}

// validateCatalogConfig validates catalog configuration.
// Missing keys are reported first, as catalog.ErrConfiguration.
func validateCatalogConfig(c CatalogConfig) error {
	creds := catalog.Credentials{PublicKey: c.PublicKey, PrivateKey: c.PrivateKey}
	if err := creds.Validate(); err != nil {
		return err
	}

	if err := structValidator.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("catalog.%s failed %q validation", toSnake(fe.Field()), fe.Tag())
		}
		return fmt.Errorf("catalog: %w", err)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("catalog.timeout must be greater than 0")
	}
	if c.Timeout > 2*time.Minute {
		return fmt.Errorf("catalog.timeout too large (max 2m)")
	}
	if c.Timeout < 100*time.Millisecond {
		return fmt.Errorf("catalog.timeout too small (min 100ms)")
	}

	return nil
}

// validateLogConfig validates log configuration.
func validateLogConfig(l LogConfig) error {
	if !slices.Contains(validLogLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("log.level must be one of: debug, info, warn, error, fatal, panic")
	}
	return nil
}

// toSnake converts a Go field name to its config key form (BaseURL → base_url).
func toSnake(field string) string {
	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
