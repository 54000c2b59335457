// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"contactgate/internal/shared"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Config holds the application's configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Platform PlatformConfig `toml:"platform"`
	Logging  LoggingConfig  `toml:"logging"`
	Audit    AuditConfig    `toml:"audit"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port" validate:"gte=0,lte=65535"`

	// RateLimitPerMin caps requests per credential per minute on the
	// contacts routes. 0 disables rate limiting.
	RateLimitPerMin int `toml:"rate_limit_per_min" validate:"gte=0"`
}

// PlatformConfig holds the connection settings for the messaging platform.
type PlatformConfig struct {
	BaseURL string `toml:"base_url" validate:"required,url"`

	// TimeoutSeconds bounds a single platform call. 0 means no timeout,
	// the call runs until the request context is done.
	TimeoutSeconds int `toml:"timeout_seconds" validate:"gte=0"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// AuditConfig holds settings for the persistent audit trail. An empty
// DatabasePath keeps audit events on stdout only.
type AuditConfig struct {
	DatabasePath string `toml:"database_path"`

	// RetentionDays is how long stored events are kept before the
	// housekeeping sweep removes them. 0 keeps events forever.
	RetentionDays int `toml:"retention_days" validate:"gte=0"`
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
// Used by the init-config command to write a starter file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorCreateFile)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorEncodeFile)
	}
	return nil
}

var validate = validator.New()

// ParseAndValidate applies defaults and checks the struct-level validation
// tags. Called after flags and environment overrides are merged in.
func (c *Config) ParseAndValidate() error {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("invalid config value for %s (%s)", f.Namespace(), f.Tag())
		}
		return err
	}
	return nil
}

// PlatformTimeout returns the configured platform call timeout, 0 if unset.
func (c *Config) PlatformTimeout() time.Duration {
	return time.Duration(c.Platform.TimeoutSeconds) * time.Second
}

// AuditRetention returns the configured retention window, 0 if unset.
func (c *Config) AuditRetention() time.Duration {
	return time.Duration(c.Audit.RetentionDays) * 24 * time.Hour
}
