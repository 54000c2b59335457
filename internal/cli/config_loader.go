// filepath: internal/cli/config_loader.go
package cli

import (
	"fmt"
	"os"
	"strconv"

	"contactgate/internal/config"
	"contactgate/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags variables
	cfgFile         string
	logLevel        string
	port            int
	platformURL     string
	platformTimeout int
	rateLimit       int
	auditEnabled    bool
	auditDB         string
	auditRetention  int
)

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: CGW_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: CGW_LOG_LEVEL)")

	// Server-specific flags
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: CGW_PORT)")
	RootCmd.Flags().StringVar(&platformURL, "platform-url", "", "Base URL of the messaging platform. (Env: CGW_PLATFORM_URL)")
	RootCmd.Flags().IntVar(&platformTimeout, "platform-timeout", 0, "Timeout in seconds for platform calls, 0 for none. (Env: CGW_PLATFORM_TIMEOUT)")
	RootCmd.Flags().IntVar(&rateLimit, "rate-limit", 0, "Requests per credential per minute, 0 disables. (Env: CGW_RATE_LIMIT)")
	RootCmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "Enable detailed audit logging. (Env: CGW_AUDIT_ENABLED=true)")
	RootCmd.Flags().StringVar(&auditDB, "audit-db", "", "Path to the SQLite audit database, empty for stdout-only auditing. (Env: CGW_AUDIT_DB)")
	RootCmd.Flags().IntVar(&auditRetention, "audit-retention", 0, "Days to keep stored audit events, 0 keeps them forever. (Env: CGW_AUDIT_RETENTION_DAYS)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 1. Check environment variable for config path first
	if envPath := os.Getenv("CGW_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, cmd)

	// init-config writes a starter file, a placeholder URL is fine there.
	if cfg.Platform.BaseURL == "" && cmd.Name() == "init-config" {
		cfg.Platform.BaseURL = "https://platform.example.org"
	}

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	getEnv := func(key string) string { return os.Getenv(key) }

	// --- 1. Environment Variables ---
	if v := getEnv("CGW_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := getEnv("CGW_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getEnv("CGW_PLATFORM_URL"); v != "" {
		c.Platform.BaseURL = v
	}
	if v := getEnv("CGW_PLATFORM_TIMEOUT"); v != "" {
		if t, err := strconv.Atoi(v); err == nil {
			c.Platform.TimeoutSeconds = t
		}
	}
	if v := getEnv("CGW_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Server.RateLimitPerMin = n
		}
	}
	if v := getEnv("CGW_AUDIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.AuditEnabled = b
		}
	}
	if v := getEnv("CGW_AUDIT_DB"); v != "" {
		c.Audit.DatabasePath = v
	}
	if v := getEnv("CGW_AUDIT_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audit.RetentionDays = n
		}
	}

	// --- 2. CLI Flags (Take precedence) ---
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if platformURL != "" {
		c.Platform.BaseURL = platformURL
	}
	if platformTimeout != 0 {
		c.Platform.TimeoutSeconds = platformTimeout
	}
	if rateLimit != 0 {
		c.Server.RateLimitPerMin = rateLimit
	}
	// Check if flag was explicitly set
	if cmd.Flags().Changed("audit-enabled") {
		c.Logging.AuditEnabled = auditEnabled
	}
	if auditDB != "" {
		c.Audit.DatabasePath = auditDB
	}
	if auditRetention != 0 {
		c.Audit.RetentionDays = auditRetention
	}
}
