package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultUserID is substituted when a request carries no user_id query parameter.
	DefaultUserID = "default_user"
	// DefaultAddr is the local development bind address.
	DefaultAddr = "127.0.0.1:5000"
)

type Config struct {
	Addr            string `yaml:"addr"`
	Debug           bool   `yaml:"debug"`
	DefaultUserID   string `yaml:"default_user_id"`
	CORSAllowOrigin string `yaml:"cors_allow_origin"`
	MetricsEnabled  bool   `yaml:"metrics_enabled"`
	ShutdownTimeout int    `yaml:"shutdown_timeout_sec"`
	Log             Log    `yaml:"log"`
}

// Log controls the process logger. File is optional; when empty only stdout is used.
type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Addr:            DefaultAddr,
		Debug:           true,
		DefaultUserID:   DefaultUserID,
		CORSAllowOrigin: "*",
		MetricsEnabled:  true,
		ShutdownTimeout: 10,
		Log: Log{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if path
// is non-empty), then environment variables. Command-line flags are applied by
// the caller on top of the result.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "read config file %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config file %s", path)
		}
	}

	cfg.Addr = getenv("ADDR", cfg.Addr)
	cfg.Debug = getbool("DEBUG", cfg.Debug)
	cfg.DefaultUserID = getenv("DEFAULT_USER_ID", cfg.DefaultUserID)
	cfg.CORSAllowOrigin = getenv("CORS_ALLOW_ORIGIN", cfg.CORSAllowOrigin)
	cfg.MetricsEnabled = getbool("METRICS_ENABLED", cfg.MetricsEnabled)
	cfg.ShutdownTimeout = atoi(os.Getenv("SHUTDOWN_TIMEOUT_SEC"), cfg.ShutdownTimeout)

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(getenv("LOG_LEVEL", cfg.Log.Level)))
	cfg.Log.File = getenv("LOG_FILE", cfg.Log.File)
	cfg.Log.MaxSizeMB = atoi(os.Getenv("LOG_MAX_SIZE_MB"), cfg.Log.MaxSizeMB)
	cfg.Log.MaxBackups = atoi(os.Getenv("LOG_MAX_BACKUPS"), cfg.Log.MaxBackups)
	cfg.Log.MaxAgeDays = atoi(os.Getenv("LOG_MAX_AGE_DAYS"), cfg.Log.MaxAgeDays)

	if cfg.DefaultUserID == "" {
		cfg.DefaultUserID = DefaultUserID
	}
	return cfg, nil
}

// ShutdownGrace is the time allowed for in-flight requests on shutdown.
func (c Config) ShutdownGrace() time.Duration {
	if c.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ShutdownTimeout) * time.Second
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func atoi(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return def
	}
	return v
}
