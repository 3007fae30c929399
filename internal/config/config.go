// Package config resolves the server configuration from the environment,
// optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when Load is called without explicit files.
const DefaultEnvFile = ".env"

// MaxOrbCount bounds ORB_COUNT and per-request count overrides.
const MaxOrbCount = 500

var (
	// ErrInvalidOrbCount is returned when ORB_COUNT is not an integer in [1, MaxOrbCount].
	ErrInvalidOrbCount = errors.New("config: invalid ORB_COUNT")
	// ErrInvalidLogLevel is returned for unknown LOG_LEVEL values.
	ErrInvalidLogLevel = errors.New("config: invalid LOG_LEVEL")
	// ErrInvalidLogFormat is returned for unknown LOG_FORMAT values.
	ErrInvalidLogFormat = errors.New("config: invalid LOG_FORMAT")
	// ErrInvalidGinMode is returned for GIN_MODE values gin does not know.
	ErrInvalidGinMode = errors.New("config: invalid GIN_MODE")
)

// Config is the resolved server configuration.
type Config struct {
	Port    string
	GinMode string
	// ContentFile replaces the embedded page content when set.
	ContentFile string
	Logging     LoggingConfig
	Orbs    OrbsConfig
	SMTP    SMTPConfig
}

// LoggingConfig defines log verbosity and formatting.
type LoggingConfig struct {
	Level  string
	Format string
}

// OrbsConfig controls the decorative motion field.
type OrbsConfig struct {
	Count     int
	ThemeFile string
}

// SMTPConfig holds the contact form mail relay settings.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Configured reports whether credentials are present.
func (s SMTPConfig) Configured() bool {
	return s.User != "" && s.Pass != ""
}

// Addr is the host:port of the relay.
func (s SMTPConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// Default returns the development defaults.
func Default() Config {
	return Config{
		Port:    "8080",
		GinMode: "release",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Orbs: OrbsConfig{
			Count: 120,
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
	}
}

// Load reads the given .env files (DefaultEnvFile when none are given) into
// the process environment and resolves the configuration from it. Missing
// files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv resolves the configuration using lookup. Unset or blank values keep
// their defaults.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("PORT"); ok {
		cfg.Port = v
	}
	if v, ok := get("GIN_MODE"); ok {
		switch mode := strings.ToLower(v); mode {
		case "debug", "release", "test":
			cfg.GinMode = mode
		default:
			return Config{}, fmt.Errorf("%w: %q", ErrInvalidGinMode, v)
		}
	}
	if v, ok := get("LOG_LEVEL"); ok {
		lvl, err := NormalizeLogLevel(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Logging.Level = lvl
	}
	if v, ok := get("LOG_FORMAT"); ok {
		format, err := NormalizeLogFormat(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Logging.Format = format
	}
	if v, ok := get("ORB_COUNT"); ok {
		n, err := ParseOrbCount(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Orbs.Count = n
	}
	if v, ok := get("CONTENT_FILE"); ok {
		cfg.ContentFile = v
	}
	if v, ok := get("THEME_FILE"); ok {
		cfg.Orbs.ThemeFile = v
	}
	if v, ok := get("SMTP_HOST"); ok {
		cfg.SMTP.Host = v
	}
	if v, ok := get("SMTP_PORT"); ok {
		cfg.SMTP.Port = v
	}
	if v, ok := get("SMTP_USER"); ok {
		cfg.SMTP.User = v
	}
	if v, ok := get("SMTP_PASS"); ok {
		cfg.SMTP.Pass = v
	}
	if v, ok := get("TO_EMAIL"); ok {
		cfg.SMTP.To = v
	}
	if cfg.SMTP.To == "" {
		cfg.SMTP.To = cfg.SMTP.User
	}

	return cfg, nil
}

// ParseOrbCount parses an orb count in [1, MaxOrbCount].
func ParseOrbCount(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 || n > MaxOrbCount {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrbCount, value)
	}
	return n, nil
}

// NormalizeLogLevel lowercases and validates a log level.
func NormalizeLogLevel(level string) (string, error) {
	l := strings.ToLower(strings.TrimSpace(level))
	switch l {
	case "":
		return "info", nil
	case "debug", "info", "warn", "error":
		return l, nil
	case "warning":
		return "warn", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
}

// NormalizeLogFormat lowercases and validates a log format.
func NormalizeLogFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case "", "json":
		return "json", nil
	case "console", "text":
		return "console", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLogFormat, format)
	}
}
