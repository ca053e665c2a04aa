package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"tripdeck/internal/views/theme"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Session  SessionConfig
	Gallery  GalleryConfig
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr        string `validate:"required"`
	AssetsDir   string
	ReadTimeout time.Duration `validate:"gte=0"`
}

// DatabaseConfig contains the fixture catalogue connection settings.
type DatabaseConfig struct {
	URL             string
	MaxIdleConns    int           `validate:"gte=0"`
	MaxOpenConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
	ConnMaxIdleTime time.Duration `validate:"gte=0"`
	UseMock         bool
}

// LoggingConfig selects the process log level.
type LoggingConfig struct {
	Level string `validate:"omitempty,oneof=debug info warn warning error"`
}

// SessionConfig controls the gallery session cookie.
type SessionConfig struct {
	Lifetime     time.Duration `validate:"gte=0"`
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// GalleryConfig holds gallery defaults.
type GalleryConfig struct {
	DefaultTheme theme.Key
}

// environment is the raw shape read from the process environment.
type environment struct {
	ServerAddr      string        `env:"SERVER_ADDR"`
	Addr            string        `env:"ADDR"`
	AssetsDir       string        `env:"ASSETS_DIR" envDefault:"web/static"`
	ReadTimeout     time.Duration `env:"SERVER_READ_HEADER_TIMEOUT" envDefault:"5s"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	DBURL           string        `env:"DB_URL"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"20"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" envDefault:"30m"`
	ConnMaxIdleTime time.Duration `env:"DATABASE_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	UseMock         string        `env:"DATABASE_USE_MOCK"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	SessionLifetime time.Duration `env:"SESSION_LIFETIME" envDefault:"12h"`
	CookieName      string        `env:"SESSION_COOKIE_NAME" envDefault:"tripdeck_session"`
	CookieDomain    string        `env:"SESSION_COOKIE_DOMAIN"`
	CookieSecure    bool          `env:"SESSION_COOKIE_SECURE" envDefault:"true"`
	DefaultTheme    string        `env:"GALLERY_DEFAULT_THEME"`
}

var validate = validator.New()

// Load inspects the environment and builds a Config value.
func Load() (Config, error) {
	var raw environment
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	dbURL := firstNonEmpty(raw.DatabaseURL, raw.DBURL)
	// Without a catalogue URL the seeded in-memory catalogue is used.
	useMock := strings.TrimSpace(dbURL) == ""
	if strings.TrimSpace(raw.UseMock) != "" {
		parsed, err := strconv.ParseBool(strings.TrimSpace(raw.UseMock))
		if err != nil {
			return Config{}, fmt.Errorf("parse DATABASE_USE_MOCK: %w", err)
		}
		useMock = parsed
	}

	cfg := Config{
		Server: ServerConfig{
			Addr:        firstNonEmpty(raw.ServerAddr, raw.Addr, ":8080"),
			AssetsDir:   raw.AssetsDir,
			ReadTimeout: raw.ReadTimeout,
		},
		Database: DatabaseConfig{
			URL:             dbURL,
			MaxIdleConns:    raw.MaxIdleConns,
			MaxOpenConns:    raw.MaxOpenConns,
			ConnMaxLifetime: raw.ConnMaxLifetime,
			ConnMaxIdleTime: raw.ConnMaxIdleTime,
			UseMock:         useMock,
		},
		Logging: LoggingConfig{Level: strings.ToLower(strings.TrimSpace(raw.LogLevel))},
		Session: SessionConfig{
			Lifetime:     raw.SessionLifetime,
			CookieName:   raw.CookieName,
			CookieDomain: raw.CookieDomain,
			CookieSecure: raw.CookieSecure,
		},
		Gallery: GalleryConfig{DefaultTheme: theme.Validate(raw.DefaultTheme)},
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg and reports the first invalid field.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return fmt.Errorf("server address must not be empty")
	}
	if !cfg.Database.UseMock && strings.TrimSpace(cfg.Database.URL) == "" {
		return fmt.Errorf("database URL must be set when the mock catalogue is disabled")
	}
	if err := validate.Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("config: %s failed validation for tag %q: %w", fieldName(fe), fe.Tag(), err)
	}
	return fmt.Errorf("config: %w", err)
}

// fieldName lower-cases the struct namespace, so Config.Logging.Level reads
// logging.level.
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
