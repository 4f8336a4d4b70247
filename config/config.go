// Package config resolves the SDK's environment: deployment target,
// terminal credential, transport tuning and log level. Values come from
// TBANK_-prefixed environment variables (a .env file is honored), with
// defaults for everything but the credentials.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

// Environment selects the deployment target the client talks to.
type Environment string

const (
	EnvTest       Environment = "test"
	EnvProduction Environment = "production"
)

const (
	ProductionBaseURL = "https://securepay.tinkoff.ru"
	TestBaseURL       = "https://rest-api-test.tinkoff.ru"
)

// ParseEnvironment maps a raw setting onto a deployment target. Unknown
// values resolve to the test environment, never to production.
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production":
		return EnvProduction
	default:
		return EnvTest
	}
}

// BaseURL returns the resolved endpoint base for the target.
func (e Environment) BaseURL() string {
	if e == EnvProduction {
		return ProductionBaseURL
	}
	return TestBaseURL
}

type Config struct {
	// Env selects test or production; anything unrecognized means test.
	Env string `koanf:"env"`
	// TerminalKey is the merchant terminal identifier issued by T-Business.
	TerminalKey string `koanf:"terminal_key" validate:"required,max=20"`
	// Token is the bearer credential attached to every request.
	Token string `koanf:"token" validate:"required"`
	// Endpoint overrides the environment-derived base URL when set.
	// Useful for gateway test doubles.
	Endpoint string `koanf:"endpoint"`

	HTTP   HTTPConfig   `koanf:"http"`
	Logger LoggerConfig `koanf:"logger"`
}

// BaseURL resolves the deployment target's endpoint base.
func (c *Config) BaseURL() string {
	if c.Endpoint != "" {
		return strings.TrimRight(c.Endpoint, "/")
	}
	return ParseEnvironment(c.Env).BaseURL()
}

// HTTPConfig tunes the shared transport. The overall timeout bounds the
// whole exchange; the connect timeout only the dial phase.
type HTTPConfig struct {
	Timeout             time.Duration `koanf:"timeout"`
	ConnectTimeout      time.Duration `koanf:"connect_timeout"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host"`
}

// DefaultHTTP is the transport tuning used when nothing overrides it.
var DefaultHTTP = HTTPConfig{
	Timeout:             20 * time.Second,
	ConnectTimeout:      5 * time.Second,
	IdleConnTimeout:     90 * time.Second,
	MaxIdleConnsPerHost: 20,
}

// WithDefaults fills unset fields so a hand-built Config behaves like a
// loaded one.
func (h HTTPConfig) WithDefaults() HTTPConfig {
	if h.Timeout == 0 {
		h.Timeout = DefaultHTTP.Timeout
	}
	if h.ConnectTimeout == 0 {
		h.ConnectTimeout = DefaultHTTP.ConnectTimeout
	}
	if h.IdleConnTimeout == 0 {
		h.IdleConnTimeout = DefaultHTTP.IdleConnTimeout
	}
	if h.MaxIdleConnsPerHost == 0 {
		h.MaxIdleConnsPerHost = DefaultHTTP.MaxIdleConnsPerHost
	}
	return h
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

// NewLogger builds a text slog logger at the configured level.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Load resolves configuration from the environment: defaults first, then
// TBANK_-prefixed variables ("__" separates nesting, e.g.
// TBANK_HTTP__TIMEOUT=20s). Validation failure is a configuration error
// and is fatal for the caller.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(map[string]interface{}{
		"env":                          string(EnvTest),
		"http.timeout":                 DefaultHTTP.Timeout,
		"http.connect_timeout":         DefaultHTTP.ConnectTimeout,
		"http.idle_conn_timeout":       DefaultHTTP.IdleConnTimeout,
		"http.max_idle_conns_per_host": DefaultHTTP.MaxIdleConnsPerHost,
		"logger.level":                 "info",
	}, "."), nil)
	if err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	err = k.Load(env.Provider("TBANK_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TBANK_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
