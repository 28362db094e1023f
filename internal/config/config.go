package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider is the read-only view of the configuration handed to modules.
type Provider interface {
	GetAddr() string
	GetContentPath() string
	GetDefaultLanguage() string
	GetSessionSecret() string
	GetHotReload() bool
	GetStaticDir() string
	GetRateLimit() float64
}

// Config holds all configuration for the application.
type Config struct {
	Addr            string  `env:"FORMDOCS_ADDR" envDefault:":8080"`
	ContentPath     string  `env:"FORMDOCS_CONTENT_PATH"`
	DefaultLanguage string  `env:"FORMDOCS_DEFAULT_LANGUAGE" envDefault:"en"`
	SessionSecret   string  `env:"FORMDOCS_SESSION_SECRET" envDefault:"formdocs-development-secret"`
	HotReload       bool    `env:"FORMDOCS_HOT_RELOAD" envDefault:"false"`
	StaticDir       string  `env:"FORMDOCS_STATIC_DIR" envDefault:"web/static"`
	RateLimit       float64 `env:"FORMDOCS_RATE_LIMIT" envDefault:"20"`
	LogFormat       string  `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel        string  `env:"LOG_LEVEL" envDefault:"info"`
}

// New loads configuration from a .env file, if any, and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse decodes the configuration from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.DefaultLanguage == "" {
		return nil, fmt.Errorf("FORMDOCS_DEFAULT_LANGUAGE must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("FORMDOCS_RATE_LIMIT must be positive, got %v", cfg.RateLimit)
	}
	return cfg, nil
}

func (c *Config) GetAddr() string            { return c.Addr }
func (c *Config) GetContentPath() string     { return c.ContentPath }
func (c *Config) GetDefaultLanguage() string { return c.DefaultLanguage }
func (c *Config) GetSessionSecret() string   { return c.SessionSecret }
func (c *Config) GetHotReload() bool         { return c.HotReload }
func (c *Config) GetStaticDir() string       { return c.StaticDir }
func (c *Config) GetRateLimit() float64      { return c.RateLimit }
