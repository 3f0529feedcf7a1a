package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Quiz     QuizConfig
	Catalog  CatalogConfig

	CorsAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	PostLanguage       string   `env:"POST_LANGUAGE" envDefault:"en"`
}

type DatabaseConfig struct {
	Driver string `env:"DATABASE_DRIVER" envDefault:"postgres"`
	DSN    string `env:"DATABASE_DSN"`
}

type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

type AuthConfig struct {
	JWTSecret    string        `env:"JWT_SECRET"`
	TokenTTL     time.Duration `env:"JWT_TTL" envDefault:"720h"`
	CookieDomain string        `env:"COOKIE_DOMAIN"`
}

type QuizConfig struct {
	MaxResample int   `env:"QUIZ_MAX_RESAMPLE" envDefault:"50"`
	Seed        int64 `env:"QUIZ_SEED" envDefault:"0"`
}

type CatalogConfig struct {
	CacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`
	PageSize int           `env:"CATALOG_PAGE_SIZE" envDefault:"10"`
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Database.Driver) {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database DSN is required")
	}
	if c.Quiz.MaxResample < 1 {
		return fmt.Errorf("invalid quiz max resample: %d", c.Quiz.MaxResample)
	}
	if c.Catalog.PageSize < 1 {
		return fmt.Errorf("invalid catalog page size: %d", c.Catalog.PageSize)
	}
	return nil
}
