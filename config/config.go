package config

import (
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// Config holds application configuration loaded from environment variables.
// Defaults are tuned for local development.
type Config struct {
	AppName string `env:"APP_NAME" env-default:"writing-practice-api"`
	Env     string `env:"APP_ENV" env-default:"development"` // development, staging, production
	Port    string `env:"PORT" env-default:"3000"`
	GinMode string `env:"GIN_MODE" env-default:"release"`

	// Database
	DatabaseURL   string        `env:"DATABASE_URL" env-required:"true"`
	DBMaxConns    int           `env:"DB_MAX_CONNS" env-default:"10"`
	DBMinConns    int           `env:"DB_MIN_CONNS" env-default:"2"`
	DBMaxConnLife time.Duration `env:"DB_MAX_CONN_LIFETIME" env-default:"1h"`

	// HTTP server
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`

	// CORS
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"*"` // comma-separated

	// HTTP access log toggle
	HTTPLogEnabled bool `env:"HTTP_LOG_ENABLED" env-default:"false"`
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read env")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_URL must not be empty")
	}
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT must not be empty")
	}
	if c.DBMaxConns <= 0 {
		return errors.Errorf("DB_MAX_CONNS must be > 0, got %d", c.DBMaxConns)
	}
	if c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return errors.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS, got %d", c.DBMinConns)
	}
	return nil
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// AccessLogEnabled reports whether every request gets a log line. Always on in development.
func (c *Config) AccessLogEnabled() bool {
	return c.HTTPLogEnabled || c.IsDevelopment()
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// AllowAllOrigins reports whether CORS is open to any origin.
func (c *Config) AllowAllOrigins() bool {
	origins := c.CORSOrigins()
	return len(origins) == 0 || (len(origins) == 1 && origins[0] == "*")
}
