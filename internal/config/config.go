package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS" envDefault:":8080"`
	DatabaseURI     string        `env:"DATABASE_URI"`
	OrdersAPIURL    string        `env:"ORDERS_API_URL"`
	OrdersAPIKey    string        `env:"ORDERS_API_KEY"`
	JWTSecret       string        `env:"JWT_SECRET" envDefault:"change-me-in-production"`
	JWTSecretFile   string        `env:"JWT_SECRET_FILE"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	BcryptCost      int           `env:"BCRYPT_COST" envDefault:"10"`
	LocalStoreDir   string        `env:"LOCAL_STORE_DIR" envDefault:"./data"`
	LocalOrdersSlot string        `env:"LOCAL_ORDERS_SLOT" envDefault:"pedidos_v2_fallback"`
	AuditSlot       string        `env:"AUDIT_SLOT" envDefault:"audit_logs_v1"`
	UserEmailDomain string        `env:"USER_EMAIL_DOMAIN" envDefault:"@empresa.local"`
	WebDir          string        `env:"WEB_DIR" envDefault:"./web"`
	RemoteTimeout   time.Duration `env:"REMOTE_TIMEOUT" envDefault:"3s"`
	HealthInterval  time.Duration `env:"HEALTH_INTERVAL" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Timezone        string        `env:"TIMEZONE" envDefault:"UTC"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`

	// Location is resolved from Timezone and decides what "today" means.
	Location *time.Location `env:"-"`
}

const (
	defaultTokenTTL        = 24 * time.Hour
	defaultRemoteTimeout   = 3 * time.Second
	defaultHealthInterval  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultEmailDomain     = "@empresa.local"
)

// Load parses configuration from environment variables and flags.
func Load() (*Config, error) {
	return load(os.Args[1:], env.ToMap(os.Environ()))
}

func load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("encomendas", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		remoteTimeoutStr   = cfg.RemoteTimeout.String()
		healthIntervalStr  = cfg.HealthInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.OrdersAPIURL, "api-url", cfg.OrdersAPIURL, "REST endpoint of the remote orders table")
	fs.StringVar(&cfg.OrdersAPIKey, "api-key", cfg.OrdersAPIKey, "API key of the remote orders table")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.LocalStoreDir, "local-dir", cfg.LocalStoreDir, "Directory of the local fallback store")
	fs.StringVar(&cfg.WebDir, "web-dir", cfg.WebDir, "Directory with static pages")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	fs.StringVar(&remoteTimeoutStr, "remote-timeout", remoteTimeoutStr, "Timeout of a single remote call")
	fs.StringVar(&healthIntervalStr, "health-interval", healthIntervalStr, "Interval between remote health checks")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.RemoteTimeout, err = time.ParseDuration(remoteTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid remote timeout: %w", err)
	}

	if cfg.HealthInterval, err = time.ParseDuration(healthIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid health interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.JWTSecretFile != "" {
		content, err := os.ReadFile(cfg.JWTSecretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.RemoteTimeout <= 0 {
		cfg.RemoteTimeout = defaultRemoteTimeout
	}

	if cfg.HealthInterval <= 0 {
		cfg.HealthInterval = defaultHealthInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.UserEmailDomain == "" {
		cfg.UserEmailDomain = defaultEmailDomain
	}
	if !strings.HasPrefix(cfg.UserEmailDomain, "@") {
		cfg.UserEmailDomain = "@" + cfg.UserEmailDomain
	}

	if cfg.Location, err = time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.LocalOrdersSlot == "" || cfg.AuditSlot == "" {
		return nil, fmt.Errorf("local slot names must not be empty")
	}

	return cfg, nil
}

// Now returns the current time in the configured location.
func (c *Config) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}
