package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported DB_DRIVER values.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported AUTH_MODE values.
const (
	AuthModeStore = "store"
	AuthModeDemo  = "demo"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string
	Environment string
	DBDriver    string
	DatabaseURL string
	SQLitePath  string
	JWTSecret   string
	JWTIssuer   string
	JWTTTL      time.Duration
	CORSOrigins []string
	AuthMode    string
	LoginDelay  time.Duration
	LoginRate   float64
	LoginBurst  int
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "8080"),
		Environment: strings.ToLower(fallback(os.Getenv("APP_ENV"), "development")),
		DBDriver:    strings.ToLower(fallback(os.Getenv("DB_DRIVER"), DriverPostgres)),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SQLitePath:  fallback(os.Getenv("SQLITE_PATH"), "hic.db"),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:   fallback(os.Getenv("JWT_ISSUER"), "hic-backend"),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		AuthMode:    strings.ToLower(fallback(os.Getenv("AUTH_MODE"), AuthModeStore)),
	}

	cfg.JWTTTL = time.Duration(positiveInt("JWT_TTL_MINUTES", 60)) * time.Minute
	cfg.LoginBurst = positiveInt("LOGIN_RATE_BURST", 10)

	delay, err := strconv.Atoi(fallback(os.Getenv("LOGIN_DELAY_MS"), "1000"))
	if err != nil || delay < 0 {
		return Config{}, fmt.Errorf("invalid LOGIN_DELAY_MS %q", os.Getenv("LOGIN_DELAY_MS"))
	}
	cfg.LoginDelay = time.Duration(delay) * time.Millisecond

	rate, err := strconv.ParseFloat(fallback(os.Getenv("LOGIN_RATE_PER_SEC"), "5"), 64)
	if err != nil || rate <= 0 {
		return Config{}, fmt.Errorf("invalid LOGIN_RATE_PER_SEC %q", os.Getenv("LOGIN_RATE_PER_SEC"))
	}
	cfg.LoginRate = rate

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required")
		}
	case DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	switch cfg.AuthMode {
	case AuthModeStore, AuthModeDemo:
	default:
		return Config{}, fmt.Errorf("unsupported AUTH_MODE %q", cfg.AuthMode)
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// IsProduction reports whether error details must be withheld from clients.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func positiveInt(key string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil && n > 0 {
		return n
	}
	return def
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
