package database

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"budgetapi/internal/logger"
)

// Config holds database configuration
type Config struct {
	// URL is a full connection string (DATABASE_URL). When set it wins over
	// the individual host/port/user fields.
	URL string

	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// Schema is the namespace holding the budget tables. It is applied as
	// the connection's search_path.
	Schema string

	MaxOpenConns int
	MaxIdleConns int
}

// NewConfig creates a new database configuration
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		logger.Get().Debug(".env file not found, using process environment")
	}

	maxOpen, err := getEnvInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return nil, err
	}
	maxIdle, err := getEnvInt("DB_MAX_IDLE_CONNS", 2)
	if err != nil {
		return nil, err
	}

	return &Config{
		URL:          getEnv("DATABASE_URL", ""),
		Host:         getEnv("DB_HOST", "localhost"),
		Port:         getEnv("DB_PORT", "5432"),
		User:         getEnv("DB_USER", "budget"),
		Password:     getEnv("DB_PASSWORD", "budget"),
		DBName:       getEnv("DB_NAME", "budget"),
		SSLMode:      getEnv("DB_SSLMODE", "disable"),
		Schema:       getEnv("DB_SCHEMA", ""),
		MaxOpenConns: maxOpen,
		MaxIdleConns: maxIdle,
	}, nil
}

// DSN returns the PostgreSQL connection string in URL form. The same string
// is accepted by pgx (gorm) and by golang-migrate's postgres driver.
func (c *Config) DSN() (string, error) {
	var u *url.URL
	if c.URL != "" {
		parsed, err := url.Parse(c.URL)
		if err != nil {
			return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
		}
		u = parsed
	} else {
		u = &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(c.User, c.Password),
			Host:   c.Host + ":" + c.Port,
			Path:   "/" + c.DBName,
		}
	}

	if u.Scheme == "postgresql" {
		u.Scheme = "postgres"
	}

	q := u.Query()
	if q.Get("sslmode") == "" && c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	if c.Schema != "" {
		q.Set("search_path", c.Schema)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s value %q", key, raw)
	}
	return n, nil
}
