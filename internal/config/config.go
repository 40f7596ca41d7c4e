package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Host string
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUsername string
	DBPassword string
	DBDatabase string
	DBParams   string

	// Session store
	RedisHost string
	RedisPort string

	// Sessions
	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool
}

// Load reads configuration from the environment. Missing required values are
// an error here and fatal in main: a misconfigured deployment should never
// reach first use.
func Load() (*Config, error) {
	cfg := &Config{
		Host:          getEnv("HOST", "0.0.0.0"),
		Port:          getEnv("PORT", "8080"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUsername:    os.Getenv("DB_USERNAME"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBDatabase:    os.Getenv("DB_DATABASE"),
		DBParams:      getEnv("DB_PARAMS", ""),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		CookieSecure:  getEnvBool("COOKIE_SECURE", true),
	}

	required := map[string]string{
		"DB_HOST":        cfg.DBHost,
		"DB_PORT":        cfg.DBPort,
		"DB_USERNAME":    cfg.DBUsername,
		"DB_PASSWORD":    cfg.DBPassword,
		"DB_DATABASE":    cfg.DBDatabase,
		"REDIS_HOST":     cfg.RedisHost,
		"SESSION_SECRET": cfg.SessionSecret,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%s environment variable is required", name)
		}
	}

	return cfg, nil
}

// DatabaseURL assembles the Postgres connection string.
func (c *Config) DatabaseURL() string {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(c.DBUsername),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBPort,
		c.DBDatabase,
	)
	if c.DBParams != "" {
		dsn += "?" + c.DBParams
	}
	return dsn
}

// RedisAddr returns the host:port of the session store.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// ListenAddr returns the host:port the HTTP server binds.
func (c *Config) ListenAddr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
