package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort  int
	DBUser      string
	DBPass      string
	DBHost      string
	TokenSecret string
}

// Load loads configuration from a .env file (when present) and the environment.
// A missing token secret is fatal: the server cannot sign or verify anything
// without it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnv("PORT", "5589")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:  port,
		DBUser:      os.Getenv("DB_USER"),
		DBPass:      os.Getenv("DB_PASS"),
		DBHost:      getEnv("DB_HOST", "cluster0.bix9lir.mongodb.net"),
		TokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
	}
	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is not set")
	}
	return cfg, nil
}

// MongoURI assembles the connection string from the credential parts.
func (c *Config) MongoURI() string {
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPass), c.DBHost)
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
