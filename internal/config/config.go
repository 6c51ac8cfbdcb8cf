package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	RootURL         string        // Public root URL used to build short links
	Port            int           // Listening port
	DatabasePath    string        // Path to the SQLite database file
	RedisAddr       string        // Optional Redis address for the rate limiter store
	RateLimitWindow time.Duration // Fixed rate-limit window
	RateLimitMax    int           // Maximum requests per client per window
}

// Load parses configuration from command-line arguments. Flag defaults come
// from the environment, with an optional .env file loaded first, so the
// service can be configured either way.
func Load(args []string) (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	fs := flag.NewFlagSet("shortr", flag.ContinueOnError)
	root := fs.String("root", getEnv("ROOT_URL", ""), "public root URL used to build short links (required)")
	port := fs.Int("port", getEnvInt("PORT", 0), "listening port (required)")
	dbPath := fs.String("db", getEnv("DATABASE_PATH", "urls.db"), "path to the SQLite database file")
	redisAddr := fs.String("redis", getEnv("REDIS_ADDR", ""), "Redis address for the rate limiter store (optional)")
	window := fs.Int("rate-window", getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60), "rate limit window in seconds")
	maxReqs := fs.Int("rate-max", getEnvInt("RATE_LIMIT_MAX", 100), "maximum requests per client per window")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *root == "" {
		return nil, fmt.Errorf("root URL is required (-root flag or ROOT_URL)")
	}
	if *port <= 0 {
		return nil, fmt.Errorf("port is required (-port flag or PORT)")
	}

	return &Config{
		RootURL:         *root,
		Port:            *port,
		DatabasePath:    *dbPath,
		RedisAddr:       *redisAddr,
		RateLimitWindow: time.Duration(*window) * time.Second,
		RateLimitMax:    *maxReqs,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
