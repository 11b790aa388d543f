package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultTimeout = 30 * time.Second

// Config holds all configuration for the application.
type Config struct {
	// APIBaseURL is the root of the FinanAPP backend, e.g. "https://api.finanapp.example".
	APIBaseURL string
	// Timeout bounds every individual API round trip.
	Timeout time.Duration
	// SessionFile is where the CLI persists the session cookie between runs.
	SessionFile string
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		APIBaseURL:  os.Getenv("FINANAPP_API_URL"),
		Timeout:     defaultTimeout,
		SessionFile: os.Getenv("FINANAPP_SESSION_FILE"),
	}

	if raw := os.Getenv("FINANAPP_API_TIMEOUT"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.SessionFile = home + "/.finanapp/session.json"
		}
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("Required environment variable FINANAPP_API_URL is not set.")
	}

	return cfg
}
