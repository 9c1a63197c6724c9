package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the service settings, loaded from environment variables
type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	DatabaseURL  string        `env:"DATABASE_URL" envDefault:"host=localhost user=shelfelf password=shelfelf dbname=shelfelf port=5432 sslmode=disable"`
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"change_this_secret"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:3000"`
}

// App is the active configuration
var App Config

// Load parses the environment into App
func Load() {
	if err := env.Parse(&App); err != nil {
		log.Fatalf("failed to parse environment: %v", err)
	}
}
