package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds process configuration read once at startup. Business
// settings such as the kg-per-quintal ratio live in the database, not
// here.
type Config struct {
	Port   string
	DBPath string
}

// Load reads environment variables, optionally from a .env file.
// Missing .env files are acceptable; configuration can come from the
// environment directly.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:   getenvWithDefault("PORT", "8080"),
		DBPath: getenvWithDefault("DB_PATH", "./ricemill.db"),
	}
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
