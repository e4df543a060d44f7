package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTimeZone is used when LOCAL_TIME_ZONE is unset or unknown.
const DefaultTimeZone = "America/Argentina/Buenos_Aires"

// Config holds application configuration
type Config struct {
	// Logging
	Env     string
	Debug   bool
	LogFile string

	// Database
	DBPath  string
	SQLEcho bool

	// Presentation
	TimeZone string
	Location *time.Location
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:     getEnv("ENV", "development"),
		Debug:   getBool("DEBUG", false),
		LogFile: getEnv("VAULT_LOG_FILE", "vault.log"),

		DBPath:  getEnv("VAULT_DB_PATH", "the_vault.db"),
		SQLEcho: getBool("SQL_ECHO", false),
	}

	config.SetTimeZone(getEnv("LOCAL_TIME_ZONE", DefaultTimeZone))

	return config, nil
}

// SetTimeZone resolves name into a location, falling back to DefaultTimeZone.
func (c *Config) SetTimeZone(name string) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Warning: invalid LOCAL_TIME_ZONE value '%s', falling back to %s\n", name, DefaultTimeZone)
		name = DefaultTimeZone
		loc, err = time.LoadLocation(name)
		if err != nil {
			loc = time.UTC
			name = "UTC"
		}
	}
	c.TimeZone = name
	c.Location = loc
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBool accepts the usual strconv spellings ("True", "1", "false").
func getBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Warning: invalid value for %s ('%s'). Defaulting to %t.\n", key, raw, defaultValue)
		return defaultValue
	}
	return v
}
