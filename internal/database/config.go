package database

import (
	"fmt"
	"net/url"

	"vault/internal/config"
)

// Config holds database configuration
type Config struct {
	// Path is the SQLite database file. ":memory:" opens a private in-memory database.
	Path string
	// Echo logs every SQL statement through the application logger.
	Echo bool
}

// NewConfig creates a new database configuration from the application configuration
func NewConfig(appConfig *config.Config) *Config {
	return &Config{
		Path: appConfig.DBPath,
		Echo: appConfig.SQLEcho,
	}
}

// DSN returns the SQLite connection string. Foreign keys are off by default in
// SQLite; the _foreign_keys parameter makes the driver enable them on every
// new connection.
func (c *Config) DSN() string {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	if c.Path == ":memory:" {
		return fmt.Sprintf("file::memory:?%s", params.Encode())
	}
	return fmt.Sprintf("file:%s?%s", c.Path, params.Encode())
}
