package database

import (
	"fmt"
	"time"

	"vault/internal/logger"
	"vault/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Manager handles database operations
type Manager struct {
	db *gorm.DB
}

// NewManager opens the SQLite database described by config.
func NewManager(config *Config) (*Manager, error) {
	db, err := gorm.Open(sqlite.Open(config.DSN()), &gorm.Config{
		Logger:         newLogger(config.Echo),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	// One writer at a time is all SQLite offers; the UI is single-threaded anyway.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db}, nil
}

// Migrate declares the full schema and creates whatever is missing. There is
// no incremental migration history.
func (m *Manager) Migrate() error {
	logger.Get().Debug("Applying database schema...")

	if err := m.db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Debug("Database schema is up to date")
	return nil
}

// SQLiteVersion returns the version string reported by the engine.
func (m *Manager) SQLiteVersion() (string, error) {
	var version string
	if err := m.db.Raw("SELECT sqlite_version()").Scan(&version).Error; err != nil {
		return "", fmt.Errorf("failed to query sqlite version: %w", err)
	}
	return version, nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newLogger(echo bool) gormlogger.Interface {
	level := gormlogger.Warn
	if echo {
		level = gormlogger.Info
	}
	return gormlogger.New(logger.StdLog(), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
