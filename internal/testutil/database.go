// Package testutil provides test helpers for setting up in-memory databases,
// creating fixtures, and making assertions.
package testutil

import (
	"testing"

	"gorm.io/gorm"

	"vault/internal/database"
)

// SetupTestDB opens a private in-memory SQLite database with the full schema
// applied and foreign keys enforced. The manager holds a single connection,
// so every test gets its own database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	manager, err := database.NewManager(&database.Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := manager.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return manager.DB()
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}
