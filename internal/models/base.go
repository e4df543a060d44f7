package models

import "time"

// Base contains common columns for all tables
type Base struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All lists every model of the schema, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Currency{},
		&Provider{},
		&AccountType{},
		&AccountGroup{},
		&Account{},
		&AccountOverdraft{},
		&Transaction{},
	}
}
