package models

// AccountGroup groups accounts into a tree. The store does not enforce
// acyclicity; services reject parents that would create a cycle. The parent
// reference has no ON DELETE action, so SQLite checks it at the end of the
// statement and a whole subtree can be deleted in one batch.
type AccountGroup struct {
	Base
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Description string `gorm:"not null;default:''" json:"description"`
	ParentID    *uint  `json:"parent_id,omitempty"`

	// Relationships
	Parent   *AccountGroup  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children []AccountGroup `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Accounts []Account      `gorm:"foreignKey:AccountGroupID" json:"accounts,omitempty"`
}
