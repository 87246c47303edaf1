package domain

import "time"

// User represents a member of the application in the domain.
// For ledger purposes a user is immutable: debts and shares reference it
// by ID only and never observe profile edits.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
