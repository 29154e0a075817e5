package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user entity
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Name         string    `json:"name"`
	ZipCode      *string   `json:"zip_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserPreferences represents user preferences
type UserPreferences struct {
	UserID              uuid.UUID    `json:"user_id"`
	DefaultReadingLevel ReadingLevel `json:"default_reading_level"`
	EmailNotifications  bool         `json:"email_notifications"`
	UpdatedAt           time.Time    `json:"updated_at"`
}
