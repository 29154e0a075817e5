package models

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded bill or measure text
type Document struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
	Filename       string     `json:"filename"`
	MimeType       string     `json:"mime_type"`
	Size           int64      `json:"size"`
	StoragePath    string     `json:"storage_path"`
	CreatedAt      time.Time  `json:"created_at"`
}
