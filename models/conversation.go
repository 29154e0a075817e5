package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageRole identifies who produced a conversation turn
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Conversation represents one user's thread of policy questions
type Conversation struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	ZipCode   *string    `json:"zip_code,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

// Message represents a single turn in a conversation
type Message struct {
	ID             uuid.UUID     `json:"id"`
	ConversationID uuid.UUID     `json:"conversation_id"`
	Role           MessageRole   `json:"role"`
	Content        string        `json:"content"`
	PolicyName     *string       `json:"policy_name,omitempty"`
	SourceRatio    *float64      `json:"source_ratio,omitempty"`
	Sources        AnswerSources `json:"sources"`
	CreatedAt      time.Time     `json:"created_at"`
}
