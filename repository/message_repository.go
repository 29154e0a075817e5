package repository

import (
	"context"

	"clearpolicy-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageRepository handles database operations for conversation turns
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create creates a new message
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (conversation_id, role, content, policy_name, source_ratio, sources)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		message.ConversationID,
		message.Role,
		message.Content,
		message.PolicyName,
		message.SourceRatio,
		message.Sources,
	).Scan(&message.ID, &message.CreatedAt)

	return err
}

// ListByConversationID retrieves all messages in a conversation, oldest first
func (r *MessageRepository) ListByConversationID(ctx context.Context, conversationID uuid.UUID) ([]*models.Message, error) {
	query := `
		SELECT id, conversation_id, role, content, policy_name, source_ratio, sources, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

// ListRecent retrieves the last n messages in a conversation, oldest first,
// for use as follow-up context
func (r *MessageRepository) ListRecent(ctx context.Context, conversationID uuid.UUID, n int) ([]*models.Message, error) {
	if n <= 0 {
		n = 6
	}
	query := `
		SELECT id, conversation_id, role, content, policy_name, source_ratio, sources, created_at
		FROM (
			SELECT id, conversation_id, role, content, policy_name, source_ratio, sources, created_at
			FROM messages
			WHERE conversation_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, conversationID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

func scanMessages(rows pgx.Rows) ([]*models.Message, error) {
	var messages []*models.Message
	for rows.Next() {
		message := &models.Message{}
		err := rows.Scan(
			&message.ID,
			&message.ConversationID,
			&message.Role,
			&message.Content,
			&message.PolicyName,
			&message.SourceRatio,
			&message.Sources,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}
