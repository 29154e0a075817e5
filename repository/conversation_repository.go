package repository

import (
	"context"

	"clearpolicy-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConversationRepository handles database operations for conversations
type ConversationRepository struct {
	db *pgxpool.Pool
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *pgxpool.Pool) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// Create creates a new conversation
func (r *ConversationRepository) Create(ctx context.Context, conversation *models.Conversation) error {
	query := `
		INSERT INTO conversations (user_id, title, zip_code)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		conversation.UserID,
		conversation.Title,
		conversation.ZipCode,
	).Scan(&conversation.ID, &conversation.CreatedAt, &conversation.UpdatedAt)

	return err
}

// GetByID retrieves a conversation by ID
func (r *ConversationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	conversation := &models.Conversation{}
	query := `
		SELECT id, user_id, title, zip_code, created_at, updated_at, archived_at
		FROM conversations
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&conversation.ID,
		&conversation.UserID,
		&conversation.Title,
		&conversation.ZipCode,
		&conversation.CreatedAt,
		&conversation.UpdatedAt,
		&conversation.ArchivedAt,
	)

	if err != nil {
		return nil, err
	}

	return conversation, nil
}

// ListByUserID retrieves conversations for a user, newest first
func (r *ConversationRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Conversation, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, user_id, title, zip_code, created_at, updated_at, archived_at
		FROM conversations
		WHERE user_id = $1 AND archived_at IS NULL
		ORDER BY updated_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversations []*models.Conversation
	for rows.Next() {
		conversation := &models.Conversation{}
		err := rows.Scan(
			&conversation.ID,
			&conversation.UserID,
			&conversation.Title,
			&conversation.ZipCode,
			&conversation.CreatedAt,
			&conversation.UpdatedAt,
			&conversation.ArchivedAt,
		)
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, conversation)
	}

	return conversations, rows.Err()
}

// Touch bumps a conversation's updated_at after a new turn
func (r *ConversationRepository) Touch(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE conversations SET updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

// Archive soft-deletes a conversation
func (r *ConversationRepository) Archive(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE conversations SET archived_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
