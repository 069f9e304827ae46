package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ConversationRepo implements messaging.ConversationRepo against PostgreSQL
type ConversationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(cfg *models.Config, db *sqlx.DB) *ConversationRepo {
	return &ConversationRepo{
		cfg: cfg,
		db:  db,
	}
}

const conversationColumns = `
	id, ride_id, participant_a, participant_b,
	last_message, last_message_time, unread_a, unread_b, created_at
`

// normalizePair orders the two participants so the smaller UUID string
// lands in participant_a, matching the table's CHECK constraint.
func normalizePair(userA, userB uuid.UUID) (uuid.UUID, uuid.UUID) {
	if userA.String() < userB.String() {
		return userA, userB
	}
	return userB, userA
}

// GetOrCreateConversation returns the single conversation for the
// unordered participant pair and ride, creating it on first use. The
// unique constraint makes concurrent first-opens converge on one row.
func (r *ConversationRepo) GetOrCreateConversation(ctx context.Context, userA, userB, rideID uuid.UUID) (*models.Conversation, error) {
	a, b := normalizePair(userA, userB)

	existing, err := r.lookup(ctx, a, b, rideID)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO conversations (id, ride_id, participant_a, participant_b, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (ride_id, participant_a, participant_b) DO NOTHING`,
		uuid.New(), rideID, a, b, models.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	conversation, err := r.lookup(ctx, a, b, rideID)
	if err != nil {
		return nil, fmt.Errorf("conversation vanished after creation: %w", err)
	}

	return conversation, nil
}

func (r *ConversationRepo) lookup(ctx context.Context, a, b, rideID uuid.UUID) (*models.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations
		WHERE ride_id = $1 AND participant_a = $2 AND participant_b = $3`

	var conversation models.Conversation
	if err := r.db.GetContext(ctx, &conversation, query, rideID, a, b); err != nil {
		return nil, err
	}

	conversation.Hydrate()
	return &conversation, nil
}

// GetConversationByID retrieves a conversation by ID
func (r *ConversationRepo) GetConversationByID(ctx context.Context, conversationID string) (*models.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE id = $1`

	var conversation models.Conversation
	if err := r.db.GetContext(ctx, &conversation, query, conversationID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("conversation %s: %w", conversationID, models.ErrConversationNotFound)
		}
		return nil, err
	}

	conversation.Hydrate()
	return &conversation, nil
}

// ListConversationsByUser retrieves all conversations the user takes
// part in, most recently active first.
func (r *ConversationRepo) ListConversationsByUser(ctx context.Context, userID string) ([]*models.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations
		WHERE participant_a = $1 OR participant_b = $1
		ORDER BY last_message_time DESC NULLS LAST, created_at DESC`

	var result []*models.Conversation
	if err := r.db.SelectContext(ctx, &result, query, userID); err != nil {
		return nil, err
	}

	for _, conversation := range result {
		conversation.Hydrate()
	}

	return result, nil
}
