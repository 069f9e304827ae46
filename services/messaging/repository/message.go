package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// MessageRepo implements messaging.MessageRepo against PostgreSQL
type MessageRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(cfg *models.Config, db *sqlx.DB) *MessageRepo {
	return &MessageRepo{
		cfg: cfg,
		db:  db,
	}
}

// AppendMessage writes the message, the sender's self-read and the
// conversation bookkeeping in one transaction. The CASE expressions
// bump whichever unread column belongs to the recipient.
func (r *MessageRepo) AppendMessage(ctx context.Context, message *models.Message, recipientID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO messages (id, conversation_id, sender_id, sender_name, content, type, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		message.ID, message.ConversationID, message.SenderID, message.SenderName,
		message.Content, message.Type, message.SentAt)
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO message_reads (message_id, user_id) VALUES ($1, $2)`,
		message.ID, message.SenderID)
	if err != nil {
		return fmt.Errorf("failed to record sender self-read: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE conversations
		SET last_message = $1,
		    last_message_time = $2,
		    unread_a = unread_a + CASE WHEN participant_a = $3 THEN 1 ELSE 0 END,
		    unread_b = unread_b + CASE WHEN participant_b = $3 THEN 1 ELSE 0 END
		WHERE id = $4`,
		message.Content, message.SentAt, recipientID, message.ConversationID)
	if err != nil {
		return fmt.Errorf("failed to update conversation: %w", err)
	}

	message.ReadBy = []string{message.SenderID}

	return tx.Commit()
}

// ListMessages returns the newest page of messages at or before the
// cursor, delivered in ascending sent order along with their reader
// sets. Paging backwards through history passes the oldest sent_at of
// the previous page as the cursor.
func (r *MessageRepo) ListMessages(ctx context.Context, conversationID string, before *time.Time, limit int) ([]*models.Message, error) {
	query := `SELECT id, conversation_id, sender_id, sender_name, content, type, sent_at
		FROM messages WHERE conversation_id = ?`
	args := []interface{}{conversationID}

	if before != nil {
		query += ` AND sent_at < ?`
		args = append(args, *before)
	}
	query += ` ORDER BY sent_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	query = r.db.Rebind(query)

	var result []*models.Message
	if err := r.db.SelectContext(ctx, &result, query, args...); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	// The window selects newest-first; flip it back to delivery order.
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	ids := make([]uuid.UUID, 0, len(result))
	byID := make(map[uuid.UUID]*models.Message, len(result))
	for _, message := range result {
		ids = append(ids, message.ID)
		byID[message.ID] = message
	}

	readQuery, readArgs, err := sqlx.In(`SELECT message_id, user_id FROM message_reads WHERE message_id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build read query: %w", err)
	}
	readQuery = r.db.Rebind(readQuery)

	var reads []struct {
		MessageID uuid.UUID `db:"message_id"`
		UserID    string    `db:"user_id"`
	}
	if err := r.db.SelectContext(ctx, &reads, readQuery, readArgs...); err != nil {
		return nil, err
	}

	for _, read := range reads {
		if message, ok := byID[read.MessageID]; ok {
			message.ReadBy = append(message.ReadBy, read.UserID)
		}
	}

	return result, nil
}

// MarkMessagesAsRead records the user as reader of every message in the
// conversation with one set-based insert, then zeroes their unread
// counter. Re-running it is a no-op.
func (r *MessageRepo) MarkMessagesAsRead(ctx context.Context, conversationID string, userID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO message_reads (message_id, user_id)
		SELECT id, $1 FROM messages WHERE conversation_id = $2
		ON CONFLICT (message_id, user_id) DO NOTHING`,
		userID.String(), conversationID)
	if err != nil {
		return fmt.Errorf("failed to mark messages as read: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE conversations
		SET unread_a = CASE WHEN participant_a = $1 THEN 0 ELSE unread_a END,
		    unread_b = CASE WHEN participant_b = $1 THEN 0 ELSE unread_b END
		WHERE id = $2`,
		userID, conversationID)
	if err != nil {
		return fmt.Errorf("failed to reset unread counter: %w", err)
	}

	return tx.Commit()
}
