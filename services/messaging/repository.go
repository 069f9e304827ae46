package messaging

import (
	"context"
	"time"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/google/uuid"
)

// ConversationRepo defines the interface for conversation data access.
// The participant pair is normalized before storage so the unique
// constraint guarantees one conversation per (pair, ride) triple.
type ConversationRepo interface {
	GetOrCreateConversation(ctx context.Context, userA, userB, rideID uuid.UUID) (*models.Conversation, error)
	GetConversationByID(ctx context.Context, conversationID string) (*models.Conversation, error)
	ListConversationsByUser(ctx context.Context, userID string) ([]*models.Conversation, error)
}

// MessageRepo defines the interface for message data access
type MessageRepo interface {
	// AppendMessage inserts the message, records the sender's self-read
	// and bumps the conversation's last-message fields plus the
	// recipient's unread counter in one transaction.
	AppendMessage(ctx context.Context, message *models.Message, recipientID uuid.UUID) error

	// ListMessages returns the newest page of messages, delivered in
	// ascending sent order. A non-nil before cursor bounds the page to
	// messages sent strictly earlier, paging back through history.
	ListMessages(ctx context.Context, conversationID string, before *time.Time, limit int) ([]*models.Message, error)

	// MarkMessagesAsRead records the user as reader of every message in
	// the conversation and zeroes their unread counter.
	MarkMessagesAsRead(ctx context.Context, conversationID string, userID uuid.UUID) error
}

// UserReader resolves sender display names
type UserReader interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}
