package messaging

import (
	"context"
	"time"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/google/uuid"
)

// MessagingUC defines the interface for conversation business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/churchpool/churchpool/services/messaging MessagingUC
type MessagingUC interface {
	OpenConversation(ctx context.Context, userID uuid.UUID, req models.OpenConversationRequest) (*models.Conversation, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*models.Conversation, error)
	ListMessages(ctx context.Context, userID uuid.UUID, conversationID string, before *time.Time) ([]*models.Message, error)
	SendMessage(ctx context.Context, userID uuid.UUID, conversationID string, req models.SendMessageRequest) (*models.Message, error)
	MarkMessagesAsRead(ctx context.Context, userID uuid.UUID, conversationID string) error

	// PostBookingAcceptedMessage appends a system message to the
	// driver/passenger conversation announcing an acceptance. Invoked
	// from the booking.accepted event consumer.
	PostBookingAcceptedMessage(ctx context.Context, event models.BookingEvent) error
}
