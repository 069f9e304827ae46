package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/churchpool/churchpool/internal/pkg/logger"
	"github.com/churchpool/churchpool/internal/pkg/metrics"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/services/messaging"
	"github.com/google/uuid"
)

// messagePageLimit bounds a single message fetch
const messagePageLimit = 100

// MessagingUC implements the conversation business logic
type MessagingUC struct {
	cfg              *models.Config
	conversationRepo messaging.ConversationRepo
	messageRepo      messaging.MessageRepo
	userReader       messaging.UserReader
	messagingGW      messaging.MessagingGW
}

// NewMessagingUC creates a new messaging usecase
func NewMessagingUC(
	cfg *models.Config,
	conversationRepo messaging.ConversationRepo,
	messageRepo messaging.MessageRepo,
	userReader messaging.UserReader,
	messagingGW messaging.MessagingGW,
) *MessagingUC {
	return &MessagingUC{
		cfg:              cfg,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		userReader:       userReader,
		messagingGW:      messagingGW,
	}
}

// OpenConversation returns the single conversation between the user and
// a peer about a ride, creating it on first open.
func (uc *MessagingUC) OpenConversation(ctx context.Context, userID uuid.UUID, req models.OpenConversationRequest) (*models.Conversation, error) {
	peerID, err := uuid.Parse(req.PeerID)
	if err != nil {
		return nil, fmt.Errorf("invalid peer ID: %w", err)
	}
	rideID, err := uuid.Parse(req.RideID)
	if err != nil {
		return nil, fmt.Errorf("invalid ride ID: %w", err)
	}
	if peerID == userID {
		return nil, fmt.Errorf("cannot open a conversation with yourself")
	}

	return uc.conversationRepo.GetOrCreateConversation(ctx, userID, peerID, rideID)
}

// ListConversations retrieves all conversations the user takes part in
func (uc *MessagingUC) ListConversations(ctx context.Context, userID uuid.UUID) ([]*models.Conversation, error) {
	return uc.conversationRepo.ListConversationsByUser(ctx, userID.String())
}

// ListMessages retrieves the newest page of messages in ascending sent
// order; the before cursor pages back through older history
func (uc *MessagingUC) ListMessages(ctx context.Context, userID uuid.UUID, conversationID string, before *time.Time) ([]*models.Message, error) {
	conversation, err := uc.conversationRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, models.ErrNotParticipant
	}

	return uc.messageRepo.ListMessages(ctx, conversationID, before, messagePageLimit)
}

// SendMessage appends a text message and pushes it to the recipient
func (uc *MessagingUC) SendMessage(ctx context.Context, userID uuid.UUID, conversationID string, req models.SendMessageRequest) (*models.Message, error) {
	if req.Content == "" {
		return nil, fmt.Errorf("message content is required")
	}

	conversation, err := uc.conversationRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, models.ErrNotParticipant
	}

	senderName := ""
	if sender, err := uc.userReader.GetUserByID(ctx, userID.String()); err == nil {
		senderName = sender.FullName
	}

	message := &models.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		SenderID:       userID.String(),
		SenderName:     senderName,
		Content:        req.Content,
		Type:           models.MessageTypeText,
		SentAt:         models.Now(),
	}

	recipient := conversation.OtherParticipant(userID)
	if err := uc.messageRepo.AppendMessage(ctx, message, recipient); err != nil {
		return nil, err
	}

	metrics.MessagesSent.WithLabelValues(string(models.MessageTypeText)).Inc()

	uc.publishChatMessage(ctx, message, []string{recipient.String()})

	return message, nil
}

// MarkMessagesAsRead records the user as reader of the conversation's
// history and zeroes their unread counter.
func (uc *MessagingUC) MarkMessagesAsRead(ctx context.Context, userID uuid.UUID, conversationID string) error {
	conversation, err := uc.conversationRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conversation.HasParticipant(userID) {
		return models.ErrNotParticipant
	}

	return uc.messageRepo.MarkMessagesAsRead(ctx, conversationID, userID)
}

// PostBookingAcceptedMessage appends a system message to the
// driver/passenger conversation for the booking's ride, creating the
// conversation if the pair never chatted.
func (uc *MessagingUC) PostBookingAcceptedMessage(ctx context.Context, event models.BookingEvent) error {
	driverID, err := uuid.Parse(event.DriverID)
	if err != nil {
		return fmt.Errorf("invalid driver ID in event: %w", err)
	}
	passengerID, err := uuid.Parse(event.PassengerID)
	if err != nil {
		return fmt.Errorf("invalid passenger ID in event: %w", err)
	}
	rideID, err := uuid.Parse(event.RideID)
	if err != nil {
		return fmt.Errorf("invalid ride ID in event: %w", err)
	}

	conversation, err := uc.conversationRepo.GetOrCreateConversation(ctx, driverID, passengerID, rideID)
	if err != nil {
		return err
	}

	actorName := event.ActorName
	if actorName == "" {
		actorName = "The driver"
	}

	message := &models.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		SenderID:       models.SystemSenderID,
		SenderName:     actorName,
		Content:        fmt.Sprintf("%s accepted the booking request.", actorName),
		Type:           models.MessageTypeSystem,
		SentAt:         models.Now(),
	}

	if err := uc.messageRepo.AppendMessage(ctx, message, passengerID); err != nil {
		return err
	}

	metrics.MessagesSent.WithLabelValues(string(models.MessageTypeSystem)).Inc()
	logger.InfoCtx(ctx, "System message posted for accepted booking",
		logger.String("booking_id", event.BookingID),
		logger.String("conversation_id", conversation.ID.String()))

	uc.publishChatMessage(ctx, message, []string{passengerID.String(), driverID.String()})

	return nil
}

func (uc *MessagingUC) publishChatMessage(ctx context.Context, message *models.Message, recipients []string) {
	event := models.ChatMessageEvent{
		ConversationID: message.ConversationID.String(),
		MessageID:      message.ID.String(),
		SenderID:       message.SenderID,
		SenderName:     message.SenderName,
		Content:        message.Content,
		Type:           message.Type,
		Recipients:     recipients,
		SentAt:         message.SentAt,
	}

	if err := uc.messagingGW.PublishChatMessage(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish chat message event",
			logger.String("message_id", event.MessageID),
			logger.Err(err))
	}
}
