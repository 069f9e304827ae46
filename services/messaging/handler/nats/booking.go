package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/churchpool/churchpool/internal/pkg/constants"
	"github.com/churchpool/churchpool/internal/pkg/logger"
	"github.com/churchpool/churchpool/internal/pkg/models"
	natspkg "github.com/churchpool/churchpool/internal/pkg/nats"
	"github.com/churchpool/churchpool/services/messaging"
)

// NatsHandler consumes booking events for the messaging service
type NatsHandler struct {
	messagingUC messaging.MessagingUC
	consumers   []*natspkg.Consumer
}

// NewNatsHandler creates a new NATS handler for messaging
func NewNatsHandler(messagingUC messaging.MessagingUC) *NatsHandler {
	return &NatsHandler{
		messagingUC: messagingUC,
	}
}

// InitConsumers subscribes to the booking events the messaging service
// reacts to.
func (h *NatsHandler) InitConsumers(client *natspkg.Client) error {
	consumer, err := natspkg.NewConsumer(client, constants.SubjectBookingAccepted, constants.QueueMessaging, h.handleBookingAccepted)
	if err != nil {
		return fmt.Errorf("failed to subscribe to booking accepted events: %w", err)
	}
	h.consumers = append(h.consumers, consumer)

	return nil
}

// Stop unsubscribes all consumers
func (h *NatsHandler) Stop() {
	for _, consumer := range h.consumers {
		if err := consumer.Stop(); err != nil {
			logger.Warn("Failed to stop messaging consumer", logger.Err(err))
		}
	}
}

// handleBookingAccepted posts the system message announcing an
// acceptance in the driver/passenger conversation.
func (h *NatsHandler) handleBookingAccepted(data []byte) error {
	var event models.BookingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal booking event: %w", err)
	}

	ctx := context.Background()
	if err := h.messagingUC.PostBookingAcceptedMessage(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to post booking accepted message",
			logger.String("booking_id", event.BookingID),
			logger.Err(err))
		return err
	}

	return nil
}
