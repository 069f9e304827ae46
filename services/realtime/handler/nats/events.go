package nats

import (
	"encoding/json"
	"fmt"

	"github.com/churchpool/churchpool/internal/pkg/constants"
	"github.com/churchpool/churchpool/internal/pkg/logger"
	"github.com/churchpool/churchpool/internal/pkg/models"
	natspkg "github.com/churchpool/churchpool/internal/pkg/nats"
	wspkg "github.com/churchpool/churchpool/internal/pkg/websocket"
)

// NatsHandler fans domain events out to connected websocket clients
type NatsHandler struct {
	manager   *wspkg.Manager
	consumers []*natspkg.Consumer
}

// NewNatsHandler creates a new realtime NATS handler
func NewNatsHandler(manager *wspkg.Manager) *NatsHandler {
	return &NatsHandler{
		manager: manager,
	}
}

// InitConsumers subscribes the realtime push consumers
func (h *NatsHandler) InitConsumers(client *natspkg.Client) error {
	subjects := []struct {
		subject string
		handler natspkg.MessageHandler
	}{
		{constants.SubjectChatMessage, h.handleChatMessage},
		{constants.SubjectLocationUpdate, h.handleLocationUpdate},
		{constants.SubjectBookingAccepted, h.bookingPushHandler(constants.EventBookingAccepted)},
		{constants.SubjectBookingRejected, h.bookingPushHandler(constants.EventBookingRejected)},
		{constants.SubjectBookingCancelled, h.bookingPushHandler(constants.EventBookingCancelled)},
	}

	for _, s := range subjects {
		consumer, err := natspkg.NewConsumer(client, s.subject, constants.QueueRealtime, s.handler)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", s.subject, err)
		}
		h.consumers = append(h.consumers, consumer)
	}

	return nil
}

// Stop shuts down all consumers
func (h *NatsHandler) Stop() {
	for _, consumer := range h.consumers {
		if err := consumer.Stop(); err != nil {
			logger.Warn("Failed to stop realtime consumer",
				logger.Err(err))
		}
	}
}

func (h *NatsHandler) handleChatMessage(data []byte) error {
	var event models.ChatMessageEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal chat message event: %w", err)
	}

	for _, recipient := range event.Recipients {
		h.manager.NotifyClient(recipient, constants.EventChatMessage, event)
	}

	return nil
}

func (h *NatsHandler) handleLocationUpdate(data []byte) error {
	var event models.LocationUpdateEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal location update event: %w", err)
	}

	for _, recipient := range event.Recipients {
		h.manager.NotifyClient(recipient, constants.EventLocationUpdate, event)
	}

	return nil
}

// bookingPushHandler notifies the booking party that did not perform
// the transition.
func (h *NatsHandler) bookingPushHandler(wsEvent string) natspkg.MessageHandler {
	return func(data []byte) error {
		var event models.BookingEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("failed to unmarshal booking event: %w", err)
		}

		for _, party := range []string{event.PassengerID, event.DriverID} {
			if party != "" && party != event.ActorID {
				h.manager.NotifyClient(party, wsEvent, event)
			}
		}

		return nil
	}
}
