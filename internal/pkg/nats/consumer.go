package nats

import (
	"fmt"

	"github.com/churchpool/churchpool/internal/pkg/logger"
	"github.com/nats-io/nats.go"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject
type Consumer struct {
	subscription *nats.Subscription
}

// NewConsumer subscribes to a subject, optionally within a queue group,
// and dispatches messages to the handler.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	wrapped := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var subscription *nats.Subscription
	var err error
	if queueGroup != "" {
		subscription, err = client.QueueSubscribe(subject, queueGroup, wrapped)
	} else {
		subscription, err = client.Subscribe(subject, wrapped)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return &Consumer{subscription: subscription}, nil
}

// Stop unsubscribes from the subject
func (c *Consumer) Stop() error {
	if c.subscription != nil {
		return c.subscription.Unsubscribe()
	}
	return nil
}
