package gateway

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/constants"
	"github.com/churchpool/churchpool/internal/pkg/models"
	natspkg "github.com/churchpool/churchpool/internal/pkg/nats"
)

// MessagingGW implements the chat event gateway
type MessagingGW struct {
	producer *natspkg.Producer
}

// NewMessagingGW creates a new messaging gateway
func NewMessagingGW(client *natspkg.Client) *MessagingGW {
	return &MessagingGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishChatMessage publishes a chat.message event
func (g *MessagingGW) PublishChatMessage(ctx context.Context, event models.ChatMessageEvent) error {
	return g.producer.Publish(constants.SubjectChatMessage, event)
}
