package messaging

import (
	"context"

	"github.com/churchpool/churchpool/internal/pkg/models"
)

// MessagingGW defines the interface for chat event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/churchpool/churchpool/services/messaging MessagingGW
type MessagingGW interface {
	PublishChatMessage(ctx context.Context, event models.ChatMessageEvent) error
}
