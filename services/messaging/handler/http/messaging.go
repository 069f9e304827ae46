package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/churchpool/churchpool/internal/pkg/middleware"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/internal/utils"
	"github.com/churchpool/churchpool/services/messaging"
	"github.com/labstack/echo/v4"
)

// MessagingHandler handles HTTP requests for conversations and messages
type MessagingHandler struct {
	messagingUC messaging.MessagingUC
}

// NewMessagingHandler creates a new messaging HTTP handler
func NewMessagingHandler(messagingUC messaging.MessagingUC) *MessagingHandler {
	return &MessagingHandler{
		messagingUC: messagingUC,
	}
}

// OpenConversation handles POST /conversations
func (h *MessagingHandler) OpenConversation(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.OpenConversationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	conversation, err := h.messagingUC.OpenConversation(c.Request().Context(), userID, req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Conversation ready", conversation)
}

// ListConversations handles GET /conversations
func (h *MessagingHandler) ListConversations(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.messagingUC.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Conversations retrieved successfully", result)
}

// ListMessages handles GET /conversations/:id/messages
func (h *MessagingHandler) ListMessages(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var before *time.Time
	if raw := c.QueryParam("before"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid before cursor, expected RFC3339")
		}
		before = &parsed
	}

	result, err := h.messagingUC.ListMessages(c.Request().Context(), userID, c.Param("id"), before)
	if err != nil {
		return h.conversationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Messages retrieved successfully", result)
}

// SendMessage handles POST /conversations/:id/messages
func (h *MessagingHandler) SendMessage(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	message, err := h.messagingUC.SendMessage(c.Request().Context(), userID, c.Param("id"), req)
	if err != nil {
		return h.conversationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Message sent successfully", message)
}

// MarkMessagesAsRead handles POST /conversations/:id/read
func (h *MessagingHandler) MarkMessagesAsRead(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.messagingUC.MarkMessagesAsRead(c.Request().Context(), userID, c.Param("id")); err != nil {
		return h.conversationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Messages marked as read", nil)
}

func (h *MessagingHandler) conversationErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrConversationNotFound):
		return utils.NotFoundResponse(c, "Conversation not found")
	case errors.Is(err, models.ErrNotParticipant):
		return utils.ForbiddenResponse(c, "You are not part of this conversation")
	default:
		return utils.BadRequestResponse(c, err.Error())
	}
}
