package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/services/messaging/mocks"
)

func setupMessagingHandlerTest(t *testing.T) (*MessagingHandler, *mocks.MockMessagingUC, *echo.Echo, func()) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMessagingUC(ctrl)
	handler := NewMessagingHandler(mockUC)
	e := echo.New()

	return handler, mockUC, e, ctrl.Finish
}

func TestSendMessageHandler_Success(t *testing.T) {
	handler, mockUC, e, finish := setupMessagingHandlerTest(t)
	defer finish()

	userID := uuid.New()
	conversationID := uuid.New()
	message := &models.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       userID.String(),
		Content:        "See you Sunday",
		Type:           models.MessageTypeText,
		SentAt:         time.Now(),
		ReadBy:         []string{userID.String()},
	}

	mockUC.EXPECT().
		SendMessage(gomock.Any(), userID, conversationID.String(), models.SendMessageRequest{Content: "See you Sunday"}).
		Return(message, nil)

	body := `{"content":"See you Sunday"}`
	req := httptest.NewRequest(http.MethodPost, "/conversations/"+conversationID.String()+"/messages", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/conversations/:id/messages")
	c.SetParamNames("id")
	c.SetParamValues(conversationID.String())
	c.Set("user_id", userID)

	err := handler.SendMessage(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "See you Sunday", data["content"])
}

func TestSendMessageHandler_NotParticipant(t *testing.T) {
	handler, mockUC, e, finish := setupMessagingHandlerTest(t)
	defer finish()

	userID := uuid.New()
	conversationID := uuid.New().String()

	mockUC.EXPECT().
		SendMessage(gomock.Any(), userID, conversationID, gomock.Any()).
		Return(nil, models.ErrNotParticipant)

	req := httptest.NewRequest(http.MethodPost, "/conversations/"+conversationID+"/messages", strings.NewReader(`{"content":"hi"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/conversations/:id/messages")
	c.SetParamNames("id")
	c.SetParamValues(conversationID)
	c.Set("user_id", userID)

	err := handler.SendMessage(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListMessagesHandler_InvalidCursor(t *testing.T) {
	handler, _, e, finish := setupMessagingHandlerTest(t)
	defer finish()

	conversationID := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/conversations/"+conversationID+"/messages?before=yesterday", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/conversations/:id/messages")
	c.SetParamNames("id")
	c.SetParamValues(conversationID)
	c.Set("user_id", uuid.New())

	err := handler.ListMessages(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkMessagesAsReadHandler_NotFound(t *testing.T) {
	handler, mockUC, e, finish := setupMessagingHandlerTest(t)
	defer finish()

	userID := uuid.New()
	conversationID := uuid.New().String()

	mockUC.EXPECT().
		MarkMessagesAsRead(gomock.Any(), userID, conversationID).
		Return(models.ErrConversationNotFound)

	req := httptest.NewRequest(http.MethodPost, "/conversations/"+conversationID+"/read", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/conversations/:id/read")
	c.SetParamNames("id")
	c.SetParamValues(conversationID)
	c.Set("user_id", userID)

	err := handler.MarkMessagesAsRead(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOpenConversationHandler_Unauthorized(t *testing.T) {
	handler, _, e, finish := setupMessagingHandlerTest(t)
	defer finish()

	req := httptest.NewRequest(http.MethodPost, "/conversations", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.OpenConversation(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
