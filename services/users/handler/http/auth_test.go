package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/services/users/mocks"
)

func setupAuthHandlerTest(t *testing.T) (*AuthHandler, *mocks.MockUserUC, *echo.Echo, func()) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewAuthHandler(mockUC)
	e := echo.New()

	return handler, mockUC, e, ctrl.Finish
}

func TestRegisterHandler_Success(t *testing.T) {
	handler, mockUC, e, finish := setupAuthHandlerTest(t)
	defer finish()

	userID := uuid.New()
	mockUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{
			Token:     "signed.jwt.token",
			ExpiresAt: 1700000000,
			User:      &models.User{ID: userID, Email: "anna@example.org"},
		}, nil)

	body := `{"email":"anna@example.org","full_name":"Anna Passenger","password":"hunter2hunter2","role":"passenger","church_id":"` + uuid.New().String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "signed.jwt.token", data["token"])
}

func TestRegisterHandler_EmailTaken(t *testing.T) {
	handler, mockUC, e, finish := setupAuthHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrEmailTaken)

	body := `{"email":"taken@example.org","full_name":"Anna","password":"hunter2hunter2","role":"passenger","church_id":"` + uuid.New().String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	handler, mockUC, e, finish := setupAuthHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "anna@example.org", Password: "wrong"}).
		Return(nil, models.ErrInvalidCredentials)

	body := `{"email":"anna@example.org","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
