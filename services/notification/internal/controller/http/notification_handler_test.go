package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"unvaultd/pkg/logger"
	"unvaultd/services/notification/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func withUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

func newNotificationRouter(uc *MockNotificationUseCase, userID string) *gin.Engine {
	h := NewNotificationHandler(uc, logger.NewNop())

	r := gin.New()
	r.Use(withUser(userID))
	r.GET("/notifications", h.GetNotifications)
	r.DELETE("/notifications", h.ClearNotifications)
	r.GET("/messages", h.Messages)
	return r
}

func TestGetNotifications_Unauthorized(t *testing.T) {
	uc := new(MockNotificationUseCase)
	r := newNotificationRouter(uc, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response["error"], "Unauthorized")
}

func TestGetNotifications_Paged(t *testing.T) {
	uc := new(MockNotificationUseCase)
	r := newNotificationRouter(uc, "u1")

	uc.On("List", mock.Anything, "u1", entity.Page{Limit: 10, Offset: 5}).Return(&entity.NotificationPage{
		Notifications: []entity.Notification{{ID: "n1", Type: "like", Message: "Mika liked your listing"}},
		Count:         1,
		Total:         6,
		Limit:         10,
		Offset:        5,
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications?limit=10&offset=5", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mika liked your listing")
	assert.Contains(t, w.Body.String(), `"total":6`)
}

func TestGetNotifications_Failure(t *testing.T) {
	uc := new(MockNotificationUseCase)
	r := newNotificationRouter(uc, "u1")
	uc.On("List", mock.Anything, "u1", mock.Anything).Return(nil, errors.New("failed to load notifications"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestClearNotifications(t *testing.T) {
	uc := new(MockNotificationUseCase)
	r := newNotificationRouter(uc, "u1")
	uc.On("Clear", mock.Anything, "u1").Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/notifications", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestMessages_Placeholder(t *testing.T) {
	uc := new(MockNotificationUseCase)
	r := newNotificationRouter(uc, "u1")
	uc.On("Messages", mock.Anything, "u1").Return(&entity.Inbox{
		Conversations: []entity.Conversation{},
		Message:       "Direct messaging functionality is currently in development.",
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/messages", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"conversations":[]`)
	assert.Contains(t, w.Body.String(), "currently in development")
}
