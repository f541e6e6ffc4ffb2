package http

import (
	"context"
	"net/http"
	"time"

	"unvaultd/pkg/logger"
	"unvaultd/pkg/middleware"
	"unvaultd/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

type StreamHandler struct {
	notificationUseCase usecase.NotificationUseCase
	upgrader            websocket.Upgrader
	logger              *logger.Logger
}

// NewStreamHandler accepts handshakes without an Origin header or from one of
// allowedOrigins.
func NewStreamHandler(notificationUseCase usecase.NotificationUseCase, allowedOrigins []string, logger *logger.Logger) *StreamHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin != "" {
			allowed[origin] = true
		}
	}

	return &StreamHandler{
		notificationUseCase: notificationUseCase,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
		},
		logger: logger,
	}
}

// Stream godoc
// @Summary      Live notifications
// @Description  WebSocket that pushes each new notification as JSON. Pass the token as a query parameter when no session cookie is available.
// @Tags         notifications
// @Security     BearerAuth
// @Param        token query string false "JWT"
// @Success      101
// @Failure      401  {object}  map[string]string
// @Router       /notifications/ws [get]
func (h *StreamHandler) Stream(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade connection to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, stop := h.notificationUseCase.Stream(ctx, userID)
	defer func() {
		if err := stop(); err != nil {
			h.logger.Warn("Failed to close notification stream for %s: %v", userID, err)
		}
	}()

	h.logger.Info("WebSocket connected for user %s", userID)

	// The client never sends data; reading only surfaces the close.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("WebSocket disconnected for user %s", userID)
			return
		case notification, ok := <-updates:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(notification); err != nil {
				h.logger.Warn("Failed to write WebSocket message: %v", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
