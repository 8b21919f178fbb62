package handler

import (
	"net/http"

	"anoa.com/spacemanagement/internal/modules/usernotification/dto"
	usernotification "anoa.com/spacemanagement/internal/modules/usernotification/service"
	commonDto "anoa.com/spacemanagement/pkg/dto"
	"anoa.com/spacemanagement/pkg/response"
	"anoa.com/spacemanagement/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type UserNotificationHandler struct {
	service     usernotification.UserNotificationService
	redisClient *redis.Client
	upgrader    websocket.Upgrader
}

func NewUserNotificationHandler(service usernotification.UserNotificationService, redisClient *redis.Client) *UserNotificationHandler {
	return &UserNotificationHandler{
		service:     service,
		redisClient: redisClient,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origins are enforced by CORS on the REST routes; the socket
			// itself is authenticated by token.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *UserNotificationHandler) AddNotification(c *gin.Context) {
	var req dto.AddNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, validator.FormatValidationError(err))
		return
	}

	n, err := h.service.Broadcast(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AddNotificationResponse{Recipients: n})
}

func (h *UserNotificationHandler) GetByUserID(c *gin.Context) {
	var uri dto.UserIDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, "invalid user id")
		return
	}

	notifications, err := h.service.GetByUserID(c.Request.Context(), uri.UserID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *UserNotificationHandler) Delete(c *gin.Context) {
	var uri commonDto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, "invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Stream forwards the caller's live notifications from redis to a websocket
// until either side goes away.
func (h *UserNotificationHandler) Stream(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if h.redisClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "live notifications are disabled"})
		return
	}

	ctx := c.Request.Context()
	logger := log.Ctx(ctx).With().Uint("user_id", userID).Logger()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to upgrade websocket")
		return
	}
	defer conn.Close()

	pubsub := h.redisClient.Subscribe(ctx, usernotification.Channel(userID))
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to subscribe to notification channel")
		return
	}
	ch := pubsub.Channel()

	clientClosed := make(chan struct{})
	go func() {
		defer close(clientClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				logger.Debug().Err(err).Msg("websocket write failed")
				return
			}
		case <-clientClosed:
			return
		case <-ctx.Done():
			return
		}
	}
}
