package response

import (
	"net/http"

	"anoa.com/spacemanagement/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (uint, error) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, apperror.ErrUnauthorized
	}

	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, apperror.ErrUnauthorized
	}

	return userID, nil
}

// GetUsername returns the authenticated username, or "" for anonymous calls.
func GetUsername(c *gin.Context) string {
	return c.GetString(ContextUsername)
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code >= http.StatusInternalServerError {
		log.Ctx(c.Request.Context()).Error().Err(err).Int("status", code).Msg("request failed")
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

// BindError replies 400 with the formatted binding/validation message.
func BindError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
