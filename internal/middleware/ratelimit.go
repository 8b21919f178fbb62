package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"anoa.com/spacemanagement/pkg/apperror"
	"anoa.com/spacemanagement/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const writeAction = "write"

// RateLimiter enforces a cooldown between two writes of the same user.
// A nil redis client disables it.
type RateLimiter struct {
	rdb      *redis.Client
	cooldown time.Duration
}

func NewRateLimiter(rdb *redis.Client, cooldown time.Duration) *RateLimiter {
	return &RateLimiter{rdb: rdb, cooldown: cooldown}
}

// LimitWrites applies to POST, PUT, PATCH and DELETE; reads pass through.
// It must run after RequireAuth.
func (l *RateLimiter) LimitWrites() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.rdb == nil || l.cooldown <= 0 || !isWrite(c.Request.Method) {
			c.Next()
			return
		}

		userID, err := response.GetUserID(c)
		if err != nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		allowed, err := checkAndSetRateLimit(ctx, l.rdb, userID, writeAction, l.cooldown)
		if err != nil {
			// Redis trouble must not take the catalog down.
			log.Ctx(ctx).Warn().Err(err).Msg("rate limit check failed")
			c.Next()
			return
		}

		if !allowed {
			ttl, err := getRateLimitTTL(ctx, l.rdb, userID, writeAction)
			if err != nil || ttl <= 0 {
				ttl = l.cooldown
			}
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(ttl.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": apperror.ErrRateLimitExceeded.Error()})
			return
		}

		c.Next()
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func rateLimitKey(userID uint, action string) string {
	return fmt.Sprintf("rate_limit:user:%d:%s", userID, action)
}

func checkAndSetRateLimit(ctx context.Context, rdb *redis.Client, userID uint, action string, limit time.Duration) (bool, error) {
	wasSet, err := rdb.SetNX(ctx, rateLimitKey(userID, action), "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}
	return wasSet, nil
}

func getRateLimitTTL(ctx context.Context, rdb *redis.Client, userID uint, action string) (time.Duration, error) {
	return rdb.TTL(ctx, rateLimitKey(userID, action)).Result()
}
