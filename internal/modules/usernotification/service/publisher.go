package usernotification

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Channel is the pub/sub channel carrying one user's live notifications.
func Channel(userID uint) string {
	return fmt.Sprintf("user_notifications:%d", userID)
}

type Publisher interface {
	Publish(ctx context.Context, userID uint, payload []byte) error
}

type redisPublisher struct {
	rdb *redis.Client
}

// NewRedisPublisher returns a no-op publisher when rdb is nil.
func NewRedisPublisher(rdb *redis.Client) Publisher {
	if rdb == nil {
		return noopPublisher{}
	}
	return &redisPublisher{rdb: rdb}
}

func (p *redisPublisher) Publish(ctx context.Context, userID uint, payload []byte) error {
	return p.rdb.Publish(ctx, Channel(userID), payload).Err()
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, uint, []byte) error { return nil }
