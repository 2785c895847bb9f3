package cache

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kkcy/ticketcare/pkg/logger"
	pkgredis "github.com/kkcy/ticketcare/pkg/redis"
)

// InvalidationChannel is the pub/sub channel storefront renderers
// subscribe to for page revalidation
const InvalidationChannel = "ticketcare:invalidate:event"

// Invalidator signals downstream caches that an event's detail view is stale
type Invalidator interface {
	InvalidateEvent(ctx context.Context, slug string) error
}

// RedisInvalidator implements Invalidator on Redis: it drops the cached
// detail payload and publishes the slug for subscribed renderers.
type RedisInvalidator struct {
	client *pkgredis.Client
	log    *logger.Logger
}

// NewRedisInvalidator creates a new RedisInvalidator
func NewRedisInvalidator(client *pkgredis.Client, log *logger.Logger) *RedisInvalidator {
	return &RedisInvalidator{client: client, log: log}
}

func detailKey(slug string) string {
	return fmt.Sprintf("event:detail:%s", slug)
}

// InvalidateEvent drops the cached event detail and broadcasts the slug
func (i *RedisInvalidator) InvalidateEvent(ctx context.Context, slug string) error {
	rdb := i.client.Redis()

	if err := rdb.Del(ctx, detailKey(slug)).Err(); err != nil {
		return fmt.Errorf("failed to drop cached event detail: %w", err)
	}

	if err := rdb.Publish(ctx, InvalidationChannel, slug).Err(); err != nil {
		return fmt.Errorf("failed to publish invalidation: %w", err)
	}

	i.log.DebugContext(ctx, "event detail invalidated", zap.String("slug", slug))
	return nil
}
