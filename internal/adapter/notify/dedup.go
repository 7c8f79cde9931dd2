package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

const dedupKeyPrefix = "notify:sent:"

// dispatcher is implemented by every adapter in this package.
type dispatcher interface {
	Dispatch(ctx context.Context, event domain.NotificationEvent) error
}

// claimStore is the subset of *redis.Client used for de-duplication.
type claimStore interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Dedup forwards each workflow step (see domain.NotificationEvent.DedupKey)
// to the next dispatcher at most once per TTL, so replays of the same step
// under fresh event IDs are suppressed.
// When the store is unreachable the event is forwarded anyway: a duplicate
// message is preferred over a lost one.
type Dedup struct {
	next  dispatcher
	store claimStore
	ttl   time.Duration
	log   *slog.Logger
}

// NewDedup wraps next with Redis-backed de-duplication.
func NewDedup(next dispatcher, store claimStore, ttl time.Duration, logger *slog.Logger) *Dedup {
	return &Dedup{
		next:  next,
		store: store,
		ttl:   ttl,
		log:   logger.With("adapter", "notify.dedup"),
	}
}

// Dispatch claims the event's dedup key and forwards the event. A failed forward
// releases the claim so a retry can deliver it.
func (d *Dedup) Dispatch(ctx context.Context, event domain.NotificationEvent) error {
	key := dedupKeyPrefix + event.DedupKey()

	claimed, err := d.store.SetNX(ctx, key, event.Kind.String(), d.ttl).Result()
	if err != nil {
		d.log.WarnContext(ctx, "dedup store unavailable, dispatching without claim",
			slog.String("event_id", event.ID.String()),
			slog.String("dedup_key", event.DedupKey()),
			slog.String("error", err.Error()),
		)
		return d.next.Dispatch(ctx, event)
	}
	if !claimed {
		d.log.InfoContext(ctx, "duplicate notification suppressed",
			slog.String("event_id", event.ID.String()),
			slog.String("dedup_key", event.DedupKey()),
			slog.String("kind", event.Kind.String()),
		)
		return nil
	}

	if err := d.next.Dispatch(ctx, event); err != nil {
		if delErr := d.store.Del(ctx, key).Err(); delErr != nil {
			return fmt.Errorf("%w (release claim: %v)", err, delErr)
		}
		return err
	}
	return nil
}

// ConnectRedis initializes a Redis client from URL or host:port input.
func ConnectRedis(redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}
