package cartstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores state as plain keys with a sliding TTL and announces
// every write on a per-key pub/sub channel.
type RedisBackend struct {
	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
}

// NewRedisBackend creates a backend. An empty prefix defaults to "store:"; a
// zero ttl keeps keys forever.
func NewRedisBackend(client redis.UniversalClient, keyPrefix string, ttl time.Duration) *RedisBackend {
	if keyPrefix == "" {
		keyPrefix = "store:"
	}
	return &RedisBackend{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (r *RedisBackend) dataKey(key string) string { return r.keyPrefix + key }
func (r *RedisBackend) channel(key string) string { return r.keyPrefix + "changed:" + key }

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.dataKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return v, nil
}

func (r *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.dataKey(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := r.client.Publish(ctx, r.channel(key), "1").Err(); err != nil {
		return fmt.Errorf("failed to publish change of %s: %w", key, err)
	}
	return nil
}

func (r *RedisBackend) Subscribe(ctx context.Context, key string) (<-chan struct{}, error) {
	pubsub := r.client.Subscribe(ctx, r.channel(key))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", key, err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer pubsub.Close()
		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}
