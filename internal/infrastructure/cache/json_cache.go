package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"home-services-backend/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type redisJSONCache struct {
	client redis.Cmdable
	prefix string
}

// NewJSONCache namespaces every key under prefix.
func NewJSONCache(client redis.Cmdable, prefix string) repository.Cache {
	return &redisJSONCache{client: client, prefix: prefix}
}

func (c *redisJSONCache) key(k string) string {
	return c.prefix + ":" + k
}

func (c *redisJSONCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisJSONCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(key), raw, ttl).Err()
}

func (c *redisJSONCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	return c.client.Del(ctx, full...).Err()
}
