package cache

import (
	"context"
	"fmt"
	"time"

	"home-services-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type redisTokenStore struct {
	client redis.Cmdable
}

func NewTokenStore(client redis.Cmdable) repository.TokenStore {
	return &redisTokenStore{client: client}
}

func tokenKey(kind repository.TokenKind, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", kind, userID.String(), tokenID)
}

func (s *redisTokenStore) Store(ctx context.Context, kind repository.TokenKind, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(kind, userID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, kind repository.TokenKind, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(kind, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Revoke deletes the token id and reports whether this call removed it. DEL is
// atomic, so of two concurrent revocations of the same id only one sees true.
func (s *redisTokenStore) Revoke(ctx context.Context, kind repository.TokenKind, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Del(ctx, tokenKey(kind, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
