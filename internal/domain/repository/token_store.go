package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TokenKind string

const (
	TokenKindAccess  TokenKind = "access_token"
	TokenKindRefresh TokenKind = "refresh_token"
)

// TokenStore whitelists issued token ids until they expire or are revoked.
type TokenStore interface {
	Store(ctx context.Context, kind TokenKind, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, kind TokenKind, userID uuid.UUID, tokenID string) (bool, error)
	// Revoke removes the token id and reports whether it was still whitelisted.
	Revoke(ctx context.Context, kind TokenKind, userID uuid.UUID, tokenID string) (bool, error)
}

// Cache stores JSON encoded values with an expiry.
type Cache interface {
	// GetJSON decodes the cached value into dest. It returns false on a miss.
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
