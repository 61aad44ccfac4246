package mocks

import (
	"context"
	"time"

	"home-services-backend/internal/domain/entity"
	"home-services-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type AuditService struct {
	mock.Mock
}

func (m *AuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	args := m.Called(action, entityName, entityID)
	return args.Error(0)
}

func (m *AuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	args := m.Called(action, entityName, entityID)
	return args.Error(0)
}

func (m *AuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	args := m.Called(action, entityName, entityID)
	return args.Error(0)
}

func (m *AuditService) RecentActivity(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]entity.AuditLog, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]entity.AuditLog), args.Error(1)
}

type TokenStore struct {
	mock.Mock
}

func (m *TokenStore) Store(ctx context.Context, kind repository.TokenKind, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	args := m.Called(kind, userID, tokenID, ttl)
	return args.Error(0)
}

func (m *TokenStore) Exists(ctx context.Context, kind repository.TokenKind, userID uuid.UUID, tokenID string) (bool, error) {
	args := m.Called(kind, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *TokenStore) Revoke(ctx context.Context, kind repository.TokenKind, userID uuid.UUID, tokenID string) (bool, error) {
	args := m.Called(kind, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

type Cache struct {
	mock.Mock
}

func (m *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(key, value, ttl)
	return args.Error(0)
}

func (m *Cache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(keys)
	return args.Error(0)
}
