package repository

import (
	"home-services-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	// FindByLogin matches either the username or the email.
	FindByLogin(db *gorm.DB, login string) (*entity.User, error)
}
