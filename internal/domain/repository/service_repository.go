package repository

import (
	"home-services-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	Update(db *gorm.DB, service *entity.Service) error
	Delete(db *gorm.DB, id int64) error
	FindByID(db *gorm.DB, id int64) (*entity.Service, error)
	FindAvailable(db *gorm.DB, filter entity.ServiceFilter) ([]entity.Service, int64, error)
	FindByProviderID(db *gorm.DB, providerID uuid.UUID) ([]entity.Service, error)
	GetStats(db *gorm.DB) (*entity.ServiceStats, error)
	IncrementTotalBookings(db *gorm.DB, id int64) error
	UpdateRating(db *gorm.DB, id int64, rating decimal.Decimal) error
}
