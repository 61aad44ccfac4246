package repository

import (
	"home-services-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	Update(db *gorm.DB, payment *entity.Payment) error
	// FindByID loads the payment with its booking and the booking's service.
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	// FindByIDForUpdate locks the payment row. Relations are not loaded.
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	FindLatestByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.Payment, error)
	FindByScope(db *gorm.DB, scope entity.BookingScope) ([]entity.Payment, error)
	ExistsWithStatus(db *gorm.DB, bookingID uuid.UUID, status entity.PaymentStatus) (bool, error)
	DeleteByStatus(db *gorm.DB, bookingID uuid.UUID, status entity.PaymentStatus) (int64, error)
	// TransitionStatus moves every payment of the booking in one of from to status to.
	TransitionStatus(db *gorm.DB, bookingID uuid.UUID, from []entity.PaymentStatus, to entity.PaymentStatus) (int64, error)
}
