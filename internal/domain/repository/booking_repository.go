package repository

import (
	"time"

	"home-services-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	Update(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	// FindByIDForUpdate loads the booking with its service and locks the booking row.
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByScope(db *gorm.DB, scope entity.BookingScope, status entity.BookingStatus) ([]entity.Booking, error)
	// SlotTaken reports whether an active booking already holds the slot.
	SlotTaken(db *gorm.DB, serviceID int64, date time.Time, slot string) (bool, error)
	CountStats(db *gorm.DB, scope entity.BookingScope) (*entity.BookingStats, error)
	// AverageRating is the mean rating of completed, rated bookings of a service.
	AverageRating(db *gorm.DB, serviceID int64) (decimal.NullDecimal, error)
}
