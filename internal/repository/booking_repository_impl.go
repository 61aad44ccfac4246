package repository

import (
	"errors"
	"time"

	"home-services-backend/internal/domain/entity"
	domainRepo "home-services-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

// scopeBookings restricts a bookings query to a customer or to a provider's services.
func scopeBookings(scope entity.BookingScope) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if scope.CustomerID != nil {
			db = db.Where("bookings.customer_id = ?", *scope.CustomerID)
		}
		if scope.ProviderID != nil {
			db = db.Joins("JOIN services ON services.id = bookings.service_id").
				Where("services.provider_id = ?", *scope.ProviderID)
		}
		return db
	}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Omit(clause.Associations).Create(booking).Error
}

func (r *bookingRepository) Update(db *gorm.DB, booking *entity.Booking) error {
	return db.Omit(clause.Associations).Save(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Service.Provider").Preload("Customer").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Service").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByScope(db *gorm.DB, scope entity.BookingScope, status entity.BookingStatus) ([]entity.Booking, error) {
	query := db.Model(&entity.Booking{}).Scopes(scopeBookings(scope))
	if status != "" {
		query = query.Where("bookings.status = ?", status)
	}

	var bookings []entity.Booking
	err := query.Preload("Service.Provider").Preload("Customer").
		Order("bookings.created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) SlotTaken(db *gorm.DB, serviceID int64, date time.Time, slot string) (bool, error) {
	var count int64
	err := db.Model(&entity.Booking{}).
		Where("service_id = ? AND booking_date = ? AND time_slot = ? AND status IN ?",
			serviceID, date.Format(time.DateOnly), slot, entity.ActiveBookingStatuses).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type bookingCountsRow struct {
	Total     int64
	Completed int64
	Pending   int64
}

func (r *bookingRepository) CountStats(db *gorm.DB, scope entity.BookingScope) (*entity.BookingStats, error) {
	var row bookingCountsRow
	err := db.Model(&entity.Booking{}).
		Scopes(scopeBookings(scope)).
		Select("COUNT(*) AS total, "+
			"COUNT(*) FILTER (WHERE bookings.status = ?) AS completed, "+
			"COUNT(*) FILTER (WHERE bookings.status = ?) AS pending",
			entity.BookingStatusCompleted, entity.BookingStatusPending).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	stats := entity.NewBookingStats(row.Total, row.Completed, row.Pending)
	return &stats, nil
}

type ratingRow struct {
	Average decimal.NullDecimal
}

func (r *bookingRepository) AverageRating(db *gorm.DB, serviceID int64) (decimal.NullDecimal, error) {
	var row ratingRow
	err := db.Model(&entity.Booking{}).
		Select("AVG(rating) AS average").
		Where("service_id = ? AND status = ? AND rating IS NOT NULL", serviceID, entity.BookingStatusCompleted).
		Scan(&row).Error
	return row.Average, err
}
