package repository

import (
	"errors"

	"home-services-backend/internal/domain/entity"
	domainRepo "home-services-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Omit(clause.Associations).Create(payment).Error
}

func (r *paymentRepository) Update(db *gorm.DB, payment *entity.Payment) error {
	return db.Omit(clause.Associations).Save(payment).Error
}

func (r *paymentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Preload("Booking.Service").Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindLatestByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByScope(db *gorm.DB, scope entity.BookingScope) ([]entity.Payment, error) {
	query := db.Model(&entity.Payment{}).
		Joins("JOIN bookings ON bookings.id = payments.booking_id")
	if scope.CustomerID != nil {
		query = query.Where("bookings.customer_id = ?", *scope.CustomerID)
	}
	if scope.ProviderID != nil {
		query = query.Joins("JOIN services ON services.id = bookings.service_id").
			Where("services.provider_id = ?", *scope.ProviderID)
	}

	var payments []entity.Payment
	err := query.Preload("Booking.Service").
		Order("payments.created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) ExistsWithStatus(db *gorm.DB, bookingID uuid.UUID, status entity.PaymentStatus) (bool, error) {
	var count int64
	err := db.Model(&entity.Payment{}).
		Where("booking_id = ? AND payment_status = ?", bookingID, status).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *paymentRepository) DeleteByStatus(db *gorm.DB, bookingID uuid.UUID, status entity.PaymentStatus) (int64, error) {
	result := db.Where("booking_id = ? AND payment_status = ?", bookingID, status).
		Delete(&entity.Payment{})
	return result.RowsAffected, result.Error
}

func (r *paymentRepository) TransitionStatus(db *gorm.DB, bookingID uuid.UUID, from []entity.PaymentStatus, to entity.PaymentStatus) (int64, error) {
	result := db.Model(&entity.Payment{}).
		Where("booking_id = ? AND payment_status IN ?", bookingID, from).
		Update("payment_status", to)
	return result.RowsAffected, result.Error
}
