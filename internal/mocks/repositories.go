// Package mocks holds testify mocks of the domain repositories and services.
// Database handles are never passed to Called; expectations match on the remaining arguments.
package mocks

import (
	"time"

	"home-services-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *UserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) FindByLogin(db *gorm.DB, login string) (*entity.User, error) {
	args := m.Called(login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type ServiceRepository struct {
	mock.Mock
}

func (m *ServiceRepository) Create(db *gorm.DB, service *entity.Service) error {
	args := m.Called(service)
	return args.Error(0)
}

func (m *ServiceRepository) Update(db *gorm.DB, service *entity.Service) error {
	args := m.Called(service)
	return args.Error(0)
}

func (m *ServiceRepository) Delete(db *gorm.DB, id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *ServiceRepository) FindByID(db *gorm.DB, id int64) (*entity.Service, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Service), args.Error(1)
}

func (m *ServiceRepository) FindAvailable(db *gorm.DB, filter entity.ServiceFilter) ([]entity.Service, int64, error) {
	args := m.Called(filter)
	return args.Get(0).([]entity.Service), args.Get(1).(int64), args.Error(2)
}

func (m *ServiceRepository) FindByProviderID(db *gorm.DB, providerID uuid.UUID) ([]entity.Service, error) {
	args := m.Called(providerID)
	return args.Get(0).([]entity.Service), args.Error(1)
}

func (m *ServiceRepository) GetStats(db *gorm.DB) (*entity.ServiceStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ServiceStats), args.Error(1)
}

func (m *ServiceRepository) IncrementTotalBookings(db *gorm.DB, id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *ServiceRepository) UpdateRating(db *gorm.DB, id int64, rating decimal.Decimal) error {
	args := m.Called(id, rating)
	return args.Error(0)
}

type BookingRepository struct {
	mock.Mock
}

func (m *BookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

func (m *BookingRepository) Update(db *gorm.DB, booking *entity.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

func (m *BookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *BookingRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *BookingRepository) FindByScope(db *gorm.DB, scope entity.BookingScope, status entity.BookingStatus) ([]entity.Booking, error) {
	args := m.Called(scope, status)
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *BookingRepository) SlotTaken(db *gorm.DB, serviceID int64, date time.Time, slot string) (bool, error) {
	args := m.Called(serviceID, date, slot)
	return args.Bool(0), args.Error(1)
}

func (m *BookingRepository) CountStats(db *gorm.DB, scope entity.BookingScope) (*entity.BookingStats, error) {
	args := m.Called(scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BookingStats), args.Error(1)
}

func (m *BookingRepository) AverageRating(db *gorm.DB, serviceID int64) (decimal.NullDecimal, error) {
	args := m.Called(serviceID)
	return args.Get(0).(decimal.NullDecimal), args.Error(1)
}

type PaymentRepository struct {
	mock.Mock
}

func (m *PaymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	args := m.Called(payment)
	return args.Error(0)
}

func (m *PaymentRepository) Update(db *gorm.DB, payment *entity.Payment) error {
	args := m.Called(payment)
	return args.Error(0)
}

func (m *PaymentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *PaymentRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *PaymentRepository) FindLatestByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.Payment, error) {
	args := m.Called(bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *PaymentRepository) FindByScope(db *gorm.DB, scope entity.BookingScope) ([]entity.Payment, error) {
	args := m.Called(scope)
	return args.Get(0).([]entity.Payment), args.Error(1)
}

func (m *PaymentRepository) ExistsWithStatus(db *gorm.DB, bookingID uuid.UUID, status entity.PaymentStatus) (bool, error) {
	args := m.Called(bookingID, status)
	return args.Bool(0), args.Error(1)
}

func (m *PaymentRepository) DeleteByStatus(db *gorm.DB, bookingID uuid.UUID, status entity.PaymentStatus) (int64, error) {
	args := m.Called(bookingID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PaymentRepository) TransitionStatus(db *gorm.DB, bookingID uuid.UUID, from []entity.PaymentStatus, to entity.PaymentStatus) (int64, error) {
	args := m.Called(bookingID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type AuditLogRepository struct {
	mock.Mock
}

func (m *AuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *AuditLogRepository) FindByUserID(db *gorm.DB, userID uuid.UUID, limit int) ([]entity.AuditLog, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]entity.AuditLog), args.Error(1)
}
