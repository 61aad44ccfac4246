package repository

import (
	"testing"
	"time"

	"home-services-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBookingRepository_SlotTaken(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewBookingRepository()
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	taken, err := repo.SlotTaken(db, 7, date, "10:00")

	require.NoError(t, err)
	assert.False(t, taken)

	sql := rec.last(t)
	assert.Contains(t, sql, `FROM "bookings"`)
	assert.Contains(t, sql, "service_id = 7")
	assert.Contains(t, sql, "booking_date = '2026-03-05'")
	assert.Contains(t, sql, "time_slot = '10:00'")
	assert.Contains(t, sql, "status IN ('pending','confirmed','in_progress')")
	assert.NotContains(t, sql, "'completed'")
	assert.NotContains(t, sql, "'cancelled'")
}

func TestBookingRepository_AverageRating(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewBookingRepository()

	avg, err := repo.AverageRating(db, 7)

	// scanning needs a live connection; the statement is still rendered
	assert.ErrorIs(t, err, gorm.ErrDryRunModeUnsupported)
	assert.False(t, avg.Valid)

	sql := rec.last(t)
	assert.Contains(t, sql, "SELECT AVG(rating) AS average")
	assert.Contains(t, sql, "service_id = 7")
	assert.Contains(t, sql, "status = 'completed'")
	assert.Contains(t, sql, "rating IS NOT NULL")
}

func TestBookingRepository_CountStats(t *testing.T) {
	id := uuid.MustParse("8f8a4f7e-2d0b-4c61-9d3e-1f2a3b4c5d6e")

	t.Run("provider scope joins services", func(t *testing.T) {
		db, rec := newDryRunDB(t)

		_, err := NewBookingRepository().CountStats(db, entity.BookingScope{ProviderID: &id})

		assert.ErrorIs(t, err, gorm.ErrDryRunModeUnsupported)
		sql := rec.last(t)
		assert.Contains(t, sql, "JOIN services ON services.id = bookings.service_id")
		assert.Contains(t, sql, "services.provider_id = '"+id.String()+"'")
		assert.Contains(t, sql, "COUNT(*) AS total")
		assert.Contains(t, sql, "COUNT(*) FILTER (WHERE bookings.status = 'completed') AS completed")
		assert.Contains(t, sql, "COUNT(*) FILTER (WHERE bookings.status = 'pending') AS pending")
		assert.NotContains(t, sql, "customer_id")
	})

	t.Run("customer scope stays on bookings", func(t *testing.T) {
		db, rec := newDryRunDB(t)

		_, err := NewBookingRepository().CountStats(db, entity.BookingScope{CustomerID: &id})

		assert.ErrorIs(t, err, gorm.ErrDryRunModeUnsupported)
		sql := rec.last(t)
		assert.Contains(t, sql, "bookings.customer_id = '"+id.String()+"'")
		assert.NotContains(t, sql, "JOIN services")
	})

	t.Run("admin scope is unfiltered", func(t *testing.T) {
		db, rec := newDryRunDB(t)

		_, err := NewBookingRepository().CountStats(db, entity.BookingScope{})

		assert.ErrorIs(t, err, gorm.ErrDryRunModeUnsupported)
		sql := rec.last(t)
		assert.NotContains(t, sql, "customer_id")
		assert.NotContains(t, sql, "provider_id")
	})
}

func TestBookingRepository_FindByScope(t *testing.T) {
	db, rec := newDryRunDB(t)
	provider := uuid.MustParse("1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed")

	bookings, err := NewBookingRepository().FindByScope(db, entity.BookingScope{ProviderID: &provider}, entity.BookingStatusConfirmed)

	require.NoError(t, err)
	assert.Empty(t, bookings)

	sql := rec.last(t)
	assert.Contains(t, sql, "JOIN services ON services.id = bookings.service_id")
	assert.Contains(t, sql, "services.provider_id = '"+provider.String()+"'")
	assert.Contains(t, sql, "bookings.status = 'confirmed'")
	assert.Contains(t, sql, "ORDER BY bookings.created_at DESC")
}

func TestBookingRepository_FindByIDForUpdate(t *testing.T) {
	db, rec := newDryRunDB(t)
	id := uuid.New()

	_, err := NewBookingRepository().FindByIDForUpdate(db, id)

	require.NoError(t, err)
	sql := rec.last(t)
	assert.Contains(t, sql, "id = '"+id.String()+"'")
	assert.Contains(t, sql, "FOR UPDATE")
}
