package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusInProgress, false},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusPending, BookingStatusPending, false},
		{BookingStatusConfirmed, BookingStatusInProgress, true},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusInProgress, BookingStatusCompleted, true},
		{BookingStatusInProgress, BookingStatusCancelled, true},
		{BookingStatusInProgress, BookingStatusConfirmed, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusCompleted, false},
		{BookingStatusCancelled, BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingTransitionStampsOnce(t *testing.T) {
	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	later := first.Add(2 * time.Hour)

	b := &Booking{Status: BookingStatusPending}

	completed, err := b.TransitionTo(BookingStatusConfirmed, first)
	require.NoError(t, err)
	assert.False(t, completed)
	require.NotNil(t, b.ConfirmedAt)
	assert.Equal(t, first, *b.ConfirmedAt)

	completed, err = b.TransitionTo(BookingStatusInProgress, later)
	require.NoError(t, err)
	assert.False(t, completed)
	assert.Equal(t, first, *b.ConfirmedAt)

	completed, err = b.TransitionTo(BookingStatusCompleted, later)
	require.NoError(t, err)
	assert.True(t, completed)
	require.NotNil(t, b.CompletedAt)
	assert.Equal(t, later, *b.CompletedAt)
}

func TestBookingTransitionRejected(t *testing.T) {
	b := &Booking{Status: BookingStatusCompleted}

	completed, err := b.TransitionTo(BookingStatusCancelled, time.Now())
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.False(t, completed)
	assert.Equal(t, BookingStatusCompleted, b.Status)
}

func TestTimeSlots(t *testing.T) {
	assert.Len(t, TimeSlots, 11)
	assert.True(t, IsValidTimeSlot("08:00"))
	assert.True(t, IsValidTimeSlot("18:00"))
	assert.False(t, IsValidTimeSlot("19:00"))
	assert.False(t, IsValidTimeSlot("8:00"))
	assert.Equal(t, "1:00 PM", TimeSlotLabel("13:00"))
	assert.Equal(t, "8:00 AM", TimeSlotLabel("08:00"))
}

func TestNewBookingStats(t *testing.T) {
	empty := NewBookingStats(0, 0, 0)
	assert.True(t, empty.CompletionRate.IsZero())

	stats := NewBookingStats(3, 1, 2)
	assert.Equal(t, int64(3), stats.TotalBookings)
	assert.True(t, decimal.RequireFromString("33.33").Equal(stats.CompletionRate), stats.CompletionRate.String())

	all := NewBookingStats(4, 4, 0)
	assert.True(t, decimal.NewFromInt(100).Equal(all.CompletionRate))
}

func TestScopeFor(t *testing.T) {
	id := uuid.New()

	customer := ScopeFor(Identity{UserID: id, Role: RoleCustomer})
	require.NotNil(t, customer.CustomerID)
	assert.Equal(t, id, *customer.CustomerID)
	assert.Nil(t, customer.ProviderID)

	provider := ScopeFor(Identity{UserID: id, Role: RoleProvider})
	require.NotNil(t, provider.ProviderID)
	assert.Nil(t, provider.CustomerID)
}
