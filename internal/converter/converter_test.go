package converter

import (
	"testing"
	"time"

	"home-services-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingToResponse(t *testing.T) {
	providerID := uuid.New()
	booking := &entity.Booking{
		ID:             uuid.New(),
		BookingCode:    "BK-20260301-ABCDEF",
		ServiceID:      7,
		BookingDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:       "14:00",
		HoursRequested: 2,
		Status:         entity.BookingStatusInProgress,
		TotalAmount:    decimal.NewFromInt(200),
		Service: entity.Service{
			ID:           7,
			ProviderID:   providerID,
			Name:         "Deep cleaning",
			Category:     entity.CategoryCleaning,
			PricePerHour: decimal.NewFromInt(100),
			Provider:     entity.User{ID: providerID, Username: "mop", FirstName: "Max"},
		},
	}

	resp := BookingToResponse(booking)
	require.NotNil(t, resp)
	assert.Equal(t, "2026-03-01", resp.BookingDate)
	assert.Equal(t, "2:00 PM", resp.TimeSlotLabel)
	assert.Equal(t, "200.00", resp.TotalAmount)
	assert.Equal(t, "In Progress", resp.StatusLabel)
	assert.Nil(t, resp.Customer)
	require.NotNil(t, resp.Service)
	assert.Equal(t, "100.00", resp.Service.PricePerHour)
	assert.Equal(t, "Cleaning", resp.Service.CategoryLabel)
	require.NotNil(t, resp.Service.Provider)
	assert.Equal(t, "Max", resp.Service.Provider.FullName)
}

func TestBookingToResponseWithoutService(t *testing.T) {
	resp := BookingToResponse(&entity.Booking{TimeSlot: "08:00", TotalAmount: decimal.NewFromInt(50)})
	assert.Nil(t, resp.Service)
	assert.Nil(t, BookingToResponse(nil))
}

func TestPaymentToResponse(t *testing.T) {
	txn := "TXN-0123456789"
	resp := PaymentToResponse(&entity.Payment{
		PaymentMethod: entity.PaymentMethodUPI,
		PaymentStatus: entity.PaymentStatusSuccess,
		Amount:        decimal.RequireFromString("99.5"),
		TransactionID: &txn,
	})

	assert.Equal(t, "99.50", resp.Amount)
	assert.Equal(t, "success", resp.PaymentStatus)
	assert.Equal(t, &txn, resp.TransactionID)
}

func TestCategoriesToResponses(t *testing.T) {
	got := CategoriesToResponses(entity.Categories)
	require.Len(t, got, len(entity.Categories))
	assert.Equal(t, "moving", got[7].Value)
	assert.Equal(t, "Moving & Packing", got[7].Label)
}
