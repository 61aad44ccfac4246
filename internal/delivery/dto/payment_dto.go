package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePaymentRequest struct {
	BookingID     uuid.UUID `json:"booking_id" validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"omitempty,oneof=card upi wallet"`
}

type ConfirmPaymentRequest struct {
	PaymentID     uuid.UUID `json:"payment_id" validate:"required"`
	TransactionID string    `json:"transaction_id" validate:"omitempty,max=100"`
}

// Response DTOs

type PaymentResponse struct {
	ID            uuid.UUID  `json:"id"`
	BookingID     uuid.UUID  `json:"booking_id"`
	BookingCode   string     `json:"booking_code,omitempty"`
	ServiceName   string     `json:"service_name,omitempty"`
	PaymentMethod string     `json:"payment_method"`
	PaymentStatus string     `json:"payment_status"`
	Amount        string     `json:"amount"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	PaymentDate   time.Time  `json:"payment_date"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type PaymentIntentResponse struct {
	PaymentID uuid.UUID       `json:"payment_id"`
	Amount    string          `json:"amount"`
	Payment   PaymentResponse `json:"payment"`
}

// ConfirmPaymentResult reports whether the confirmation changed anything.
type ConfirmPaymentResult struct {
	Payment          PaymentResponse `json:"payment"`
	AlreadyConfirmed bool            `json:"already_confirmed"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}

// BookingPaymentResponse holds the latest payment of a booking, or nil when there is none.
type BookingPaymentResponse struct {
	BookingID uuid.UUID        `json:"booking_id"`
	Payment   *PaymentResponse `json:"payment,omitempty"`
}
