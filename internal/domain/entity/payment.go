package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodUPI    PaymentMethod = "upi"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// DefaultPaymentMethod is used when a payment intent does not name one.
const DefaultPaymentMethod = PaymentMethodUPI

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodWallet:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSuccess    PaymentStatus = "success"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Payment records a (simulated) charge against a booking.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"booking_id"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(10);not null" json:"payment_method"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(15);not null;index" json:"payment_status"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	TransactionID *string         `gorm:"type:varchar(100);uniqueIndex" json:"transaction_id,omitempty"`
	PaymentDate   time.Time       `gorm:"not null" json:"payment_date"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Booking Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) IsSuccessful() bool {
	return p.PaymentStatus == PaymentStatusSuccess
}

// IsConfirmable reports whether the payment may still move to success.
func (p *Payment) IsConfirmable() bool {
	switch p.PaymentStatus {
	case PaymentStatusPending, PaymentStatusProcessing:
		return true
	}
	return false
}

// MarkSucceeded settles the payment. An existing transaction id is kept.
func (p *Payment) MarkSucceeded(transactionID string, at time.Time) {
	p.PaymentStatus = PaymentStatusSuccess
	if p.TransactionID == nil && transactionID != "" {
		p.TransactionID = &transactionID
	}
	if p.ProcessedAt == nil {
		stamp := at
		p.ProcessedAt = &stamp
	}
}
