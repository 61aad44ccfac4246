package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

var ErrInvalidStatusTransition = errors.New("invalid booking status transition")

// ActiveBookingStatuses hold their time slot; no two bookings in these
// statuses may share (service, date, slot).
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusInProgress,
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted, BookingStatusCancelled},
}

var bookingStatusLabels = map[BookingStatus]string{
	BookingStatusPending:    "Pending",
	BookingStatusConfirmed:  "Confirmed",
	BookingStatusInProgress: "In Progress",
	BookingStatusCompleted:  "Completed",
	BookingStatusCancelled:  "Cancelled",
}

func (s BookingStatus) IsValid() bool {
	_, ok := bookingStatusLabels[s]
	return ok
}

func (s BookingStatus) Label() string {
	if label, ok := bookingStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsTerminal reports whether no further transition is possible.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TimeSlots are the hourly start times a booking may reserve, in order.
var TimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// TimeSlotLabel renders a slot on a 12-hour clock, e.g. "1:00 PM".
func TimeSlotLabel(slot string) string {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return slot
	}
	return t.Format("3:04 PM")
}

const (
	MinRating = 1
	MaxRating = 5
)

// Booking reserves one time slot of a service on a date for a customer.
type Booking struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingCode         string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"booking_code"`
	CustomerID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	ServiceID           int64           `gorm:"not null;index" json:"service_id"`
	BookingDate         time.Time       `gorm:"type:date;not null" json:"booking_date"`
	TimeSlot            string          `gorm:"type:varchar(5);not null" json:"time_slot"`
	HoursRequested      int             `gorm:"not null" json:"hours_requested"`
	Status              BookingStatus   `gorm:"type:varchar(15);not null;index" json:"status"`
	TotalAmount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	SpecialInstructions *string         `gorm:"type:text" json:"special_instructions,omitempty"`
	CustomerAddress     string          `gorm:"type:text;not null" json:"customer_address"`
	CustomerPhone       string          `gorm:"type:varchar(15);not null" json:"customer_phone"`
	Rating              *int            `json:"rating,omitempty"`
	Feedback            *string         `gorm:"type:text" json:"feedback,omitempty"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	ConfirmedAt         *time.Time      `json:"confirmed_at,omitempty"`
	CompletedAt         *time.Time      `json:"completed_at,omitempty"`

	// Relationships
	Customer User    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Service  Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

func (b *Booking) IsCompleted() bool {
	return b.Status == BookingStatusCompleted
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

func (b *Booking) IsRated() bool {
	return b.Rating != nil
}

// TransitionTo moves the booking to next if the lifecycle allows it. ConfirmedAt and
// CompletedAt are stamped with at the first entry into their status only.
// It returns true when this call completed the booking.
func (b *Booking) TransitionTo(next BookingStatus, at time.Time) (bool, error) {
	if !b.Status.CanTransitionTo(next) {
		return false, ErrInvalidStatusTransition
	}

	b.Status = next
	completedNow := false

	switch next {
	case BookingStatusConfirmed:
		if b.ConfirmedAt == nil {
			stamp := at
			b.ConfirmedAt = &stamp
		}
	case BookingStatusCompleted:
		if b.CompletedAt == nil {
			stamp := at
			b.CompletedAt = &stamp
			completedNow = true
		}
	}

	return completedNow, nil
}

// BookingScope restricts booking queries to what the caller may see.
type BookingScope struct {
	CustomerID *uuid.UUID
	ProviderID *uuid.UUID
}

// ScopeFor returns the visibility scope of an identity: own bookings for customers,
// bookings against own services for providers.
func ScopeFor(who Identity) BookingScope {
	id := who.UserID
	if who.IsProvider() {
		return BookingScope{ProviderID: &id}
	}
	return BookingScope{CustomerID: &id}
}

// BookingStats summarises the bookings in a scope.
type BookingStats struct {
	TotalBookings     int64           `json:"total_bookings"`
	CompletedBookings int64           `json:"completed_bookings"`
	PendingBookings   int64           `json:"pending_bookings"`
	CompletionRate    decimal.Decimal `json:"completion_rate"`
}

// NewBookingStats derives the completion rate as a percentage rounded to two decimals,
// zero when there are no bookings.
func NewBookingStats(total, completed, pending int64) BookingStats {
	rate := decimal.Zero
	if total > 0 {
		rate = decimal.NewFromInt(completed).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(total)).
			Round(2)
	}
	return BookingStats{
		TotalBookings:     total,
		CompletedBookings: completed,
		PendingBookings:   pending,
		CompletionRate:    rate,
	}
}
