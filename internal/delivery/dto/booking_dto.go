package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateBookingRequest has no amount field; the total is always computed from the service price.
type CreateBookingRequest struct {
	ServiceID           int64   `json:"service" validate:"required,gt=0"`
	BookingDate         string  `json:"booking_date" validate:"required,datetime=2006-01-02"`
	TimeSlot            string  `json:"time_slot" validate:"required,oneof=08:00 09:00 10:00 11:00 12:00 13:00 14:00 15:00 16:00 17:00 18:00"`
	HoursRequested      int     `json:"hours_requested" validate:"required,gte=1,lte=24"`
	SpecialInstructions *string `json:"special_instructions"`
	CustomerAddress     string  `json:"customer_address" validate:"required"`
	CustomerPhone       string  `json:"customer_phone" validate:"required,max=15"`
}

type UpdateBookingStatusRequest struct {
	Status   string  `json:"status" validate:"required,oneof=pending confirmed in_progress completed cancelled"`
	Rating   *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Feedback *string `json:"feedback"`
}

type RateBookingRequest struct {
	Rating   int     `json:"rating" validate:"required,gte=1,lte=5"`
	Feedback *string `json:"feedback"`
}

// Response DTOs

type BookingResponse struct {
	ID                  uuid.UUID        `json:"id"`
	BookingCode         string           `json:"booking_code"`
	CustomerID          uuid.UUID        `json:"customer_id"`
	Customer            *UserSummary     `json:"customer,omitempty"`
	ServiceID           int64            `json:"service_id"`
	Service             *ServiceResponse `json:"service,omitempty"`
	BookingDate         string           `json:"booking_date"`
	TimeSlot            string           `json:"time_slot"`
	TimeSlotLabel       string           `json:"time_slot_display"`
	HoursRequested      int              `json:"hours_requested"`
	Status              string           `json:"status"`
	StatusLabel         string           `json:"status_display"`
	TotalAmount         string           `json:"total_amount"`
	SpecialInstructions *string          `json:"special_instructions,omitempty"`
	CustomerAddress     string           `json:"customer_address"`
	CustomerPhone       string           `json:"customer_phone"`
	Rating              *int             `json:"rating,omitempty"`
	Feedback            *string          `json:"feedback,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
	ConfirmedAt         *time.Time       `json:"confirmed_at,omitempty"`
	CompletedAt         *time.Time       `json:"completed_at,omitempty"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

type BookingStatsResponse struct {
	TotalBookings     int64  `json:"total_bookings"`
	CompletedBookings int64  `json:"completed_bookings"`
	PendingBookings   int64  `json:"pending_bookings"`
	CompletionRate    string `json:"completion_rate"`
}
