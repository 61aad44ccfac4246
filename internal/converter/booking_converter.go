package converter

import (
	"time"

	"home-services-backend/internal/delivery/dto"
	"home-services-backend/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO.
// Customer and Service are included only when preloaded.
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:                  booking.ID,
		BookingCode:         booking.BookingCode,
		CustomerID:          booking.CustomerID,
		Customer:            UserToSummary(&booking.Customer),
		ServiceID:           booking.ServiceID,
		BookingDate:         booking.BookingDate.Format(time.DateOnly),
		TimeSlot:            booking.TimeSlot,
		TimeSlotLabel:       entity.TimeSlotLabel(booking.TimeSlot),
		HoursRequested:      booking.HoursRequested,
		Status:              string(booking.Status),
		StatusLabel:         booking.Status.Label(),
		TotalAmount:         booking.TotalAmount.StringFixed(2),
		SpecialInstructions: booking.SpecialInstructions,
		CustomerAddress:     booking.CustomerAddress,
		CustomerPhone:       booking.CustomerPhone,
		Rating:              booking.Rating,
		Feedback:            booking.Feedback,
		CreatedAt:           booking.CreatedAt,
		UpdatedAt:           booking.UpdatedAt,
		ConfirmedAt:         booking.ConfirmedAt,
		CompletedAt:         booking.CompletedAt,
	}

	if booking.Service.ID != 0 {
		response.Service = ServiceToResponse(&booking.Service)
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}

func BookingStatsToResponse(stats *entity.BookingStats) *dto.BookingStatsResponse {
	return &dto.BookingStatsResponse{
		TotalBookings:     stats.TotalBookings,
		CompletedBookings: stats.CompletedBookings,
		PendingBookings:   stats.PendingBookings,
		CompletionRate:    stats.CompletionRate.StringFixed(2),
	}
}
