package converter

import (
	"home-services-backend/internal/delivery/dto"
	"home-services-backend/internal/domain/entity"
)

func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		BookingCode:   payment.Booking.BookingCode,
		ServiceName:   payment.Booking.Service.Name,
		PaymentMethod: string(payment.PaymentMethod),
		PaymentStatus: string(payment.PaymentStatus),
		Amount:        payment.Amount.StringFixed(2),
		TransactionID: payment.TransactionID,
		PaymentDate:   payment.PaymentDate,
		ProcessedAt:   payment.ProcessedAt,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}

func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *PaymentToResponse(&payments[i])
	}
	return responses
}
