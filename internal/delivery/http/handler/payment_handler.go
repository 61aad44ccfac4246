package handler

import (
	"net/http"

	"home-services-backend/internal/delivery/dto"
	"home-services-backend/internal/usecase"
	"home-services-backend/pkg/response"
	"home-services-backend/pkg/validator"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

// CreatePaymentIntent handles payment intent creation
// @Summary Open a payment for a booking
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Create Payment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /payments/create/ [post]
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	intent, err := h.paymentUsecase.CreatePaymentIntent(r.Context(), who, &req)
	if err != nil {
		writeError(w, err, "Failed to create payment")
		return
	}

	response.Success(w, http.StatusCreated, "Payment intent created successfully", intent)
}

// ConfirmPayment handles payment confirmation
// @Summary Confirm a payment
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ConfirmPaymentRequest true "Confirm Payment Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /payments/confirm/ [post]
func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req dto.ConfirmPaymentRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	result, err := h.paymentUsecase.ConfirmPayment(r.Context(), who, &req)
	if err != nil {
		writeError(w, err, "Failed to confirm payment")
		return
	}

	message := "Payment confirmed successfully"
	if result.AlreadyConfirmed {
		message = "Payment already confirmed"
	}
	response.Success(w, http.StatusOK, message, result.Payment)
}

func (h *PaymentHandler) GetMyPayments(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	payments, err := h.paymentUsecase.GetMyPayments(r.Context(), who)
	if err != nil {
		writeError(w, err, "Failed to get payments")
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}

func (h *PaymentHandler) GetBookingPayment(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}
	bookingID, ok := uuidVar(w, r, "booking_id", "Invalid booking ID")
	if !ok {
		return
	}

	result, err := h.paymentUsecase.GetBookingPayment(r.Context(), who, bookingID)
	if err != nil {
		writeError(w, err, "Failed to get payment")
		return
	}

	if result.Payment == nil {
		response.Success(w, http.StatusOK, "No payment found for this booking", result)
		return
	}
	response.Success(w, http.StatusOK, "Payment retrieved successfully", result)
}
