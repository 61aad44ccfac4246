package handler

import (
	"net/http"

	"home-services-backend/internal/delivery/dto"
	"home-services-backend/internal/usecase"
	"home-services-backend/pkg/response"
	"home-services-backend/pkg/validator"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// CreateBooking handles booking creation
// @Summary Book a service slot
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /bookings/ [post]
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), who, &req)
	if err != nil {
		writeError(w, err, "Failed to create booking")
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}
	id, ok := uuidVar(w, r, "id", "Invalid booking ID")
	if !ok {
		return
	}

	booking, err := h.bookingUsecase.GetBooking(r.Context(), who, id)
	if err != nil {
		writeError(w, err, "Failed to get booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	bookings, err := h.bookingUsecase.GetMyBookings(r.Context(), who, r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	stats, err := h.bookingUsecase.GetStats(r.Context(), who)
	if err != nil {
		writeError(w, err, "Failed to get booking stats")
		return
	}

	response.Success(w, http.StatusOK, "Booking stats retrieved successfully", stats)
}

// UpdateStatus handles a provider's status change
// @Summary Move a booking through its lifecycle
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "Status Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /bookings/{id}/status/ [put]
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}
	id, ok := uuidVar(w, r, "id", "Invalid booking ID")
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	booking, err := h.bookingUsecase.UpdateStatus(r.Context(), who, id, &req)
	if err != nil {
		writeError(w, err, "Failed to update booking status")
		return
	}

	response.Success(w, http.StatusOK, "Booking status updated successfully", booking)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}
	id, ok := uuidVar(w, r, "id", "Invalid booking ID")
	if !ok {
		return
	}

	booking, err := h.bookingUsecase.CancelBooking(r.Context(), who, id)
	if err != nil {
		writeError(w, err, "Failed to cancel booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", booking)
}

func (h *BookingHandler) RateBooking(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}
	id, ok := uuidVar(w, r, "id", "Invalid booking ID")
	if !ok {
		return
	}

	var req dto.RateBookingRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	booking, err := h.bookingUsecase.RateBooking(r.Context(), who, id, &req)
	if err != nil {
		writeError(w, err, "Failed to rate booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking rated successfully", booking)
}
