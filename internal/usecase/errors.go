package usecase

import "home-services-backend/pkg/apperror"

// Identity
var (
	ErrUsernameAlreadyExists = apperror.Validation("a user with that username already exists")
	ErrEmailAlreadyExists    = apperror.Validation("a user with that email already exists")
	ErrInvalidUserType       = apperror.Validation("user type must be customer or provider")
	ErrInvalidCredentials    = apperror.Unauthenticated("invalid username or password")
	ErrInactiveAccount       = apperror.Unauthenticated("user account is disabled")
	ErrInvalidToken          = apperror.Unauthenticated("invalid or expired token")
	ErrTokenRevoked          = apperror.Unauthenticated("token has been revoked")
	ErrUserNotFound          = apperror.NotFound("user not found")
)

// Service catalog
var (
	ErrServiceNotFound   = apperror.NotFound("service not found")
	ErrInvalidCategory   = apperror.Validation("invalid service category")
	ErrInvalidPrice      = apperror.Validation("price per hour must be greater than 0")
	ErrInvalidHourRange  = apperror.Validation("minimum hours cannot be greater than maximum hours")
	ErrInvalidHours      = apperror.Validation("hours must be between 1 and 24")
	ErrInvalidPriceQuery = apperror.Validation("min_price and max_price must be numbers")
)

// Booking ledger
var (
	ErrBookingNotFound          = apperror.NotFound("booking not found")
	ErrInvalidBookingDate       = apperror.Validation("invalid booking date, use YYYY-MM-DD")
	ErrBookingDateInPast        = apperror.Validation("booking date cannot be in the past")
	ErrBookingDateTooFar        = apperror.Validation("booking date is too far in advance")
	ErrInvalidTimeSlot          = apperror.Validation("invalid time slot")
	ErrServiceUnavailable       = apperror.Validation("this service is currently not available")
	ErrHoursOutOfRange          = apperror.Validation("hours requested is outside the service's allowed range")
	ErrSlotAlreadyBooked        = apperror.Validation("this time slot is already booked")
	ErrInvalidStatus            = apperror.Validation("invalid booking status")
	ErrInvalidStatusTransition  = apperror.Validation("invalid status transition")
	ErrRatingRequiresCompletion = apperror.Validation("rating and feedback can only be given when completing a booking")
	ErrBookingNotCompleted      = apperror.Validation("only completed bookings can be rated")
	ErrBookingAlreadyRated      = apperror.Validation("booking has already been rated")
	ErrBookingNotCancellable    = apperror.Validation("booking can no longer be cancelled")
)

// Payment ledger
var (
	ErrPaymentNotFound       = apperror.NotFound("payment not found")
	ErrInvalidPaymentMethod  = apperror.Validation("payment method must be card, upi or wallet")
	ErrBookingAlreadyPaid    = apperror.Validation("payment already exists for this booking")
	ErrBookingNotPayable     = apperror.Validation("cannot pay for a cancelled booking")
	ErrPaymentNotConfirmable = apperror.Validation("payment cannot be confirmed in its current status")
	ErrTransactionIDInUse    = apperror.Validation("transaction id is already in use")
)
