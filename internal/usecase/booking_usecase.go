package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"home-services-backend/config"
	"home-services-backend/internal/converter"
	"home-services-backend/internal/delivery/dto"
	"home-services-backend/internal/domain/entity"
	"home-services-backend/internal/domain/policy"
	"home-services-backend/internal/domain/repository"
	"home-services-backend/internal/infrastructure/database"
	"home-services-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, who entity.Identity, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetBooking(ctx context.Context, who entity.Identity, id uuid.UUID) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context, who entity.Identity, status string) (*dto.BookingListResponse, error)
	GetStats(ctx context.Context, who entity.Identity) (*dto.BookingStatsResponse, error)
	UpdateStatus(ctx context.Context, who entity.Identity, id uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, who entity.Identity, id uuid.UUID) (*dto.BookingResponse, error)
	RateBooking(ctx context.Context, who entity.Identity, id uuid.UUID, req *dto.RateBookingRequest) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	tx           repository.Transactor
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	serviceRepo  repository.ServiceRepository
	paymentRepo  repository.PaymentRepository
	auditService service.AuditService
	cfg          config.BookingConfig
	now          func() time.Time
}

func NewBookingUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	serviceRepo repository.ServiceRepository,
	paymentRepo repository.PaymentRepository,
	auditService service.AuditService,
	cfg config.BookingConfig,
) BookingUsecase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.CreateMaxAttempts < 1 {
		cfg.CreateMaxAttempts = 1
	}
	return &bookingUsecase{
		tx:           tx,
		log:          log,
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		paymentRepo:  paymentRepo,
		auditService: auditService,
		cfg:          cfg,
		now:          time.Now,
	}
}

// CreateBooking reserves a slot for the calling customer.
//
// Flow:
// 1. Check the caller is a customer and the date lies inside the booking window
// 2. In one transaction: load the service, check availability and hour bounds,
// pre-check the slot, insert the booking and its audit entry
// 3. A concurrent winner on the slot index surfaces as ErrSlotAlreadyBooked;
// booking code collisions, serialization failures and deadlocks rerun step 2
func (u *bookingUsecase) CreateBooking(ctx context.Context, who entity.Identity, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if err := policy.Authorize(who, policy.ActionBookingCreate, policy.Resource{}); err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(time.DateOnly, req.BookingDate, u.cfg.Location)
	if err != nil {
		return nil, ErrInvalidBookingDate
	}
	if err := u.checkBookingWindow(date); err != nil {
		return nil, err
	}
	if !entity.IsValidTimeSlot(req.TimeSlot) {
		return nil, ErrInvalidTimeSlot
	}

	var booking *entity.Booking
	for attempt := 1; ; attempt++ {
		booking, err = u.createOnce(ctx, who, req, date)
		if err == nil {
			break
		}
		if attempt >= u.cfg.CreateMaxAttempts || !isRetryableCreate(err) {
			return nil, err
		}
		u.log.Warnf("Retrying booking creation (attempt %d/%d): %+v", attempt, u.cfg.CreateMaxAttempts, err)
	}

	u.log.Infof("Booking created: id=%s, service=%d, date=%s, slot=%s, code=%s",
		booking.ID, booking.ServiceID, req.BookingDate, booking.TimeSlot, booking.BookingCode)
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) createOnce(ctx context.Context, who entity.Identity, req *dto.CreateBookingRequest, date time.Time) (*entity.Booking, error) {
	var booking *entity.Booking

	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		svc, err := u.serviceRepo.FindByID(tx, req.ServiceID)
		if err != nil {
			u.log.Warnf("Failed to find service %d: %+v", req.ServiceID, err)
			return err
		}
		if svc == nil {
			return ErrServiceNotFound
		}
		if !svc.IsAvailable {
			return ErrServiceUnavailable
		}
		if !svc.AcceptsHours(req.HoursRequested) {
			return ErrHoursOutOfRange
		}

		taken, err := u.bookingRepo.SlotTaken(tx, svc.ID, date, req.TimeSlot)
		if err != nil {
			u.log.Warnf("Failed to check slot availability: %+v", err)
			return err
		}
		if taken {
			return ErrSlotAlreadyBooked
		}

		booking = &entity.Booking{
			BookingCode:         generateBookingCode(date),
			CustomerID:          who.UserID,
			ServiceID:           svc.ID,
			BookingDate:         date,
			TimeSlot:            req.TimeSlot,
			HoursRequested:      req.HoursRequested,
			Status:              entity.BookingStatusPending,
			TotalAmount:         svc.QuoteFor(req.HoursRequested),
			SpecialInstructions: req.SpecialInstructions,
			CustomerAddress:     req.CustomerAddress,
			CustomerPhone:       req.CustomerPhone,
		}

		if err := u.bookingRepo.Create(tx, booking); err != nil {
			if database.IsUniqueViolation(err, "active_slot") {
				return ErrSlotAlreadyBooked
			}
			// the service was deleted after it was loaded
			if database.IsForeignKeyViolation(err, "fk_bookings_service") {
				return ErrServiceNotFound
			}
			if !isRetryableCreate(err) {
				u.log.Warnf("Failed to insert booking: %+v", err)
			}
			return err
		}
		booking.Service = *svc

		return u.auditService.LogCreate(ctx, tx, &who.UserID, entity.AuditActionBookingCreate, "booking", booking.ID.String(),
			map[string]interface{}{
				"booking_code": booking.BookingCode,
				"service_id":   booking.ServiceID,
				"booking_date": req.BookingDate,
				"time_slot":    booking.TimeSlot,
				"total_amount": booking.TotalAmount.StringFixed(2),
			})
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// checkBookingWindow accepts dates from today up to MaxAdvanceDays ahead, in the configured location.
func (u *bookingUsecase) checkBookingWindow(date time.Time) error {
	today := u.today()
	if date.Before(today) {
		return ErrBookingDateInPast
	}
	if date.After(today.AddDate(0, 0, u.cfg.MaxAdvanceDays)) {
		return ErrBookingDateTooFar
	}
	return nil
}

func (u *bookingUsecase) today() time.Time {
	y, m, d := u.now().In(u.cfg.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, u.cfg.Location)
}

// GetBooking hides bookings the caller takes no part in behind ErrBookingNotFound.
func (u *bookingUsecase) GetBooking(ctx context.Context, who entity.Identity, id uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.tx.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if err := policy.Authorize(who, policy.ActionBookingView, policy.ForBooking(booking)); err != nil {
		return nil, ErrBookingNotFound
	}
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) GetMyBookings(ctx context.Context, who entity.Identity, status string) (*dto.BookingListResponse, error) {
	filter := entity.BookingStatus(status)
	if filter != "" && !filter.IsValid() {
		return nil, ErrInvalidStatus
	}

	bookings, err := u.bookingRepo.FindByScope(u.tx.DB(ctx), entity.ScopeFor(who), filter)
	if err != nil {
		u.log.Warnf("Failed to find bookings for user %s: %+v", who.UserID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *bookingUsecase) GetStats(ctx context.Context, who entity.Identity) (*dto.BookingStatsResponse, error) {
	stats, err := u.bookingRepo.CountStats(u.tx.DB(ctx), entity.ScopeFor(who))
	if err != nil {
		u.log.Warnf("Failed to count bookings for user %s: %+v", who.UserID, err)
		return nil, err
	}
	return converter.BookingStatsToResponse(stats), nil
}

// UpdateStatus applies a provider's status change. The first completion bumps the
// service's booking counter and, with a rating, refreshes the service rating.
// The body is only judged once the caller is known to own the booking's service.
func (u *bookingUsecase) UpdateStatus(ctx context.Context, who entity.Identity, id uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	next := entity.BookingStatus(req.Status)

	var booking *entity.Booking
	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		booking, err = u.lockBooking(tx, id)
		if err != nil {
			return err
		}
		if err := policy.Authorize(who, policy.ActionBookingStatus, policy.ForBooking(booking)); err != nil {
			return err
		}
		if !next.IsValid() {
			return ErrInvalidStatus
		}
		if (req.Rating != nil || req.Feedback != nil) && next != entity.BookingStatusCompleted {
			return ErrRatingRequiresCompletion
		}

		previous := booking.Status
		completedNow, err := booking.TransitionTo(next, u.now())
		if err != nil {
			return ErrInvalidStatusTransition
		}
		if req.Rating != nil {
			booking.Rating = req.Rating
		}
		if req.Feedback != nil {
			booking.Feedback = req.Feedback
		}

		if err := u.bookingRepo.Update(tx, booking); err != nil {
			u.log.Warnf("Failed to update booking %s: %+v", id, err)
			return err
		}

		if completedNow {
			if err := u.serviceRepo.IncrementTotalBookings(tx, booking.ServiceID); err != nil {
				u.log.Warnf("Failed to increment bookings of service %d: %+v", booking.ServiceID, err)
				return err
			}
			if booking.IsRated() {
				if err := u.refreshServiceRating(tx, booking.ServiceID); err != nil {
					return err
				}
			}
		}

		return u.auditService.LogUpdate(ctx, tx, &who.UserID, entity.AuditActionBookingStatusUpdate, "booking", booking.ID.String(),
			map[string]interface{}{"status": previous},
			map[string]interface{}{"status": booking.Status, "rating": booking.Rating})
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Booking status updated: id=%s, status=%s", booking.ID, booking.Status)
	return converter.BookingToResponse(booking), nil
}

// CancelBooking cancels the caller's booking. A settled payment is refunded, open ones fail.
func (u *bookingUsecase) CancelBooking(ctx context.Context, who entity.Identity, id uuid.UUID) (*dto.BookingResponse, error) {
	var booking *entity.Booking
	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		booking, err = u.lockBooking(tx, id)
		if err != nil {
			return err
		}
		if err := policy.Authorize(who, policy.ActionBookingCancel, policy.ForBooking(booking)); err != nil {
			return err
		}

		previous := booking.Status
		if _, err := booking.TransitionTo(entity.BookingStatusCancelled, u.now()); err != nil {
			return ErrBookingNotCancellable
		}
		if err := u.bookingRepo.Update(tx, booking); err != nil {
			u.log.Warnf("Failed to cancel booking %s: %+v", id, err)
			return err
		}

		refunded, err := u.paymentRepo.TransitionStatus(tx, booking.ID,
			[]entity.PaymentStatus{entity.PaymentStatusSuccess}, entity.PaymentStatusRefunded)
		if err != nil {
			u.log.Warnf("Failed to refund payments of booking %s: %+v", id, err)
			return err
		}
		failed, err := u.paymentRepo.TransitionStatus(tx, booking.ID,
			[]entity.PaymentStatus{entity.PaymentStatusPending, entity.PaymentStatusProcessing}, entity.PaymentStatusFailed)
		if err != nil {
			u.log.Warnf("Failed to void payments of booking %s: %+v", id, err)
			return err
		}

		return u.auditService.LogUpdate(ctx, tx, &who.UserID, entity.AuditActionBookingCancel, "booking", booking.ID.String(),
			map[string]interface{}{"status": previous},
			map[string]interface{}{"status": booking.Status, "payments_refunded": refunded, "payments_failed": failed})
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Booking cancelled: id=%s", booking.ID)
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) RateBooking(ctx context.Context, who entity.Identity, id uuid.UUID, req *dto.RateBookingRequest) (*dto.BookingResponse, error) {
	var booking *entity.Booking
	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		booking, err = u.lockBooking(tx, id)
		if err != nil {
			return err
		}
		if err := policy.Authorize(who, policy.ActionBookingRate, policy.ForBooking(booking)); err != nil {
			return err
		}
		if !booking.IsCompleted() {
			return ErrBookingNotCompleted
		}
		if booking.IsRated() {
			return ErrBookingAlreadyRated
		}

		rating := req.Rating
		booking.Rating = &rating
		booking.Feedback = req.Feedback

		if err := u.bookingRepo.Update(tx, booking); err != nil {
			u.log.Warnf("Failed to rate booking %s: %+v", id, err)
			return err
		}
		if err := u.refreshServiceRating(tx, booking.ServiceID); err != nil {
			return err
		}

		return u.auditService.LogUpdate(ctx, tx, &who.UserID, entity.AuditActionBookingRate, "booking", booking.ID.String(),
			nil, map[string]interface{}{"rating": rating})
	})
	if err != nil {
		return nil, err
	}
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) lockBooking(tx *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	booking, err := u.bookingRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to lock booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// refreshServiceRating sets the service rating to the mean of its completed, rated bookings.
func (u *bookingUsecase) refreshServiceRating(tx *gorm.DB, serviceID int64) error {
	avg, err := u.bookingRepo.AverageRating(tx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to average ratings of service %d: %+v", serviceID, err)
		return err
	}
	if !avg.Valid {
		return nil
	}
	if err := u.serviceRepo.UpdateRating(tx, serviceID, avg.Decimal.Round(2)); err != nil {
		u.log.Warnf("Failed to update rating of service %d: %+v", serviceID, err)
		return err
	}
	return nil
}

func isRetryableCreate(err error) bool {
	return database.IsRetryable(err) || database.IsUniqueViolation(err, "booking_code")
}

// generateBookingCode generates a booking code: BK-YYYYMMDD-XXXXXX
func generateBookingCode(date time.Time) string {
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("BK-%s-%06X", date.Format("20060102"), randomBytes)
}
