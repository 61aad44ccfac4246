package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

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

type PaymentUsecase interface {
	CreatePaymentIntent(ctx context.Context, who entity.Identity, req *dto.CreatePaymentRequest) (*dto.PaymentIntentResponse, error)
	ConfirmPayment(ctx context.Context, who entity.Identity, req *dto.ConfirmPaymentRequest) (*dto.ConfirmPaymentResult, error)
	GetMyPayments(ctx context.Context, who entity.Identity) (*dto.PaymentListResponse, error)
	GetBookingPayment(ctx context.Context, who entity.Identity, bookingID uuid.UUID) (*dto.BookingPaymentResponse, error)
}

type paymentUsecase struct {
	tx           repository.Transactor
	log          *logrus.Logger
	paymentRepo  repository.PaymentRepository
	bookingRepo  repository.BookingRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewPaymentUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	auditService service.AuditService,
) PaymentUsecase {
	return &paymentUsecase{
		tx:           tx,
		log:          log,
		paymentRepo:  paymentRepo,
		bookingRepo:  bookingRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

// CreatePaymentIntent opens a processing payment for the full booking amount.
// Earlier failed attempts on the booking are discarded. No gateway is involved.
func (u *paymentUsecase) CreatePaymentIntent(ctx context.Context, who entity.Identity, req *dto.CreatePaymentRequest) (*dto.PaymentIntentResponse, error) {
	method := entity.DefaultPaymentMethod
	if req.PaymentMethod != "" {
		method = entity.PaymentMethod(req.PaymentMethod)
	}
	if !method.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	var payment *entity.Payment
	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		booking, err := u.bookingRepo.FindByIDForUpdate(tx, req.BookingID)
		if err != nil {
			u.log.Warnf("Failed to lock booking %s: %+v", req.BookingID, err)
			return err
		}
		if booking == nil {
			return ErrBookingNotFound
		}
		if err := policy.Authorize(who, policy.ActionPaymentCreate, policy.ForBooking(booking)); err != nil {
			return err
		}
		if booking.IsCancelled() {
			return ErrBookingNotPayable
		}

		paid, err := u.paymentRepo.ExistsWithStatus(tx, booking.ID, entity.PaymentStatusSuccess)
		if err != nil {
			u.log.Warnf("Failed to check payments of booking %s: %+v", booking.ID, err)
			return err
		}
		if paid {
			return ErrBookingAlreadyPaid
		}

		if _, err := u.paymentRepo.DeleteByStatus(tx, booking.ID, entity.PaymentStatusFailed); err != nil {
			u.log.Warnf("Failed to purge failed payments of booking %s: %+v", booking.ID, err)
			return err
		}

		payment = &entity.Payment{
			BookingID:     booking.ID,
			PaymentMethod: method,
			PaymentStatus: entity.PaymentStatusProcessing,
			Amount:        booking.TotalAmount,
			PaymentDate:   u.now(),
		}
		if err := u.paymentRepo.Create(tx, payment); err != nil {
			u.log.Warnf("Failed to create payment: %+v", err)
			return err
		}
		payment.Booking = *booking

		return u.auditService.LogCreate(ctx, tx, &who.UserID, entity.AuditActionPaymentCreate, "payment", payment.ID.String(),
			map[string]interface{}{
				"booking_id":     booking.ID,
				"payment_method": method,
				"amount":         payment.Amount.StringFixed(2),
			})
	})
	if err != nil {
		return nil, err
	}

	return &dto.PaymentIntentResponse{
		PaymentID: payment.ID,
		Amount:    payment.Amount.StringFixed(2),
		Payment:   *converter.PaymentToResponse(payment),
	}, nil
}

// ConfirmPayment settles a payment and confirms a still pending booking.
// Confirming a payment that already succeeded changes nothing and reports AlreadyConfirmed.
func (u *paymentUsecase) ConfirmPayment(ctx context.Context, who entity.Identity, req *dto.ConfirmPaymentRequest) (*dto.ConfirmPaymentResult, error) {
	var (
		payment          *entity.Payment
		alreadyConfirmed bool
	)

	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		found, err := u.paymentRepo.FindByID(tx, req.PaymentID)
		if err != nil {
			u.log.Warnf("Failed to find payment %s: %+v", req.PaymentID, err)
			return err
		}
		if found == nil {
			return ErrPaymentNotFound
		}
		if err := policy.Authorize(who, policy.ActionPaymentConfirm, policy.ForBooking(&found.Booking)); err != nil {
			return err
		}

		// Booking before payment, the same order intent creation and cancellation lock in.
		booking, err := u.bookingRepo.FindByIDForUpdate(tx, found.BookingID)
		if err != nil {
			u.log.Warnf("Failed to lock booking %s: %+v", found.BookingID, err)
			return err
		}
		if booking == nil {
			return ErrBookingNotFound
		}
		payment, err = u.paymentRepo.FindByIDForUpdate(tx, req.PaymentID)
		if err != nil {
			u.log.Warnf("Failed to lock payment %s: %+v", req.PaymentID, err)
			return err
		}
		if payment == nil {
			return ErrPaymentNotFound
		}
		payment.Booking = *booking

		if payment.IsSuccessful() {
			alreadyConfirmed = true
			return nil
		}
		if !payment.IsConfirmable() {
			return ErrPaymentNotConfirmable
		}

		transactionID := req.TransactionID
		if transactionID == "" {
			transactionID = generateTransactionID()
		}
		previous := payment.PaymentStatus
		payment.MarkSucceeded(transactionID, u.now())

		if err := u.paymentRepo.Update(tx, payment); err != nil {
			if database.IsUniqueViolation(err, "transaction_id") {
				return ErrTransactionIDInUse
			}
			if database.IsUniqueViolation(err, "success_per_booking") {
				return ErrBookingAlreadyPaid
			}
			u.log.Warnf("Failed to update payment %s: %+v", payment.ID, err)
			return err
		}

		if booking.IsPending() {
			if _, err := booking.TransitionTo(entity.BookingStatusConfirmed, u.now()); err != nil {
				return ErrInvalidStatusTransition
			}
			if err := u.bookingRepo.Update(tx, booking); err != nil {
				u.log.Warnf("Failed to confirm booking %s: %+v", booking.ID, err)
				return err
			}
			payment.Booking = *booking
		}

		return u.auditService.LogUpdate(ctx, tx, &who.UserID, entity.AuditActionPaymentConfirm, "payment", payment.ID.String(),
			map[string]interface{}{"payment_status": previous},
			map[string]interface{}{"payment_status": payment.PaymentStatus, "transaction_id": payment.TransactionID})
	})
	if err != nil {
		return nil, err
	}

	if !alreadyConfirmed {
		u.log.Infof("Payment confirmed: id=%s, booking=%s", payment.ID, payment.BookingID)
	}
	return &dto.ConfirmPaymentResult{
		Payment:          *converter.PaymentToResponse(payment),
		AlreadyConfirmed: alreadyConfirmed,
	}, nil
}

func (u *paymentUsecase) GetMyPayments(ctx context.Context, who entity.Identity) (*dto.PaymentListResponse, error) {
	payments, err := u.paymentRepo.FindByScope(u.tx.DB(ctx), entity.ScopeFor(who))
	if err != nil {
		u.log.Warnf("Failed to find payments for user %s: %+v", who.UserID, err)
		return nil, err
	}

	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}

// GetBookingPayment returns the latest payment of a booking; Payment is nil when none exists.
func (u *paymentUsecase) GetBookingPayment(ctx context.Context, who entity.Identity, bookingID uuid.UUID) (*dto.BookingPaymentResponse, error) {
	db := u.tx.DB(ctx)

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if err := policy.Authorize(who, policy.ActionPaymentViewByID, policy.ForBooking(booking)); err != nil {
		return nil, err
	}

	payment, err := u.paymentRepo.FindLatestByBookingID(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find payment of booking %s: %+v", bookingID, err)
		return nil, err
	}

	resp := &dto.BookingPaymentResponse{BookingID: bookingID}
	if payment != nil {
		payment.Booking = *booking
		resp.Payment = converter.PaymentToResponse(payment)
	}
	return resp, nil
}

// generateTransactionID generates a simulated gateway reference: DEMO-TXN-<10 hex>
func generateTransactionID() string {
	randomBytes := make([]byte, 5)
	rand.Read(randomBytes)
	return "DEMO-TXN-" + hex.EncodeToString(randomBytes)
}
