package usecase

import (
	"context"
	"testing"
	"time"

	"home-services-backend/internal/delivery/dto"
	"home-services-backend/internal/domain/entity"
	"home-services-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	*bookingFixture
	paymentUC *paymentUsecase
}

func newPaymentFixture() *paymentFixture {
	log, _ := test.NewNullLogger()
	b := newBookingFixture()
	uc := NewPaymentUsecase(b.tx, log, b.payments, b.bookings, b.audit).(*paymentUsecase)
	uc.now = func() time.Time { return fixedNow }
	return &paymentFixture{bookingFixture: b, paymentUC: uc}
}

func (f *paymentFixture) paymentFor(booking *entity.Booking, status entity.PaymentStatus) *entity.Payment {
	return &entity.Payment{
		ID:            uuid.New(),
		BookingID:     booking.ID,
		PaymentMethod: entity.PaymentMethodCard,
		PaymentStatus: status,
		Amount:        booking.TotalAmount,
		PaymentDate:   fixedNow,
		Booking:       *booking,
	}
}

func TestPaymentUsecase_CreatePaymentIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a processing payment for the booking total", func(t *testing.T) {
		f := newPaymentFixture()
		booking := f.bookingIn(entity.BookingStatusConfirmed)
		f.bookings.On("FindByIDForUpdate", booking.ID).Return(booking, nil)
		f.payments.On("ExistsWithStatus", booking.ID, entity.PaymentStatusSuccess).Return(false, nil)
		f.payments.On("DeleteByStatus", booking.ID, entity.PaymentStatusFailed).Return(int64(1), nil)
		f.payments.On("Create", mock.AnythingOfType("*entity.Payment")).Return(nil)
		f.audit.On("LogCreate", entity.AuditActionPaymentCreate, "payment", mock.Anything).Return(nil)

		resp, err := f.paymentUC.CreatePaymentIntent(ctx, f.customer, &dto.CreatePaymentRequest{BookingID: booking.ID})

		require.NoError(t, err)
		assert.Equal(t, "200.00", resp.Amount)
		assert.Equal(t, "processing", resp.Payment.PaymentStatus)
		assert.Equal(t, "upi", resp.Payment.PaymentMethod)
		assert.Equal(t, booking.BookingCode, resp.Payment.BookingCode)
		f.payments.AssertExpectations(t)
	})

	t.Run("a job completed before payment can still be paid", func(t *testing.T) {
		f := newPaymentFixture()
		booking := f.bookingIn(entity.BookingStatusCompleted)
		f.bookings.On("FindByIDForUpdate", booking.ID).Return(booking, nil)
		f.payments.On("ExistsWithStatus", booking.ID, entity.PaymentStatusSuccess).Return(false, nil)
		f.payments.On("DeleteByStatus", booking.ID, entity.PaymentStatusFailed).Return(int64(0), nil)
		f.payments.On("Create", mock.AnythingOfType("*entity.Payment")).Return(nil)
		f.audit.On("LogCreate", entity.AuditActionPaymentCreate, "payment", mock.Anything).Return(nil)

		resp, err := f.paymentUC.CreatePaymentIntent(ctx, f.customer, &dto.CreatePaymentRequest{BookingID: booking.ID})

		require.NoError(t, err)
		assert.Equal(t, "200.00", resp.Amount)
		assert.Equal(t, "processing", resp.Payment.PaymentStatus)
		assert.Equal(t, entity.BookingStatusCompleted, booking.Status)
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			name   string
			status entity.BookingStatus
			paid   bool
			err    error
		}{
			{"cancelled booking", entity.BookingStatusCancelled, false, ErrBookingNotPayable},
			{"completed and already paid", entity.BookingStatusCompleted, true, ErrBookingAlreadyPaid},
			{"already paid", entity.BookingStatusConfirmed, true, ErrBookingAlreadyPaid},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newPaymentFixture()
				booking := f.bookingIn(tt.status)
				f.bookings.On("FindByIDForUpdate", booking.ID).Return(booking, nil)
				f.payments.On("ExistsWithStatus", booking.ID, entity.PaymentStatusSuccess).Return(tt.paid, nil)

				_, err := f.paymentUC.CreatePaymentIntent(ctx, f.customer, &dto.CreatePaymentRequest{BookingID: booking.ID})

				assert.ErrorIs(t, err, tt.err)
				f.payments.AssertNotCalled(t, "Create", mock.Anything)
			})
		}
	})

	t.Run("only the booking's customer", func(t *testing.T) {
		f := newPaymentFixture()
		booking := f.bookingIn(entity.BookingStatusPending)
		f.bookings.On("FindByIDForUpdate", booking.ID).Return(booking, nil)
		other := entity.Identity{UserID: uuid.New(), Role: entity.RoleCustomer}

		_, err := f.paymentUC.CreatePaymentIntent(ctx, other, &dto.CreatePaymentRequest{BookingID: booking.ID})

		assert.Equal(t, apperror.KindPermission, apperror.KindOf(err))
	})

	t.Run("unknown method", func(t *testing.T) {
		f := newPaymentFixture()

		_, err := f.paymentUC.CreatePaymentIntent(ctx, f.customer, &dto.CreatePaymentRequest{BookingID: uuid.New(), PaymentMethod: "cash"})

		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
		assert.Zero(t, f.tx.Calls)
	})
}

func TestPaymentUsecase_ConfirmPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("settling a completed booking leaves its status alone", func(t *testing.T) {
		f := newPaymentFixture()
		booking := f.bookingIn(entity.BookingStatusCompleted)
		payment := f.paymentFor(booking, entity.PaymentStatusProcessing)
		f.payments.On("FindByID", payment.ID).Return(payment, nil)
		f.bookings.On("FindByIDForUpdate", booking.ID).Return(booking, nil)
		f.payments.On("FindByIDForUpdate", payment.ID).Return(payment, nil)
		f.payments.On("Update", payment).Return(nil)
		f.audit.On("LogUpdate", entity.AuditActionPaymentConfirm, "payment", payment.ID.String()).Return(nil)

		result, err := f.paymentUC.ConfirmPayment(ctx, f.customer, &dto.ConfirmPaymentRequest{PaymentID: payment.ID})

		require.NoError(t, err)
		assert.Equal(t, "success", result.Payment.PaymentStatus)
		assert.Equal(t, entity.BookingStatusCompleted, booking.Status)
		f.bookings.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("settles the payment and confirms a pending booking", func(t *testing.T) {
		f := newPaymentFixture()
		booking := f.bookingIn(entity.BookingStatusPending)
		payment := f.paymentFor(booking, entity.PaymentStatusProcessing)
		f.payments.On("FindByID", payment.ID).Return(payment, nil)
		f.bookings.On("FindByIDForUpdate", booking.ID).Return(booking, nil)
		f.payments.On("FindByIDForUpdate", payment.ID).Return(payment, nil)
		f.payments.On("Update", payment).Return(nil)
		f.bookings.On("Update", booking).Return(nil)
		f.audit.On("LogUpdate", entity.AuditActionPaymentConfirm, "payment", payment.ID.String()).Return(nil)

		result, err := f.paymentUC.ConfirmPayment(ctx, f.customer, &dto.ConfirmPaymentRequest{PaymentID: payment.ID})

		require.NoError(t, err)
		assert.False(t, result.AlreadyConfirmed)
		assert.Equal(t, "success", result.Payment.PaymentStatus)
		require.NotNil(t, result.Payment.TransactionID)
		assert.Regexp(t, `^DEMO-TXN-[0-9a-f]{10}$`, *result.Payment.TransactionID)
		require.NotNil(t, result.Payment.ProcessedAt)
		assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
		assert.Equal(t, &fixedNow, booking.ConfirmedAt)
	})

	t.Run("second confirmation is a no-op", func(t *testing.T) {
		f := newPaymentFixture()
		booking := f.bookingIn(entity.BookingStatusConfirmed)
		payment := f.paymentFor(booking, entity.PaymentStatusProcessing)
		f.payments.On("FindByID", payment.ID).Return(payment, nil)
		f.bookings.On("FindByIDForUpdate", booking.ID).Return(booking, nil)
		f.payments.On("FindByIDForUpdate", payment.ID).Return(payment, nil)
		f.payments.On("Update", payment).Return(nil).Once()
		f.audit.On("LogUpdate", entity.AuditActionPaymentConfirm, "payment", payment.ID.String()).Return(nil).Once()

		req := &dto.ConfirmPaymentRequest{PaymentID: payment.ID, TransactionID: "GW-1001"}
		first, err := f.paymentUC.ConfirmPayment(ctx, f.customer, req)
		require.NoError(t, err)
		second, err := f.paymentUC.ConfirmPayment(ctx, f.customer, &dto.ConfirmPaymentRequest{PaymentID: payment.ID, TransactionID: "GW-2002"})
		require.NoError(t, err)

		assert.False(t, first.AlreadyConfirmed)
		assert.True(t, second.AlreadyConfirmed)
		assert.Equal(t, "GW-1001", *second.Payment.TransactionID)
		assert.Equal(t, first.Payment.ProcessedAt, second.Payment.ProcessedAt)
		f.payments.AssertNumberOfCalls(t, "Update", 1)
		f.bookings.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("failed payments are not confirmable", func(t *testing.T) {
		f := newPaymentFixture()
		booking := f.bookingIn(entity.BookingStatusPending)
		payment := f.paymentFor(booking, entity.PaymentStatusFailed)
		f.payments.On("FindByID", payment.ID).Return(payment, nil)
		f.bookings.On("FindByIDForUpdate", booking.ID).Return(booking, nil)
		f.payments.On("FindByIDForUpdate", payment.ID).Return(payment, nil)

		_, err := f.paymentUC.ConfirmPayment(ctx, f.customer, &dto.ConfirmPaymentRequest{PaymentID: payment.ID})

		assert.ErrorIs(t, err, ErrPaymentNotConfirmable)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})

	t.Run("duplicate transaction id", func(t *testing.T) {
		f := newPaymentFixture()
		booking := f.bookingIn(entity.BookingStatusConfirmed)
		payment := f.paymentFor(booking, entity.PaymentStatusProcessing)
		f.payments.On("FindByID", payment.ID).Return(payment, nil)
		f.bookings.On("FindByIDForUpdate", booking.ID).Return(booking, nil)
		f.payments.On("FindByIDForUpdate", payment.ID).Return(payment, nil)
		f.payments.On("Update", payment).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uniq_payments_transaction_id"})

		_, err := f.paymentUC.ConfirmPayment(ctx, f.customer, &dto.ConfirmPaymentRequest{PaymentID: payment.ID, TransactionID: "GW-1"})

		assert.ErrorIs(t, err, ErrTransactionIDInUse)
	})

	t.Run("other customers are refused", func(t *testing.T) {
		f := newPaymentFixture()
		booking := f.bookingIn(entity.BookingStatusPending)
		payment := f.paymentFor(booking, entity.PaymentStatusProcessing)
		f.payments.On("FindByID", payment.ID).Return(payment, nil)
		other := entity.Identity{UserID: uuid.New(), Role: entity.RoleCustomer}

		_, err := f.paymentUC.ConfirmPayment(ctx, other, &dto.ConfirmPaymentRequest{PaymentID: payment.ID})

		assert.Equal(t, apperror.KindPermission, apperror.KindOf(err))
		f.bookings.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything)
	})

	t.Run("unknown payment", func(t *testing.T) {
		f := newPaymentFixture()
		id := uuid.New()
		f.payments.On("FindByID", id).Return(nil, nil)

		_, err := f.paymentUC.ConfirmPayment(ctx, f.customer, &dto.ConfirmPaymentRequest{PaymentID: id})
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}

func TestPaymentUsecase_GetBookingPayment(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture()
	booking := f.bookingIn(entity.BookingStatusPending)
	f.bookings.On("FindByID", booking.ID).Return(booking, nil)
	f.payments.On("FindLatestByBookingID", booking.ID).Return(nil, nil)

	resp, err := f.paymentUC.GetBookingPayment(ctx, f.provider, booking.ID)
	require.NoError(t, err)
	assert.Nil(t, resp.Payment)

	_, err = f.paymentUC.GetBookingPayment(ctx, entity.Identity{UserID: uuid.New(), Role: entity.RoleProvider}, booking.ID)
	assert.Equal(t, apperror.KindPermission, apperror.KindOf(err))
}

// A full happy path: book, confirm, pay, complete with a rating.
func TestBookingLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture()
	bookingID := uuid.New()
	paymentID := uuid.New()

	var booking *entity.Booking
	f.services.On("FindByID", int64(7)).Return(f.service, nil)
	f.bookings.On("SlotTaken", int64(7), mock.AnythingOfType("time.Time"), "10:00").Return(false, nil)
	f.bookings.On("Create", mock.AnythingOfType("*entity.Booking")).Run(func(args mock.Arguments) {
		booking = args.Get(0).(*entity.Booking)
		booking.ID = bookingID
	}).Return(nil)
	f.audit.On("LogCreate", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.audit.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	created, err := f.usecase.CreateBooking(ctx, f.customer, createRequest("2026-03-02"))
	require.NoError(t, err)
	assert.Equal(t, "200.00", created.TotalAmount)
	assert.Equal(t, "pending", created.Status)

	f.bookings.On("FindByIDForUpdate", bookingID).Return(booking, nil)
	f.bookings.On("Update", booking).Return(nil)

	confirmed, err := f.usecase.UpdateStatus(ctx, f.provider, bookingID, &dto.UpdateBookingStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.NotNil(t, confirmed.ConfirmedAt)

	var payment *entity.Payment
	f.payments.On("ExistsWithStatus", bookingID, entity.PaymentStatusSuccess).Return(false, nil)
	f.payments.On("DeleteByStatus", bookingID, entity.PaymentStatusFailed).Return(int64(0), nil)
	f.payments.On("Create", mock.AnythingOfType("*entity.Payment")).Run(func(args mock.Arguments) {
		payment = args.Get(0).(*entity.Payment)
		payment.ID = paymentID
	}).Return(nil)

	intent, err := f.paymentUC.CreatePaymentIntent(ctx, f.customer, &dto.CreatePaymentRequest{BookingID: bookingID, PaymentMethod: "card"})
	require.NoError(t, err)
	assert.Equal(t, "processing", intent.Payment.PaymentStatus)

	f.payments.On("FindByID", paymentID).Return(payment, nil)
	f.payments.On("FindByIDForUpdate", paymentID).Return(payment, nil)
	f.payments.On("Update", payment).Return(nil)

	result, err := f.paymentUC.ConfirmPayment(ctx, f.customer, &dto.ConfirmPaymentRequest{PaymentID: paymentID})
	require.NoError(t, err)
	assert.Equal(t, "success", result.Payment.PaymentStatus)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)

	rating := 5
	f.services.On("IncrementTotalBookings", int64(7)).Return(nil).Once()
	f.bookings.On("AverageRating", int64(7)).Return(decimal.NullDecimal{Decimal: decimal.NewFromInt(5), Valid: true}, nil)
	f.services.On("UpdateRating", int64(7), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(5))
	})).Return(nil).Once()

	completed, err := f.usecase.UpdateStatus(ctx, f.provider, bookingID,
		&dto.UpdateBookingStatusRequest{Status: "completed", Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
	f.services.AssertExpectations(t)
}

