package handler

import (
	"context"

	"home-services-backend/internal/delivery/dto"
	"home-services-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockBookingUsecase struct {
	mock.Mock
}

func (m *mockBookingUsecase) CreateBooking(ctx context.Context, who entity.Identity, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	args := m.Called(who, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookingResponse), args.Error(1)
}

func (m *mockBookingUsecase) GetBooking(ctx context.Context, who entity.Identity, id uuid.UUID) (*dto.BookingResponse, error) {
	args := m.Called(who, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookingResponse), args.Error(1)
}

func (m *mockBookingUsecase) GetMyBookings(ctx context.Context, who entity.Identity, status string) (*dto.BookingListResponse, error) {
	args := m.Called(who, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookingListResponse), args.Error(1)
}

func (m *mockBookingUsecase) GetStats(ctx context.Context, who entity.Identity) (*dto.BookingStatsResponse, error) {
	args := m.Called(who)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookingStatsResponse), args.Error(1)
}

func (m *mockBookingUsecase) UpdateStatus(ctx context.Context, who entity.Identity, id uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	args := m.Called(who, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookingResponse), args.Error(1)
}

func (m *mockBookingUsecase) CancelBooking(ctx context.Context, who entity.Identity, id uuid.UUID) (*dto.BookingResponse, error) {
	args := m.Called(who, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookingResponse), args.Error(1)
}

func (m *mockBookingUsecase) RateBooking(ctx context.Context, who entity.Identity, id uuid.UUID, req *dto.RateBookingRequest) (*dto.BookingResponse, error) {
	args := m.Called(who, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookingResponse), args.Error(1)
}

type mockPaymentUsecase struct {
	mock.Mock
}

func (m *mockPaymentUsecase) CreatePaymentIntent(ctx context.Context, who entity.Identity, req *dto.CreatePaymentRequest) (*dto.PaymentIntentResponse, error) {
	args := m.Called(who, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaymentIntentResponse), args.Error(1)
}

func (m *mockPaymentUsecase) ConfirmPayment(ctx context.Context, who entity.Identity, req *dto.ConfirmPaymentRequest) (*dto.ConfirmPaymentResult, error) {
	args := m.Called(who, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConfirmPaymentResult), args.Error(1)
}

func (m *mockPaymentUsecase) GetMyPayments(ctx context.Context, who entity.Identity) (*dto.PaymentListResponse, error) {
	args := m.Called(who)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaymentListResponse), args.Error(1)
}

func (m *mockPaymentUsecase) GetBookingPayment(ctx context.Context, who entity.Identity, bookingID uuid.UUID) (*dto.BookingPaymentResponse, error) {
	args := m.Called(who, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookingPaymentResponse), args.Error(1)
}

type mockServiceUsecase struct {
	mock.Mock
}

func (m *mockServiceUsecase) ListServices(ctx context.Context, query dto.ServiceListQuery) (*dto.ServiceListResponse, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ServiceListResponse), args.Error(1)
}

func (m *mockServiceUsecase) GetService(ctx context.Context, id int64) (*dto.ServiceResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ServiceResponse), args.Error(1)
}

func (m *mockServiceUsecase) CreateService(ctx context.Context, who entity.Identity, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	args := m.Called(who, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ServiceResponse), args.Error(1)
}

func (m *mockServiceUsecase) UpdateService(ctx context.Context, who entity.Identity, id int64, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	args := m.Called(who, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ServiceResponse), args.Error(1)
}

func (m *mockServiceUsecase) DeleteService(ctx context.Context, who entity.Identity, id int64) error {
	args := m.Called(who, id)
	return args.Error(0)
}

func (m *mockServiceUsecase) GetMyServices(ctx context.Context, who entity.Identity) ([]dto.ServiceResponse, error) {
	args := m.Called(who)
	return args.Get(0).([]dto.ServiceResponse), args.Error(1)
}

func (m *mockServiceUsecase) GetCategories() []dto.CategoryResponse {
	args := m.Called()
	return args.Get(0).([]dto.CategoryResponse)
}

func (m *mockServiceUsecase) GetStats(ctx context.Context) (*dto.ServiceStatsResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ServiceStatsResponse), args.Error(1)
}
