package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"home-services-backend/config"
	"home-services-backend/internal/delivery/http/handler"
	"home-services-backend/internal/delivery/http/middleware"
	"home-services-backend/internal/mocks"
	"home-services-backend/pkg/jwt"
	"home-services-backend/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

// Usecases are nil: every request here is answered before a handler needs one.
func newTestRouter() http.Handler {
	log, _ := test.NewNullLogger()
	return newTestRouterWithLogger(log)
}

func newTestRouterWithLogger(log *logrus.Logger) http.Handler {
	v := validator.NewValidator()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})

	return NewRouter(
		handler.NewAuthHandler(nil, v),
		handler.NewAuditLogHandler(nil),
		handler.NewServiceHandler(nil, v),
		handler.NewBookingHandler(nil, v),
		handler.NewPaymentHandler(nil, v),
		middleware.NewAuthMiddleware(jwtService, new(mocks.TokenStore), log),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	).Setup()
}

func TestRouter(t *testing.T) {
	router := newTestRouter()
	bookingID := "3f1c2a4e-8b7d-4c6a-9e5f-0a1b2c3d4e5f"

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/v1/health", http.StatusOK},
		{http.MethodGet, "/api/v1/users/profile/", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/users/activity/", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/services/create/", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/services/my/", http.StatusUnauthorized},
		{http.MethodPut, "/api/v1/services/12/", http.StatusUnauthorized},
		{http.MethodDelete, "/api/v1/services/12/", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/services/abc/", http.StatusNotFound},
		{http.MethodPost, "/api/v1/bookings/", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/bookings/my/", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/bookings/stats/", http.StatusUnauthorized},
		{http.MethodPut, "/api/v1/bookings/" + bookingID + "/status/", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/bookings/" + bookingID + "/cancel/", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/bookings/not-a-uuid/", http.StatusNotFound},
		{http.MethodPost, "/api/v1/payments/confirm/", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/payments/booking/" + bookingID + "/", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/users/login/", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRouter_Preflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/bookings/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, X-Request-ID")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Request-ID")
	assert.Equal(t, "X-Request-ID", rec.Header().Get("Access-Control-Expose-Headers"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_UnmatchedRequestsAreLoggedWithCORS(t *testing.T) {
	log, hook := test.NewNullLogger()
	router := newTestRouterWithLogger(log)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nowhere/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, http.StatusNotFound, entry.Data["status"])
		assert.Equal(t, "/api/v1/nowhere/", entry.Data["path"])
	}
}
