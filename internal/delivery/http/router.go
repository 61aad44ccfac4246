package http

import (
	"net/http"

	"home-services-backend/internal/delivery/http/handler"
	"home-services-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

const uuidPattern = "[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}"

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	auditLogHandler   *handler.AuditLogHandler
	serviceHandler    *handler.ServiceHandler
	bookingHandler    *handler.BookingHandler
	paymentHandler    *handler.PaymentHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	auditLogHandler *handler.AuditLogHandler,
	serviceHandler *handler.ServiceHandler,
	bookingHandler *handler.BookingHandler,
	paymentHandler *handler.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		auditLogHandler:   auditLogHandler,
		serviceHandler:    serviceHandler,
		bookingHandler:    bookingHandler,
		paymentHandler:    paymentHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

// Setup registers every route and returns the router wrapped in logging and CORS.
// The wrapping sits outside mux so preflights and unmatched paths pass through both.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// User routes (public)
	users := api.PathPrefix("/users").Subrouter()
	users.HandleFunc("/register/", r.authHandler.Register).Methods(http.MethodPost)
	users.HandleFunc("/login/", r.authHandler.Login).Methods(http.MethodPost)
	users.HandleFunc("/refresh-token/", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// User routes (protected)
	usersProtected := api.PathPrefix("/users").Subrouter()
	usersProtected.Use(r.authMiddleware.Authenticate)
	usersProtected.HandleFunc("/logout/", r.authHandler.Logout).Methods(http.MethodPost)
	usersProtected.HandleFunc("/profile/", r.authHandler.Profile).Methods(http.MethodGet)
	usersProtected.HandleFunc("/activity/", r.auditLogHandler.GetMyActivity).Methods(http.MethodGet)

	// Service catalog: public reads, authenticated writes on the same paths
	services := api.PathPrefix("/services").Subrouter()
	services.HandleFunc("/", r.serviceHandler.ListServices).Methods(http.MethodGet)
	services.HandleFunc("/categories/", r.serviceHandler.GetCategories).Methods(http.MethodGet)
	services.HandleFunc("/stats/", r.serviceHandler.GetStats).Methods(http.MethodGet)
	services.Handle("/create/", r.protect(r.serviceHandler.CreateService)).Methods(http.MethodPost)
	services.Handle("/my/", r.protect(r.serviceHandler.GetMyServices)).Methods(http.MethodGet)
	services.HandleFunc("/{id:[0-9]+}/", r.serviceHandler.GetService).Methods(http.MethodGet)
	services.Handle("/{id:[0-9]+}/", r.protect(r.serviceHandler.UpdateService)).Methods(http.MethodPut)
	services.Handle("/{id:[0-9]+}/", r.protect(r.serviceHandler.DeleteService)).Methods(http.MethodDelete)

	// Bookings (protected)
	bookings := api.PathPrefix("/bookings").Subrouter()
	bookings.Use(r.authMiddleware.Authenticate)
	bookings.HandleFunc("/", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	bookings.HandleFunc("/my/", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)
	bookings.HandleFunc("/stats/", r.bookingHandler.GetStats).Methods(http.MethodGet)
	bookings.HandleFunc("/{id:"+uuidPattern+"}/", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	bookings.HandleFunc("/{id:"+uuidPattern+"}/status/", r.bookingHandler.UpdateStatus).Methods(http.MethodPut)
	bookings.HandleFunc("/{id:"+uuidPattern+"}/cancel/", r.bookingHandler.CancelBooking).Methods(http.MethodPost)
	bookings.HandleFunc("/{id:"+uuidPattern+"}/rate/", r.bookingHandler.RateBooking).Methods(http.MethodPost)

	// Payments (protected)
	payments := api.PathPrefix("/payments").Subrouter()
	payments.Use(r.authMiddleware.Authenticate)
	payments.HandleFunc("/create/", r.paymentHandler.CreatePaymentIntent).Methods(http.MethodPost)
	payments.HandleFunc("/confirm/", r.paymentHandler.ConfirmPayment).Methods(http.MethodPost)
	payments.HandleFunc("/my/", r.paymentHandler.GetMyPayments).Methods(http.MethodGet)
	payments.HandleFunc("/booking/{booking_id:"+uuidPattern+"}/", r.paymentHandler.GetBookingPayment).Methods(http.MethodGet)

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) protect(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(h)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
