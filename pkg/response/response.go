package response

import (
	"encoding/json"
	"net/http"

	"home-services-backend/pkg/apperror"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ErrorBody tells clients which class of failure they hit.
type ErrorBody struct {
	Code string `json:"code"`
}

// NewMeta builds pagination metadata; limit must be positive.
func NewMeta(page, limit int, total int64) *Meta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &Meta{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

func JSON(w http.ResponseWriter, statusCode int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{Success: true, Message: message, Data: data})
}

func SuccessWithMeta(w http.ResponseWriter, statusCode int, message string, data interface{}, meta *Meta) {
	JSON(w, statusCode, Response{Success: true, Message: message, Data: data, Meta: meta})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	JSON(w, statusCode, Response{Success: false, Message: message, Error: err})
}

// AppError answers err with the status of its apperror kind. Internal errors
// are answered with fallback so no storage or driver detail reaches the client.
func AppError(w http.ResponseWriter, err error, fallback string) {
	kind := apperror.KindOf(err)
	Error(w, kind.HTTPStatus(), apperror.MessageOf(err, fallback), ErrorBody{Code: kind.String()})
}

// ValidationError answers 400 with per-field messages.
func ValidationError(w http.ResponseWriter, fields map[string]string) {
	Error(w, http.StatusBadRequest, "Validation failed", fields)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message, ErrorBody{Code: apperror.KindUnauthenticated.String()})
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, ErrorBody{Code: apperror.KindInternal.String()})
}
