package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"home-services-backend/internal/delivery/http/middleware"
	"home-services-backend/internal/domain/entity"
	"home-services-backend/pkg/response"
	"home-services-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// writeError answers err with the status of its kind. Internal errors get fallback instead of details.
func writeError(w http.ResponseWriter, err error, fallback string) {
	response.AppError(w, err, fallback)
}

// bindJSON decodes and validates the request body, answering 400 itself on failure.
func bindJSON(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := v.Validate(dst); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}

func currentIdentity(w http.ResponseWriter, r *http.Request) (entity.Identity, bool) {
	who, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
	}
	return who, ok
}

func uuidVar(w http.ResponseWriter, r *http.Request, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.Error(w, http.StatusBadRequest, message, nil)
		return uuid.Nil, false
	}
	return id, true
}

func int64Var(w http.ResponseWriter, r *http.Request, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, message, nil)
		return 0, false
	}
	return id, true
}
