package handler

import (
	"net/http"

	"home-services-backend/internal/usecase"
	"home-services-backend/pkg/response"
)

type AuditLogHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuditLogHandler(authUsecase usecase.AuthUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		authUsecase: authUsecase,
	}
}

// GetMyActivity lists the caller's most recent audit entries, newest first.
func (h *AuditLogHandler) GetMyActivity(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	activity, err := h.authUsecase.GetActivity(r.Context(), who)
	if err != nil {
		writeError(w, err, "Failed to get activity")
		return
	}

	response.Success(w, http.StatusOK, "Activity retrieved successfully", activity)
}
