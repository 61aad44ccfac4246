package handler

import (
	"net/http"
	"strconv"

	"home-services-backend/internal/delivery/dto"
	"home-services-backend/internal/usecase"
	"home-services-backend/pkg/response"
	"home-services-backend/pkg/validator"
)

type ServiceHandler struct {
	serviceUsecase usecase.ServiceUsecase
	validator      *validator.CustomValidator
}

func NewServiceHandler(serviceUsecase usecase.ServiceUsecase, validator *validator.CustomValidator) *ServiceHandler {
	return &ServiceHandler{
		serviceUsecase: serviceUsecase,
		validator:      validator,
	}
}

// ListServices handles the public catalog
// @Summary List available services
// @Tags Services
// @Produce json
// @Param category query string false "Category"
// @Param min_price query string false "Minimum price per hour"
// @Param max_price query string false "Maximum price per hour"
// @Param search query string false "Free text search"
// @Param ordering query string false "Comma separated ordering, - prefix for descending"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /services/ [get]
func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.serviceUsecase.ListServices(r.Context(), dto.ServiceListQuery{
		Category: q.Get("category"),
		MinPrice: q.Get("min_price"),
		MaxPrice: q.Get("max_price"),
		Search:   q.Get("search"),
		Ordering: q.Get("ordering"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		writeError(w, err, "Failed to get services")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Services retrieved successfully", result.Services,
		response.NewMeta(result.Page, result.Limit, result.Total))
}

func (h *ServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Var(w, r, "id", "Invalid service ID")
	if !ok {
		return
	}

	svc, err := h.serviceUsecase.GetService(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get service")
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", svc)
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	svc, err := h.serviceUsecase.CreateService(r.Context(), who, &req)
	if err != nil {
		writeError(w, err, "Failed to create service")
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", svc)
}

func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}
	id, ok := int64Var(w, r, "id", "Invalid service ID")
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if !bindJSON(w, r, h.validator, &req) {
		return
	}

	svc, err := h.serviceUsecase.UpdateService(r.Context(), who, id, &req)
	if err != nil {
		writeError(w, err, "Failed to update service")
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", svc)
}

func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}
	id, ok := int64Var(w, r, "id", "Invalid service ID")
	if !ok {
		return
	}

	if err := h.serviceUsecase.DeleteService(r.Context(), who, id); err != nil {
		writeError(w, err, "Failed to delete service")
		return
	}

	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}

func (h *ServiceHandler) GetMyServices(w http.ResponseWriter, r *http.Request) {
	who, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	services, err := h.serviceUsecase.GetMyServices(r.Context(), who)
	if err != nil {
		writeError(w, err, "Failed to get services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *ServiceHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Categories retrieved successfully", h.serviceUsecase.GetCategories())
}

func (h *ServiceHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serviceUsecase.GetStats(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get service stats")
		return
	}

	response.Success(w, http.StatusOK, "Service stats retrieved successfully", stats)
}
