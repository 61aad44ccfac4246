package converter

import (
	"home-services-backend/internal/delivery/dto"
	"home-services-backend/internal/domain/entity"
)

// ServiceToResponse converts a Service entity to ServiceResponse DTO
func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}

	return &dto.ServiceResponse{
		ID:            service.ID,
		Provider:      UserToSummary(&service.Provider),
		ProviderID:    service.ProviderID,
		Name:          service.Name,
		Description:   service.Description,
		Category:      string(service.Category),
		CategoryLabel: service.Category.Label(),
		PricePerHour:  service.PricePerHour.StringFixed(2),
		IsAvailable:   service.IsAvailable,
		MinimumHours:  service.MinimumHours,
		MaximumHours:  service.MaximumHours,
		ServiceArea:   service.ServiceArea,
		Rating:        service.Rating.StringFixed(2),
		TotalBookings: service.TotalBookings,
		CreatedAt:     service.CreatedAt,
		UpdatedAt:     service.UpdatedAt,
	}
}

func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i := range services {
		responses[i] = *ServiceToResponse(&services[i])
	}
	return responses
}

func CategoriesToResponses(options []entity.CategoryOption) []dto.CategoryResponse {
	responses := make([]dto.CategoryResponse, len(options))
	for i, option := range options {
		responses[i] = dto.CategoryResponse{Value: string(option.Value), Label: option.Label}
	}
	return responses
}

func ServiceStatsToResponse(stats *entity.ServiceStats) *dto.ServiceStatsResponse {
	return &dto.ServiceStatsResponse{
		TotalServices:  stats.TotalServices,
		TotalProviders: stats.TotalProviders,
		AveragePrice:   stats.AveragePrice.StringFixed(2),
	}
}
