package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateServiceRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Description  string  `json:"description" validate:"required"`
	Category     string  `json:"category" validate:"omitempty,oneof=cleaning plumbing electrical carpentry painting gardening appliance_repair moving pest_control other"`
	PricePerHour string  `json:"price_per_hour" validate:"required"`
	IsAvailable  *bool   `json:"is_available"`
	MinimumHours *int    `json:"minimum_hours" validate:"omitempty,gte=1,lte=24"`
	MaximumHours *int    `json:"maximum_hours" validate:"omitempty,gte=1,lte=24"`
	ServiceArea  *string `json:"service_area" validate:"omitempty,max=200"`
}

// UpdateServiceRequest is a partial update; nil fields are left unchanged.
type UpdateServiceRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description  *string `json:"description" validate:"omitempty,min=1"`
	Category     *string `json:"category" validate:"omitempty,oneof=cleaning plumbing electrical carpentry painting gardening appliance_repair moving pest_control other"`
	PricePerHour *string `json:"price_per_hour"`
	IsAvailable  *bool   `json:"is_available"`
	MinimumHours *int    `json:"minimum_hours" validate:"omitempty,gte=1,lte=24"`
	MaximumHours *int    `json:"maximum_hours" validate:"omitempty,gte=1,lte=24"`
	ServiceArea  *string `json:"service_area" validate:"omitempty,max=200"`
}

// ServiceListQuery carries the catalog query string.
type ServiceListQuery struct {
	Category string
	MinPrice string
	MaxPrice string
	Search   string
	Ordering string
	Page     int
	Limit    int
}

// Response DTOs

type ServiceResponse struct {
	ID            int64        `json:"id"`
	Provider      *UserSummary `json:"provider,omitempty"`
	ProviderID    uuid.UUID    `json:"provider_id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	CategoryLabel string       `json:"category_display"`
	PricePerHour  string       `json:"price_per_hour"`
	IsAvailable   bool         `json:"is_available"`
	MinimumHours  int          `json:"minimum_hours"`
	MaximumHours  int          `json:"maximum_hours"`
	ServiceArea   *string      `json:"service_area,omitempty"`
	Rating        string       `json:"rating"`
	TotalBookings int          `json:"total_bookings"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

type CategoryResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ServiceStatsResponse struct {
	TotalServices  int64  `json:"total_services"`
	TotalProviders int64  `json:"total_providers"`
	AveragePrice   string `json:"average_price"`
}
