package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryCleaning        Category = "cleaning"
	CategoryPlumbing        Category = "plumbing"
	CategoryElectrical      Category = "electrical"
	CategoryCarpentry       Category = "carpentry"
	CategoryPainting        Category = "painting"
	CategoryGardening       Category = "gardening"
	CategoryApplianceRepair Category = "appliance_repair"
	CategoryMoving          Category = "moving"
	CategoryPestControl     Category = "pest_control"
	CategoryOther           Category = "other"
)

// CategoryOption is a category value with its display label.
type CategoryOption struct {
	Value Category
	Label string
}

// Categories lists every category in display order.
var Categories = []CategoryOption{
	{CategoryCleaning, "Cleaning"},
	{CategoryPlumbing, "Plumbing"},
	{CategoryElectrical, "Electrical"},
	{CategoryCarpentry, "Carpentry"},
	{CategoryPainting, "Painting"},
	{CategoryGardening, "Gardening"},
	{CategoryApplianceRepair, "Appliance Repair"},
	{CategoryMoving, "Moving & Packing"},
	{CategoryPestControl, "Pest Control"},
	{CategoryOther, "Other"},
}

func (c Category) IsValid() bool {
	for _, option := range Categories {
		if option.Value == c {
			return true
		}
	}
	return false
}

func (c Category) Label() string {
	for _, option := range Categories {
		if option.Value == c {
			return option.Label
		}
	}
	return string(c)
}

const (
	MinServiceHours = 1
	MaxServiceHours = 24
)

// Service is a provider-owned offering. Rating and TotalBookings are derived from bookings.
type Service struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProviderID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"provider_id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	Category      Category        `gorm:"type:varchar(20);not null;default:'other';index" json:"category"`
	PricePerHour  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_hour"`
	IsAvailable   bool            `gorm:"not null;index" json:"is_available"`
	MinimumHours  int             `gorm:"not null;default:1" json:"minimum_hours"`
	MaximumHours  int             `gorm:"not null;default:8" json:"maximum_hours"`
	ServiceArea   *string         `gorm:"type:varchar(200)" json:"service_area,omitempty"`
	Rating        decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`
	TotalBookings int             `gorm:"not null;default:0" json:"total_bookings"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Provider User `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

func (Service) TableName() string {
	return "services"
}

// AcceptsHours reports whether hours lies within the service's booking bounds.
func (s *Service) AcceptsHours(hours int) bool {
	return hours >= s.MinimumHours && hours <= s.MaximumHours
}

// QuoteFor returns the price of booking the service for the given number of hours.
func (s *Service) QuoteFor(hours int) decimal.Decimal {
	return s.PricePerHour.Mul(decimal.NewFromInt(int64(hours)))
}

// ServiceFilter narrows the public catalog listing.
type ServiceFilter struct {
	Category Category
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
	// OrderBy holds whitelisted column names, "-" prefixed for descending.
	OrderBy []string
	Limit   int
	Offset  int
}

// ServiceStats aggregates the available catalog.
type ServiceStats struct {
	TotalServices  int64           `json:"total_services"`
	TotalProviders int64           `json:"total_providers"`
	AveragePrice   decimal.Decimal `json:"average_price"`
}
