package repository

import (
	"errors"
	"strings"

	"home-services-backend/internal/domain/entity"
	domainRepo "home-services-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// serviceOrderColumns whitelists the columns the catalog may be sorted by.
var serviceOrderColumns = map[string]string{
	"created_at":     "services.created_at",
	"price_per_hour": "services.price_per_hour",
	"rating":         "services.rating",
	"total_bookings": "services.total_bookings",
}

// likeEscaper makes user input match literally inside a LIKE pattern.
// Postgres treats backslash as the default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type serviceRepository struct{}

func NewServiceRepository() domainRepo.ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) Create(db *gorm.DB, service *entity.Service) error {
	return db.Omit("Provider").Create(service).Error
}

func (r *serviceRepository) Update(db *gorm.DB, service *entity.Service) error {
	return db.Model(service).Select(
		"name", "description", "category", "price_per_hour", "is_available",
		"minimum_hours", "maximum_hours", "service_area",
	).Updates(service).Error
}

func (r *serviceRepository) Delete(db *gorm.DB, id int64) error {
	return db.Delete(&entity.Service{}, id).Error
}

func (r *serviceRepository) FindByID(db *gorm.DB, id int64) (*entity.Service, error) {
	var service entity.Service
	err := db.Preload("Provider").Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) FindAvailable(db *gorm.DB, filter entity.ServiceFilter) ([]entity.Service, int64, error) {
	query := db.Model(&entity.Service{}).Where("services.is_available = ?", true)

	if filter.Category != "" {
		query = query.Where("services.category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("services.price_per_hour >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("services.price_per_hour <= ?", *filter.MaxPrice)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where(
			"services.name ILIKE ? OR services.description ILIKE ? OR services.category ILIKE ? OR services.service_area ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, field := range filter.OrderBy {
		direction := "ASC"
		if strings.HasPrefix(field, "-") {
			direction = "DESC"
			field = strings.TrimPrefix(field, "-")
		}
		if column, ok := serviceOrderColumns[field]; ok {
			query = query.Order(column + " " + direction)
		}
	}

	var services []entity.Service
	err := query.Order("services.id ASC").
		Preload("Provider").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&services).Error
	if err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

func (r *serviceRepository) FindByProviderID(db *gorm.DB, providerID uuid.UUID) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

type serviceStatsRow struct {
	TotalServices  int64
	TotalProviders int64
	AveragePrice   decimal.Decimal
}

func (r *serviceRepository) GetStats(db *gorm.DB) (*entity.ServiceStats, error) {
	var row serviceStatsRow
	err := db.Model(&entity.Service{}).
		Select("COUNT(*) AS total_services, COUNT(DISTINCT provider_id) AS total_providers, COALESCE(AVG(price_per_hour), 0) AS average_price").
		Where("is_available = ?", true).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &entity.ServiceStats{
		TotalServices:  row.TotalServices,
		TotalProviders: row.TotalProviders,
		AveragePrice:   row.AveragePrice.Round(2),
	}, nil
}

func (r *serviceRepository) IncrementTotalBookings(db *gorm.DB, id int64) error {
	return db.Model(&entity.Service{}).
		Where("id = ?", id).
		UpdateColumn("total_bookings", gorm.Expr("total_bookings + ?", 1)).Error
}

func (r *serviceRepository) UpdateRating(db *gorm.DB, id int64, rating decimal.Decimal) error {
	return db.Model(&entity.Service{}).
		Where("id = ?", id).
		UpdateColumn("rating", rating).Error
}
