package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"home-services-backend/internal/converter"
	"home-services-backend/internal/delivery/dto"
	"home-services-backend/internal/domain/entity"
	"home-services-backend/internal/domain/policy"
	"home-services-backend/internal/domain/repository"
	"home-services-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	serviceStatsCacheKey = "service_stats"
	defaultServiceOrder  = "-rating,-total_bookings"
	defaultPageSize      = 10
	maxPageSize          = 100
)

var serviceOrderFields = map[string]bool{
	"created_at":     true,
	"price_per_hour": true,
	"rating":         true,
	"total_bookings": true,
}

type ServiceUsecase interface {
	ListServices(ctx context.Context, query dto.ServiceListQuery) (*dto.ServiceListResponse, error)
	GetService(ctx context.Context, id int64) (*dto.ServiceResponse, error)
	CreateService(ctx context.Context, who entity.Identity, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, who entity.Identity, id int64, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, who entity.Identity, id int64) error
	GetMyServices(ctx context.Context, who entity.Identity) ([]dto.ServiceResponse, error)
	GetCategories() []dto.CategoryResponse
	GetStats(ctx context.Context) (*dto.ServiceStatsResponse, error)
}

type serviceUsecase struct {
	tx           repository.Transactor
	log          *logrus.Logger
	serviceRepo  repository.ServiceRepository
	auditService service.AuditService
	cache        repository.Cache
	statsTTL     time.Duration
}

func NewServiceUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	auditService service.AuditService,
	cache repository.Cache,
	statsTTL time.Duration,
) ServiceUsecase {
	return &serviceUsecase{
		tx:           tx,
		log:          log,
		serviceRepo:  serviceRepo,
		auditService: auditService,
		cache:        cache,
		statsTTL:     statsTTL,
	}
}

func (u *serviceUsecase) ListServices(ctx context.Context, query dto.ServiceListQuery) (*dto.ServiceListResponse, error) {
	filter := entity.ServiceFilter{
		Category: entity.Category(query.Category),
		Search:   query.Search,
		OrderBy:  parseOrdering(query.Ordering),
	}
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	var err error
	if filter.MinPrice, err = parseOptionalDecimal(query.MinPrice); err != nil {
		return nil, ErrInvalidPriceQuery
	}
	if filter.MaxPrice, err = parseOptionalDecimal(query.MaxPrice); err != nil {
		return nil, ErrInvalidPriceQuery
	}

	page, limit := normalizePage(query.Page, query.Limit)
	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	services, total, err := u.serviceRepo.FindAvailable(u.tx.DB(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

func (u *serviceUsecase) GetService(ctx context.Context, id int64) (*dto.ServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(u.tx.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", id, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) CreateService(ctx context.Context, who entity.Identity, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if err := policy.Authorize(who, policy.ActionServiceCreate, policy.Resource{}); err != nil {
		return nil, err
	}

	price, err := parsePrice(req.PricePerHour)
	if err != nil {
		return nil, err
	}

	svc := &entity.Service{
		ProviderID:   who.UserID,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Category:     entity.CategoryOther,
		PricePerHour: price,
		IsAvailable:  true,
		MinimumHours: 1,
		MaximumHours: 8,
		ServiceArea:  req.ServiceArea,
	}
	if req.Category != "" {
		svc.Category = entity.Category(req.Category)
	}
	if req.IsAvailable != nil {
		svc.IsAvailable = *req.IsAvailable
	}
	if req.MinimumHours != nil {
		svc.MinimumHours = *req.MinimumHours
	}
	if req.MaximumHours != nil {
		svc.MaximumHours = *req.MaximumHours
	}
	if err := validateService(svc); err != nil {
		return nil, err
	}

	err = u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.serviceRepo.Create(tx, svc); err != nil {
			u.log.Warnf("Failed to create service: %+v", err)
			return err
		}
		return u.auditService.LogCreate(ctx, tx, &who.UserID, entity.AuditActionServiceCreate, "service", serviceKey(svc.ID), serviceSnapshot(svc))
	})
	if err != nil {
		return nil, err
	}

	u.invalidateStats(ctx)
	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) UpdateService(ctx context.Context, who entity.Identity, id int64, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	var svc *entity.Service

	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		svc, err = u.serviceRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find service %d: %+v", id, err)
			return err
		}
		if svc == nil {
			return ErrServiceNotFound
		}
		if err := policy.Authorize(who, policy.ActionServiceUpdate, policy.ForService(svc.ProviderID)); err != nil {
			return err
		}

		before := serviceSnapshot(svc)
		if err := applyServiceUpdate(svc, req); err != nil {
			return err
		}
		if err := validateService(svc); err != nil {
			return err
		}

		if err := u.serviceRepo.Update(tx, svc); err != nil {
			u.log.Warnf("Failed to update service %d: %+v", id, err)
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, &who.UserID, entity.AuditActionServiceUpdate, "service", serviceKey(svc.ID), before, serviceSnapshot(svc))
	})
	if err != nil {
		return nil, err
	}

	u.invalidateStats(ctx)
	return converter.ServiceToResponse(svc), nil
}

// DeleteService removes the service; its bookings and their payments go with it.
func (u *serviceUsecase) DeleteService(ctx context.Context, who entity.Identity, id int64) error {
	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		svc, err := u.serviceRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find service %d: %+v", id, err)
			return err
		}
		if svc == nil {
			return ErrServiceNotFound
		}
		if err := policy.Authorize(who, policy.ActionServiceDelete, policy.ForService(svc.ProviderID)); err != nil {
			return err
		}

		if err := u.serviceRepo.Delete(tx, id); err != nil {
			u.log.Warnf("Failed to delete service %d: %+v", id, err)
			return err
		}
		return u.auditService.LogDelete(ctx, tx, &who.UserID, entity.AuditActionServiceDelete, "service", serviceKey(id), serviceSnapshot(svc))
	})
	if err != nil {
		return err
	}

	u.invalidateStats(ctx)
	return nil
}

func (u *serviceUsecase) GetMyServices(ctx context.Context, who entity.Identity) ([]dto.ServiceResponse, error) {
	if err := policy.Authorize(who, policy.ActionServiceListOwn, policy.Resource{}); err != nil {
		return nil, err
	}

	services, err := u.serviceRepo.FindByProviderID(u.tx.DB(ctx), who.UserID)
	if err != nil {
		u.log.Warnf("Failed to list services of provider %s: %+v", who.UserID, err)
		return nil, err
	}
	return converter.ServicesToResponses(services), nil
}

func (u *serviceUsecase) GetCategories() []dto.CategoryResponse {
	return converter.CategoriesToResponses(entity.Categories)
}

// GetStats serves the catalog aggregate from cache when possible. Cache failures only degrade to a database read.
func (u *serviceUsecase) GetStats(ctx context.Context) (*dto.ServiceStatsResponse, error) {
	var cached dto.ServiceStatsResponse
	hit, err := u.cache.GetJSON(ctx, serviceStatsCacheKey, &cached)
	if err != nil {
		u.log.Warnf("Failed to read service stats cache: %+v", err)
	}
	if hit {
		return &cached, nil
	}

	stats, err := u.serviceRepo.GetStats(u.tx.DB(ctx))
	if err != nil {
		u.log.Warnf("Failed to compute service stats: %+v", err)
		return nil, err
	}

	resp := converter.ServiceStatsToResponse(stats)
	if err := u.cache.SetJSON(ctx, serviceStatsCacheKey, resp, u.statsTTL); err != nil {
		u.log.Warnf("Failed to cache service stats: %+v", err)
	}
	return resp, nil
}

func (u *serviceUsecase) invalidateStats(ctx context.Context) {
	if err := u.cache.Delete(ctx, serviceStatsCacheKey); err != nil {
		u.log.Warnf("Failed to invalidate service stats cache: %+v", err)
	}
}

func applyServiceUpdate(svc *entity.Service, req *dto.UpdateServiceRequest) error {
	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Category != nil {
		svc.Category = entity.Category(*req.Category)
	}
	if req.PricePerHour != nil {
		price, err := parsePrice(*req.PricePerHour)
		if err != nil {
			return err
		}
		svc.PricePerHour = price
	}
	if req.IsAvailable != nil {
		svc.IsAvailable = *req.IsAvailable
	}
	if req.MinimumHours != nil {
		svc.MinimumHours = *req.MinimumHours
	}
	if req.MaximumHours != nil {
		svc.MaximumHours = *req.MaximumHours
	}
	if req.ServiceArea != nil {
		svc.ServiceArea = req.ServiceArea
	}
	return nil
}

func validateService(svc *entity.Service) error {
	if !svc.Category.IsValid() {
		return ErrInvalidCategory
	}
	if !svc.PricePerHour.IsPositive() {
		return ErrInvalidPrice
	}
	for _, h := range []int{svc.MinimumHours, svc.MaximumHours} {
		if h < entity.MinServiceHours || h > entity.MaxServiceHours {
			return ErrInvalidHours
		}
	}
	if svc.MinimumHours > svc.MaximumHours {
		return ErrInvalidHourRange
	}
	return nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !price.IsPositive() {
		return decimal.Zero, ErrInvalidPrice
	}
	return price.Round(2), nil
}

func parseOptionalDecimal(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseOrdering keeps the whitelisted fields of a comma separated ordering, falling back to the default.
func parseOrdering(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		raw = defaultServiceOrder
	}

	var fields []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if serviceOrderFields[strings.TrimPrefix(part, "-")] {
			fields = append(fields, part)
		}
	}
	if len(fields) == 0 && raw != defaultServiceOrder {
		return parseOrdering(defaultServiceOrder)
	}
	return fields
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func serviceKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func serviceSnapshot(svc *entity.Service) map[string]interface{} {
	return map[string]interface{}{
		"name":           svc.Name,
		"category":       svc.Category,
		"price_per_hour": svc.PricePerHour.StringFixed(2),
		"is_available":   svc.IsAvailable,
		"minimum_hours":  svc.MinimumHours,
		"maximum_hours":  svc.MaximumHours,
	}
}
