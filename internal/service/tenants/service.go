package tenants

import (
	"context"
	"errors"
	"fmt"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	tenantRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/tenant"
)

// Service сервис-справочник тенантов
// Используется middleware для резолва тенанта из субдомена запроса
type Service struct {
	tenantRepo TenantRepository
	cache      TenantCache
	logger     Logger
}

// NewService создает новый экземпляр сервиса тенантов
// cache опционален, при nil резолв всегда идёт в БД
func NewService(tenantRepo TenantRepository, cache TenantCache, logger Logger) *Service {
	return &Service{
		tenantRepo: tenantRepo,
		cache:      cache,
		logger:     logger,
	}
}

// Resolve находит активного тенанта по субдомену
// Неактивные и заблокированные тенанты отклоняются: их данные остаются в БД,
// но запросы к ним не обслуживаются
func (s *Service) Resolve(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	if s.cache != nil {
		if tenant, err := s.cache.Get(ctx, subdomain); err == nil {
			if tenant.IsActive() {
				return tenant, nil
			}
			// Неактивная запись могла устареть (тенанта уже включили обратно),
			// сбрасываем её и перечитываем из БД
			s.cache.Invalidate(ctx, subdomain)
		}
	}

	tenant, err := s.tenantRepo.GetBySubdomain(ctx, subdomain)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("Resolve: tenant subdomain=%q not found", subdomain)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("Resolve: repository error for subdomain=%q: %v", subdomain, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, tenant)
	}

	return s.requireActive(tenant)
}

// GetByID получает тенанта по ID, неактивные отклоняются
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			return nil, ErrTenantNotFound
		}
		s.logger.Error("GetByID: repository error for tenant=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return s.requireActive(tenant)
}

func (s *Service) requireActive(tenant *domain.Tenant) (*domain.Tenant, error) {
	if !tenant.IsActive() {
		s.logger.Warn("tenant=%d subdomain=%q rejected: status=%s", tenant.ID, tenant.Subdomain, tenant.Status)
		return nil, ErrTenantInactive
	}
	return tenant, nil
}
