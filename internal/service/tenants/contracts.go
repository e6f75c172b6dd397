package tenants

import (
	"context"

	"github.com/samueljai120/boom-booking-service/internal/domain"
)

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error)
}

// TenantCache интерфейс кэша резолва субдоменов
// Реализация работает fail-open: ошибки кэша не прерывают резолв
type TenantCache interface {
	Get(ctx context.Context, subdomain string) (*domain.Tenant, error)
	Set(ctx context.Context, tenant *domain.Tenant)
	Invalidate(ctx context.Context, subdomain string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
