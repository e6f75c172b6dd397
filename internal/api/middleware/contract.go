package middleware

import (
	"context"

	"github.com/samueljai120/boom-booking-service/internal/domain"
)

// TenantResolver интерфейс резолва тенанта по субдомену
type TenantResolver interface {
	Resolve(ctx context.Context, subdomain string) (*domain.Tenant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
