package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/samueljai120/boom-booking-service/internal/api/handlers"
	"github.com/samueljai120/boom-booking-service/internal/domain"
	"github.com/samueljai120/boom-booking-service/internal/service/tenants"
)

// TenantHeader заголовок с субдоменом тенанта
// Внешний балансировщик извлекает субдомен из Host и пробрасывает его сюда
const TenantHeader = "X-Tenant-Subdomain"

const (
	msgTenantRequired = "не указан тенант запроса"
	msgTenantNotFound = "тенант не найден"
	msgTenantInactive = "тенант отключён"
)

type tenantCtxKey struct{}

// TenantMiddleware резолвит тенанта из заголовка и кладет его в контекст
// Запросы без тенанта, к неизвестным или отключённым тенантам не проходят дальше.
// Изоляция начинается здесь: всё, что ниже по стеку, работает только с ID
// тенанта из контекста
func TenantMiddleware(resolver TenantResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subdomain := strings.ToLower(strings.TrimSpace(r.Header.Get(TenantHeader)))
			if subdomain == "" {
				logger.Warn("%s %s - missing tenant header", r.Method, r.URL.Path)
				handlers.RespondBadRequest(w, msgTenantRequired)
				return
			}

			tenant, err := resolver.Resolve(r.Context(), subdomain)
			if err != nil {
				switch {
				case errors.Is(err, tenants.ErrTenantNotFound):
					logger.Warn("%s %s - tenant %q not found", r.Method, r.URL.Path, subdomain)
					handlers.RespondNotFound(w, msgTenantNotFound)
				case errors.Is(err, tenants.ErrTenantInactive):
					logger.Warn("%s %s - tenant %q inactive", r.Method, r.URL.Path, subdomain)
					handlers.RespondForbidden(w, msgTenantInactive)
				default:
					logger.Error("%s %s - tenant resolve failed: %v", r.Method, r.URL.Path, err)
					handlers.RespondInternalError(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), tenantCtxKey{}, tenant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TenantFromContext возвращает тенанта запроса
// false означает, что запрос не проходил через TenantMiddleware
func TenantFromContext(ctx context.Context) (*domain.Tenant, bool) {
	tenant, ok := ctx.Value(tenantCtxKey{}).(*domain.Tenant)
	return tenant, ok
}
