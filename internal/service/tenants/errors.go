package tenants

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrTenantInactive возвращается, когда тенант существует, но отключён или заблокирован
	ErrTenantInactive = errors.New("tenant is not active")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
