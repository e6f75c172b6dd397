package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/samueljai120/boom-booking-service/internal/domain"
)

// ErrCacheMiss возвращается, когда тенант отсутствует в кэше
var ErrCacheMiss = errors.New("tenant.cache: cache miss")

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// TenantCache кэширует резолв субдомен -> тенант в Redis.
// Кэш работает в режиме fail-open: любая ошибка Redis трактуется как промах,
// резолв уходит в БД и сервис продолжает работать без кэша.
type TenantCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger Logger
}

func NewTenantCache(rdb *redis.Client, ttl time.Duration, logger Logger) *TenantCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TenantCache{rdb: rdb, ttl: ttl, logger: logger}
}

// Get возвращает тенанта по субдомену или ErrCacheMiss
func (c *TenantCache) Get(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	raw, err := c.rdb.Get(ctx, c.key(subdomain)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("[TenantCache.Get] redis error, falling back to DB: %v", err)
		}
		return nil, ErrCacheMiss
	}

	var tenant domain.Tenant
	if err := json.Unmarshal(raw, &tenant); err != nil {
		// Битая запись — считаем промахом, перезапишется при следующем Set
		c.logger.Warn("[TenantCache.Get] corrupted cache entry for %q: %v", subdomain, err)
		return nil, ErrCacheMiss
	}

	return &tenant, nil
}

// Set сохраняет тенанта в кэш, ошибки Redis не прерывают запрос
func (c *TenantCache) Set(ctx context.Context, tenant *domain.Tenant) {
	raw, err := json.Marshal(tenant)
	if err != nil {
		c.logger.Warn("[TenantCache.Set] marshal tenant %q: %v", tenant.Subdomain, err)
		return
	}

	if err := c.rdb.Set(ctx, c.key(tenant.Subdomain), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("[TenantCache.Set] redis error for %q: %v", tenant.Subdomain, err)
	}
}

// Invalidate удаляет запись, вызывается при резолве неактивной записи,
// чтобы смена статуса тенанта не ждала истечения TTL
func (c *TenantCache) Invalidate(ctx context.Context, subdomain string) {
	if err := c.rdb.Del(ctx, c.key(subdomain)).Err(); err != nil {
		c.logger.Warn("[TenantCache.Invalidate] redis error for %q: %v", subdomain, err)
	}
}

func (c *TenantCache) key(subdomain string) string {
	return fmt.Sprintf("tenant:subdomain:%s", subdomain)
}
