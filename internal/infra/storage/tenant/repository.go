package tenant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	"github.com/samueljai120/boom-booking-service/pkg/dbmetrics"
	"github.com/samueljai120/boom-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с тенантами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тенантов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового тенанта
// Субдомен должен быть уникален среди всех тенантов, включая удалённых
func (r *Repository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tenants").
		Columns(
			"name",
			"subdomain",
			"plan_tier",
			"status",
		).
		Values(
			tenant.Name,
			tenant.Subdomain,
			tenant.Plan,
			tenant.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tenant.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: %s", ErrSubdomainTaken, tenant.Subdomain)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tenant.CreatedAt = createdAt.Time
	tenant.UpdatedAt = updatedAt.Time

	return tenant, nil
}

// GetByID получает тенанта по ID
// Удалённые тенанты не возвращаются
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tenantColumns()...).
		From("tenants").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanTenant(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetBySubdomain получает тенанта по субдомену
// Используется middleware для резолва тенанта из заголовка запроса
func (r *Repository) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tenantColumns()...).
		From("tenants").
		Where(squirrel.Eq{"subdomain": subdomain}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySubdomain - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanTenant(executor.QueryRowContext(ctx, query, args...), "GetBySubdomain")
}

// UpdateStatus меняет статус тенанта (active / inactive / suspended)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.TenantStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tenants").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrTenantNotFound
	}

	return nil
}

func tenantColumns() []string {
	return []string{
		"id",
		"name",
		"subdomain",
		"plan_tier",
		"status",
		"created_at",
		"updated_at",
	}
}

func (r *Repository) scanTenant(row *sql.Row, method string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.Subdomain,
		&tenant.Plan,
		&tenant.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan tenant: %v", ErrScanRow, method, err)
	}

	tenant.CreatedAt = createdAt.Time
	tenant.UpdatedAt = updatedAt.Time

	return &tenant, nil
}
