package hours

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	"github.com/samueljai120/boom-booking-service/pkg/dbmetrics"
	"github.com/samueljai120/boom-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с правилами рабочих часов
// На каждый (tenant_id, weekday) существует не более одного правила
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeek получает расписание тенанта на всю неделю
// Для дней без правила возвращается нулевое правило (день считается закрытым)
func (r *Repository) GetWeek(ctx context.Context, tenantID int64) (domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var schedule domain.WeekSchedule

	query, args, err := psqlbuilder.Select(hoursColumns()...).
		From("business_hours").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return schedule, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return schedule, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return schedule, fmt.Errorf("%w: GetWeek - scan rule: %v", ErrScanRow, err)
		}
		schedule.Set(rule)
	}

	if err = rows.Err(); err != nil {
		return schedule, fmt.Errorf("%w: GetWeek - rows iteration: %v", ErrExecQuery, err)
	}

	return schedule, nil
}

// GetByWeekday получает правило тенанта на конкретный день недели
func (r *Repository) GetByWeekday(ctx context.Context, tenantID int64, weekday time.Weekday) (*domain.BusinessHoursRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns()...).
		From("business_hours").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - scan rule: %v", ErrScanRow, err)
	}

	return &rule, nil
}

// Upsert сохраняет правила тенанта
// Существующее правило на тот же день недели перезаписывается
func (r *Repository) Upsert(ctx context.Context, tenantID int64, rules []domain.BusinessHoursRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, rule := range rules {
		query, args, err := psqlbuilder.Insert("business_hours").
			Columns(
				"tenant_id",
				"weekday",
				"open_time",
				"close_time",
				"is_closed",
			).
			Values(
				tenantID,
				int(rule.Weekday),
				rule.OpenTime,
				rule.CloseTime,
				rule.IsClosed,
			).
			Suffix(`ON CONFLICT (tenant_id, weekday) DO UPDATE SET
				open_time = EXCLUDED.open_time,
				close_time = EXCLUDED.close_time,
				is_closed = EXCLUDED.is_closed,
				updated_at = NOW()`).
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err = executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Upsert - execute upsert for weekday %d: %v", ErrExecQuery, rule.Weekday, err)
		}
	}

	return nil
}

func hoursColumns() []string {
	return []string{
		"id",
		"tenant_id",
		"weekday",
		"open_time",
		"close_time",
		"is_closed",
	}
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (domain.BusinessHoursRule, error) {
	var rule domain.BusinessHoursRule
	var weekday int

	err := row.Scan(
		&rule.ID,
		&rule.TenantID,
		&weekday,
		&rule.OpenTime,
		&rule.CloseTime,
		&rule.IsClosed,
	)
	if err != nil {
		return rule, err
	}

	rule.Weekday = time.Weekday(weekday)
	return rule, nil
}
