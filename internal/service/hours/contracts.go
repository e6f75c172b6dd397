package hours

import (
	"context"
	"time"

	"github.com/samueljai120/boom-booking-service/internal/domain"
)

// HoursRepository интерфейс репозитория рабочих часов
type HoursRepository interface {
	GetWeek(ctx context.Context, tenantID int64) (domain.WeekSchedule, error)
	GetByWeekday(ctx context.Context, tenantID int64, weekday time.Weekday) (*domain.BusinessHoursRule, error)
	Upsert(ctx context.Context, tenantID int64, rules []domain.BusinessHoursRule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
