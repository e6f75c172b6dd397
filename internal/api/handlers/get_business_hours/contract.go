package get_business_hours

import (
	"context"

	"github.com/samueljai120/boom-booking-service/internal/service/hours/models"
)

type HoursService interface {
	GetWeek(ctx context.Context, tenantID int64) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
