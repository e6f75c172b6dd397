package rooms

import (
	"context"

	"github.com/samueljai120/boom-booking-service/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Room, error)
	ListByTenant(ctx context.Context, tenantID int64, onlyActive bool) ([]*domain.Room, error)
	SetActive(ctx context.Context, tenantID, id int64, isActive bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
