package create_booking

import (
	"context"
	"time"

	"github.com/samueljai120/boom-booking-service/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Room, error)
}

// HoursRepository интерфейс репозитория рабочих часов
type HoursRepository interface {
	GetByWeekday(ctx context.Context, tenantID int64, weekday time.Weekday) (*domain.BusinessHoursRule, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetForRoomInWindow получает активные бронирования комнаты, пересекающие окно [from, to)
	// Внутри транзакции строки блокируются через FOR UPDATE
	GetForRoomInWindow(ctx context.Context, tenantID, roomID int64, from, to time.Time) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
