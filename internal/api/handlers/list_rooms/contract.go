package list_rooms

import (
	"context"

	"github.com/samueljai120/boom-booking-service/internal/service/rooms/models"
)

// RoomService контракт сервиса комнат
type RoomService interface {
	List(ctx context.Context, tenantID int64, onlyActive bool) (*models.RoomListResponse, error)
}

// Logger контракт логгера
type Logger interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
