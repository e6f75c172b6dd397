package update_booking_status

import (
	"context"

	"github.com/samueljai120/boom-booking-service/internal/service/bookings/models"
)

// BookingService контракт сервиса бронирований
type BookingService interface {
	UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BookingResponse, error)
}

// Logger контракт логгера
type Logger interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
