package get_available_slots

import (
	"fmt"
	"time"

	"github.com/samueljai120/boom-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if req.SlotSizeMinutes != 0 &&
		(req.SlotSizeMinutes < domain.MinSlotSizeMinutes || req.SlotSizeMinutes > domain.MaxSlotSizeMinutes) {
		return fmt.Errorf("%w: slot size must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotSizeMinutes, domain.MaxSlotSizeMinutes)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
