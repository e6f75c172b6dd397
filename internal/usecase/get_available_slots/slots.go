package get_available_slots

import (
	"time"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	"github.com/samueljai120/boom-booking-service/pkg/types"
)

// generateSlots генерирует сетку слотов рабочего дня комнаты
// Слоты идут от открытия с фиксированным шагом slotSize и обрезаются по закрытию:
// слот, не помещающийся целиком до закрытия, не выдаётся.
//
// Для окон через полночь (close < open, например 20:00-02:00) окно разворачивается
// в [open, close+24ч) в минутах от полуночи запрошенной даты. Слоты после полуночи
// помечаются IsNextDay, их время начала заворачивается по модулю суток ("01:45").
//
// Генерация детерминирована: одно правило и один шаг всегда дают одну и ту же сетку.
func generateSlots(rule *domain.BusinessHoursRule, slotSize int) ([]domain.Slot, error) {
	if rule == nil || rule.IsClosed {
		return []domain.Slot{}, nil
	}

	openMin, closeAbs, err := rule.Window()
	if err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, 0)
	for startMin := openMin; startMin+slotSize <= closeAbs; startMin += slotSize {
		// Защитный предел на количество слотов: достижение — не ошибка,
		// а остановка генерации на деформированном правиле
		if len(slots) >= domain.MaxSlotsPerDay {
			break
		}

		slots = append(slots, domain.Slot{
			StartTime: types.NewTimeStringFromMinutes(startMin),
			EndTime:   types.NewTimeStringFromMinutes(startMin + slotSize),
			IsNextDay: startMin >= minutesPerDay,
		})
	}

	return slots, nil
}

const minutesPerDay = 24 * 60

// markAvailability размечает слоты по активным бронированиям комнаты
// Слот доступен, если его интервал не пересекается ни с одним бронированием.
// Семантика полуоткрытая: бронирование до 20:00 не трогает слот с 20:00.
func markAvailability(slots []domain.Slot, date time.Time, bookings []*domain.Booking) ([]Slot, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	result := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		startMin, err := slot.StartTime.Minutes()
		if err != nil {
			return nil, err
		}
		// Для слотов за полуночью восстанавливаем абсолютную минуту окна
		if slot.IsNextDay {
			startMin += minutesPerDay
		}

		slotStart := dayStart.Add(time.Duration(startMin) * time.Minute)
		slotEnd := slotStart.Add(time.Duration(slotSizeOf(slot)) * time.Minute)

		available := true
		for _, b := range bookings {
			if !b.IsActive() {
				continue
			}
			if b.Overlaps(slotStart, slotEnd) {
				available = false
				break
			}
		}

		result = append(result, Slot{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			IsNextDay: slot.IsNextDay,
			Available: available,
		})
	}

	return result, nil
}

// slotSizeOf восстанавливает длительность слота из его границ
func slotSizeOf(slot domain.Slot) int {
	startMin, err := slot.StartTime.Minutes()
	if err != nil {
		return 0
	}
	endMin, err := slot.EndTime.Minutes()
	if err != nil {
		return 0
	}
	size := endMin - startMin
	if size <= 0 {
		size += minutesPerDay
	}
	return size
}
