package get_available_slots

import (
	"time"

	"github.com/samueljai120/boom-booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	TenantID        int64     // ID тенанта из контекста запроса
	RoomID          int64     // ID комнаты
	Date            time.Time // Дата, на которую запрашиваются слоты (без времени)
	SlotSizeMinutes int       // Шаг сетки слотов; 0 = значение по умолчанию
}

// Response модель ответа со списком слотов
type Response struct {
	Date   time.Time // Дата, на которую запрашивались слоты
	RoomID int64     // ID комнаты
	Slots  []Slot    // Сетка слотов рабочего дня
}

// Slot модель временного слота
// Для окон через полночь слоты после 00:00 помечаются IsNextDay
type Slot struct {
	StartTime types.TimeString // Время начала слота, например "20:00"
	EndTime   types.TimeString // Время конца слота, например "20:15"
	IsNextDay bool             // Слот начинается после полуночи следующего календарного дня
	Available bool             // Слот не пересекается ни с одним активным бронированием
}
