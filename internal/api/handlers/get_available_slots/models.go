package get_available_slots

import (
	"time"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	getAvailableSlots "github.com/samueljai120/boom-booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "20:00"
	EndTime   string `json:"endTime"`   // "20:15"
	IsNextDay bool   `json:"isNextDay"`
}

// SlotsResponse HTTP модель ответа со слотами
type SlotsResponse struct {
	Date   string         `json:"date"` // "2026-03-13"
	RoomID int64          `json:"roomId"`
	Slots  []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(tenantID, roomID int64, dateStr string, slotSize int) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		TenantID:        tenantID,
		RoomID:          roomID,
		Date:            date,
		SlotSizeMinutes: slotSize,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Занятые слоты в выдачу не попадают, клиент видит только свободные окна.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		if !slot.Available {
			continue
		}

		slots = append(slots, SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			IsNextDay: slot.IsNextDay,
		})
	}

	return &SlotsResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		RoomID: resp.RoomID,
		Slots:  slots,
	}
}
