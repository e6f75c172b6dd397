package create_booking

import (
	"time"

	"github.com/samueljai120/boom-booking-service/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	TenantID int64 // ID тенанта из контекста запроса
	RoomID   int64 // ID комнаты

	CustomerName  string  // Имя клиента
	CustomerEmail string  // Email клиента
	CustomerPhone *string // Телефон клиента (опционально)

	StartTime time.Time // Начало интервала
	EndTime   time.Time // Конец интервала, полуоткрытая семантика [start, end)

	Notes *string // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	RoomID    int64  `json:"roomId"`

	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`

	TotalPrice float64 `json:"totalPrice"`
	Notes      *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// fromDomainBooking конвертирует domain модель в response
func fromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		Reference:     b.Reference,
		RoomID:        b.RoomID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        string(b.Status),
		TotalPrice:    b.TotalPrice,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
