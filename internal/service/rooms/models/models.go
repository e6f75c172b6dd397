package models

import (
	"time"

	"github.com/samueljai120/boom-booking-service/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	TenantID   int64   `json:"-"`
	Name       string  `json:"name"`
	Capacity   int     `json:"capacity"`
	HourlyRate float64 `json:"hourlyRate"`
}

// ToDomainRoom конвертирует request в domain модель
func (r *CreateRoomRequest) ToDomainRoom() *domain.Room {
	return &domain.Room{
		TenantID:   r.TenantID,
		Name:       r.Name,
		Capacity:   r.Capacity,
		HourlyRate: r.HourlyRate,
		IsActive:   true,
	}
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Capacity   int       `json:"capacity"`
	HourlyRate float64   `json:"hourlyRate"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(room *domain.Room) *RoomResponse {
	if room == nil {
		return nil
	}
	return &RoomResponse{
		ID:         room.ID,
		Name:       room.Name,
		Capacity:   room.Capacity,
		HourlyRate: room.HourlyRate,
		IsActive:   room.IsActive,
		CreatedAt:  room.CreatedAt,
		UpdatedAt:  room.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(roomList []*domain.Room) *RoomListResponse {
	rooms := make([]RoomResponse, 0, len(roomList))
	for _, room := range roomList {
		rooms = append(rooms, *FromDomainRoom(room))
	}
	return &RoomListResponse{Rooms: rooms}
}
