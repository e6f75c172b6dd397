package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	hoursRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/hours"
	roomRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/room"
)

// UseCase use case для получения слотов комнаты на дату
type UseCase struct {
	roomRepo        RoomRepository
	hoursRepo       HoursRepository
	bookingRepo     BookingRepository
	defaultSlotSize int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// defaultSlotSize применяется, когда запрос не задаёт шаг сетки; 0 = 15 минут
func NewUseCase(
	roomRepo RoomRepository,
	hoursRepo HoursRepository,
	bookingRepo BookingRepository,
	defaultSlotSize int,
	logger Logger,
) *UseCase {
	if defaultSlotSize <= 0 {
		defaultSlotSize = domain.DefaultSlotSizeMinutes
	}
	return &UseCase{
		roomRepo:        roomRepo,
		hoursRepo:       hoursRepo,
		bookingRepo:     bookingRepo,
		defaultSlotSize: defaultSlotSize,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
//
// Шаги:
// 1. Валидация входных данных
// 2. Комната должна существовать и быть доступной для бронирования
// 3. Правило рабочих часов на день недели; закрытый день даёт пустую сетку
// 4. Генерация сетки слотов от открытия с шагом slotSize
// 5. Разметка доступности по активным бронированиям дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%d, room=%d, date=%s",
		req.TenantID, req.RoomID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// Слоты на прошедшие даты не выдаются
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	slotSize := req.SlotSizeMinutes
	if slotSize == 0 {
		slotSize = uc.defaultSlotSize
	}

	// 2. Получаем комнату
	room, err := uc.roomRepo.GetByID(ctx, req.TenantID, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetAvailableSlots: room id=%d not found for tenant=%d", req.RoomID, req.TenantID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if !room.IsBookable() {
		uc.logger.Warn("GetAvailableSlots: room id=%d is not bookable", room.ID)
		return nil, ErrRoomNotBookable
	}

	// 3. Получаем правило рабочих часов на день недели
	rule, err := uc.hoursRepo.GetByWeekday(ctx, req.TenantID, req.Date.Weekday())
	if err != nil {
		if errors.Is(err, hoursRepo.ErrRuleNotFound) {
			// Нет правила — день закрыт
			uc.logger.Info("GetAvailableSlots: tenant=%d closed on %s", req.TenantID, req.Date.Weekday())
			return &Response{Date: req.Date, RoomID: req.RoomID, Slots: []Slot{}}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	// 4. Генерируем сетку слотов
	slots, err := generateSlots(rule, slotSize)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	if len(slots) == 0 {
		return &Response{Date: req.Date, RoomID: req.RoomID, Slots: []Slot{}}, nil
	}

	// 5. Получаем активные бронирования, пересекающие окно рабочего дня
	// Окно может уходить за полночь, поэтому верхняя граница берётся из правила
	_, closeAbs, err := rule.Window()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute window: %v", ErrInternal, err)
	}

	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	windowEnd := dayStart.Add(time.Duration(closeAbs) * time.Minute)

	bookings, err := uc.bookingRepo.GetForRoomInWindow(ctx, req.TenantID, req.RoomID, dayStart, windowEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	marked, err := markAvailability(slots, req.Date, bookings)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to mark availability: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for tenant=%d, room=%d, date=%s",
		len(marked), req.TenantID, req.RoomID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:   req.Date,
		RoomID: req.RoomID,
		Slots:  marked,
	}, nil
}
