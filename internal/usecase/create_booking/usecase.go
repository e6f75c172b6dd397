package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	bookingRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/booking"
	hoursRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/hours"
	roomRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/room"
	"github.com/samueljai120/boom-booking-service/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	roomRepo     RoomRepository
	hoursRepo    HoursRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	hoursRepo HoursRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		hoursRepo:    hoursRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка конфликтов и вставка выполняются атомарно, конкурентное создание
// на тот же интервал получает ErrSlotConflict
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tenant=%d, room=%d, interval=[%s, %s)",
		req.TenantID, req.RoomID, req.StartTime.Format("2006-01-02 15:04"), req.EndTime.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Бронирования в прошлом отклоняются
	now := uc.timeProvider.Now()
	if req.StartTime.Before(now) {
		uc.logger.Warn("CreateBooking: start %s is in the past", req.StartTime.Format("2006-01-02 15:04"))
		return nil, ErrBookingInPast
	}

	// 3. Получаем комнату
	room, err := uc.roomRepo.GetByID(ctx, req.TenantID, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found for tenant=%d", req.RoomID, req.TenantID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if !room.IsBookable() {
		uc.logger.Warn("CreateBooking: room id=%d is not bookable", room.ID)
		return nil, ErrRoomNotBookable
	}

	// 4. Интервал должен целиком лежать в рабочих часах
	// Окно через полночь (20:00-02:00) покрывает два календарных дня: слот
	// 01:00 воскресенья принадлежит хвосту субботнего правила, поэтому при
	// отказе правила дня начала проверяется и правило предыдущего дня
	if err := uc.checkBusinessHours(ctx, req); err != nil {
		return nil, err
	}

	// 5. Считаем цену по текущему тарифу комнаты, после создания она не пересчитывается
	totalPrice, err := domain.ComputePrice(room.HourlyRate, req.StartTime, req.EndTime)
	if err != nil {
		return nil, ErrInvalidInterval
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Проверка конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем активные бронирования комнаты с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.GetForRoomInWindow(txCtx, req.TenantID, req.RoomID, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Проверяем пересечения, границы полуоткрыты:
		// бронирование до 20:00 не конфликтует с бронированием с 20:00
		if domain.HasConflict(req.TenantID, req.RoomID, req.StartTime, req.EndTime, existing) {
			uc.logger.Warn("CreateBooking: interval conflicts with existing booking, room=%d", req.RoomID)
			return ErrSlotConflict
		}

		// 6.3. Создаем бронирование
		booking := &domain.Booking{
			Reference:     newReference(),
			TenantID:      req.TenantID,
			RoomID:        req.RoomID,
			CustomerName:  strings.TrimSpace(req.CustomerName),
			CustomerEmail: strings.TrimSpace(req.CustomerEmail),
			CustomerPhone: req.CustomerPhone,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Status:        domain.StatusConfirmed,
			TotalPrice:    totalPrice,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Страховка на уровне БД: exclusion constraint отклонил пересечение
			if errors.Is(err, bookingRepo.ErrOverlapDetected) {
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Проигрыш гонки двух конкурентных созданий выглядит для клиента как конфликт
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: lost concurrent race for room=%d: %v", req.RoomID, err)
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s price=%.2f",
		result.ID, result.Reference, result.TotalPrice)

	return fromDomainBooking(result), nil
}

// checkBusinessHours проверяет, что интервал целиком лежит в рабочих часах.
// Сначала правило дня начала; если оно отсутствует или отклоняет интервал,
// пробуем хвост правила предыдущего дня, когда оно идёт через полночь —
// иначе слоты после полуночи, которые отдаёт сетка доступности, были бы
// недоступны для бронирования
func (uc *UseCase) checkBusinessHours(ctx context.Context, req *Request) error {
	rule, err := uc.hoursRepo.GetByWeekday(ctx, req.TenantID, req.StartTime.Weekday())
	if err != nil && !errors.Is(err, hoursRepo.ErrRuleNotFound) {
		uc.logger.Error("CreateBooking: failed to get business hours: %v", err)
		return fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	if err == nil && !rule.IsClosed && rule.IsWithinHours(req.StartTime, req.EndTime) {
		return nil
	}

	prevWeekday := time.Weekday((int(req.StartTime.Weekday()) + 6) % 7)
	prevRule, prevErr := uc.hoursRepo.GetByWeekday(ctx, req.TenantID, prevWeekday)
	if prevErr != nil && !errors.Is(prevErr, hoursRepo.ErrRuleNotFound) {
		uc.logger.Error("CreateBooking: failed to get business hours: %v", prevErr)
		return fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, prevErr)
	}

	if prevErr == nil && prevRule.IsWithinHoursNextDay(req.StartTime, req.EndTime) {
		return nil
	}

	uc.logger.Warn("CreateBooking: interval [%s, %s) outside business hours for tenant=%d",
		req.StartTime.Format("2006-01-02 15:04"), req.EndTime.Format("2006-01-02 15:04"), req.TenantID)
	return ErrOutsideBusinessHours
}

// newReference генерирует человекочитаемый номер бронирования, например "BK-9F2C51A4"
func newReference() string {
	id := uuid.New().String()
	return "BK-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}
