package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	bookingRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/booking"
	"github.com/samueljai120/boom-booking-service/internal/service/bookings/models"
	"github.com/samueljai120/boom-booking-service/pkg/ptr"
)

// Service сервис для работы с бронированиями
// Создание новых бронирований живёт в отдельном usecase с транзакцией,
// здесь чтение и управление жизненным циклом уже существующих
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование тенанта по ID
func (s *Service) GetByID(ctx context.Context, tenantID, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found for tenant=%d", id, tenantID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for tenant=%d booking=%d: %v", tenantID, id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetTenantBookings получает бронирования тенанта с гибкой фильтрацией
// Поддерживает фильтрацию по комнате, окну, статусу и включению отменённых
func (s *Service) GetTenantBookings(ctx context.Context, req *models.GetTenantBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetTenantBookings: invalid status=%q for tenant=%d", ptr.Deref(req.Status), req.TenantID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookingList, err := s.bookingRepo.GetByTenantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetTenantBookings: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: GetTenantBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTenantBookings: fetched %d bookings for tenant=%d", len(bookingList), req.TenantID)
	return models.FromDomainBookingList(bookingList), nil
}

// Cancel отменяет бронирование
// Отменить можно только подтверждённое бронирование; завершённые, неявки и
// уже отменённые отклоняются
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, req.TenantID, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for tenant=%d booking=%d: %v", req.TenantID, req.BookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d status=%s cannot be cancelled", booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: status=%s", ErrCannotCancel, booking.Status)
	}

	if err := s.bookingRepo.Cancel(ctx, req.TenantID, req.BookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for tenant=%d booking=%d: %v", req.TenantID, req.BookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled booking id=%d for tenant=%d", req.BookingID, req.TenantID)
	return s.GetByID(ctx, req.TenantID, req.BookingID)
}

// UpdateStatus обновляет статус бронирования
// Допустимые переходы проверяются относительно текущего статуса:
// отменённое бронирование финально, завершение и неявка возможны только из confirmed
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking=%d", req.Status, req.BookingID)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.TenantID, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for tenant=%d booking=%d: %v", req.TenantID, req.BookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !isValidTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for booking=%d", booking.Status, newStatus, booking.ID)
		return nil, fmt.Errorf("%w: transition %s -> %s", ErrInvalidStatus, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, req.TenantID, req.BookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for tenant=%d booking=%d: %v", req.TenantID, req.BookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d tenant=%d status=%s", req.BookingID, req.TenantID, newStatus)
	return s.GetByID(ctx, req.TenantID, req.BookingID)
}

// isValidTransition проверяет переход статуса
// Отмена идёт через Cancel, здесь она не разрешена
func isValidTransition(from, to domain.BookingStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case domain.StatusConfirmed:
		return to == domain.StatusCompleted || to == domain.StatusNoShow
	default:
		return false
	}
}
