package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	roomRepo "github.com/samueljai120/boom-booking-service/internal/infra/storage/room"
	"github.com/samueljai120/boom-booking-service/internal/service/rooms/models"
)

// Service сервис для работы с комнатами
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Create создает новую комнату внутри тенанта
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid room request for tenant=%d: %v", req.TenantID, err)
		return nil, err
	}

	room, err := s.roomRepo.Create(ctx, req.ToDomainRoom())
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNameTaken) {
			s.logger.Warn("Create: room name %q already taken for tenant=%d", req.Name, req.TenantID)
			return nil, ErrRoomNameTaken
		}
		s.logger.Error("Create: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created room id=%d name=%q for tenant=%d", room.ID, room.Name, room.TenantID)
	return models.FromDomainRoom(room), nil
}

// GetByID получает комнату тенанта по ID
func (s *Service) GetByID(ctx context.Context, tenantID, id int64) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for tenant=%d room=%d: %v", tenantID, id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// List получает список комнат тенанта
// onlyActive ограничивает выборку комнатами, доступными для бронирования
func (s *Service) List(ctx context.Context, tenantID int64, onlyActive bool) (*models.RoomListResponse, error) {
	roomList, err := s.roomRepo.ListByTenant(ctx, tenantID, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(roomList), nil
}

// SetActive включает или выключает комнату для бронирования
func (s *Service) SetActive(ctx context.Context, tenantID, id int64, isActive bool) error {
	err := s.roomRepo.SetActive(ctx, tenantID, id, isActive)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		s.logger.Error("SetActive: repository error for tenant=%d room=%d: %v", tenantID, id, err)
		return fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetActive: room id=%d tenant=%d is_active=%t", id, tenantID, isActive)
	return nil
}

func validateCreateRequest(req *models.CreateRoomRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: room name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxRoomNameLength {
		return fmt.Errorf("%w: room name exceeds %d characters", ErrInvalidInput, domain.MaxRoomNameLength)
	}
	if req.Capacity < domain.MinRoomCapacity || req.Capacity > domain.MaxRoomCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinRoomCapacity, domain.MaxRoomCapacity)
	}
	if req.HourlyRate < 0 {
		return fmt.Errorf("%w: hourly rate must not be negative", ErrInvalidInput)
	}
	return nil
}
