package create_room

import (
	"errors"
	"net/http"

	"github.com/samueljai120/boom-booking-service/internal/api/handlers"
	"github.com/samueljai120/boom-booking-service/internal/api/middleware"
	"github.com/samueljai120/boom-booking-service/internal/service/rooms"
	"github.com/samueljai120/boom-booking-service/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRoom        = "некорректные данные комнаты"
	msgRoomNameTaken      = "комната с таким именем уже существует"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /rooms - no tenant in context")
		handlers.RespondInternalError(w)
		return
	}

	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.TenantID = tenant.ID

	room, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNameTaken):
			h.logger.Warn("POST /rooms - Name taken: tenant_id=%d, name=%q", tenant.ID, req.Name)
			handlers.RespondError(w, http.StatusConflict, msgRoomNameTaken)
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid input: tenant_id=%d, error=%v", tenant.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRoom)
		default:
			h.logger.Error("POST /rooms - Failed: tenant_id=%d, error=%v", tenant.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created: room_id=%d, tenant_id=%d", room.ID, tenant.ID)
	handlers.RespondJSON(w, http.StatusCreated, room)
}
