package update_room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/samueljai120/boom-booking-service/internal/api/handlers"
	"github.com/samueljai120/boom-booking-service/internal/api/middleware"
	"github.com/samueljai120/boom-booking-service/internal/service/rooms"
)

const (
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgIsActiveRequired   = "поле isActive обязательно"
	msgRoomNotFound       = "комната не найдена"
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

// Handle PATCH /api/v1/rooms/{roomId}
//
// Выключенная комната пропадает из списков и слотов, но существующие
// бронирования не трогаются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Error("PATCH /rooms/{id} - no tenant in context")
		handlers.RespondInternalError(w)
		return
	}

	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req UpdateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /rooms/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.IsActive == nil {
		h.logger.Warn("PATCH /rooms/{id} - Missing isActive: tenant_id=%d, room_id=%d", tenant.ID, roomID)
		handlers.RespondBadRequest(w, msgIsActiveRequired)
		return
	}

	if err := h.service.SetActive(r.Context(), tenant.ID, roomID, *req.IsActive); err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PATCH /rooms/{id} - Not found: tenant_id=%d, room_id=%d", tenant.ID, roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)
		default:
			h.logger.Error("PATCH /rooms/{id} - Failed: tenant_id=%d, room_id=%d, error=%v",
				tenant.ID, roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	room, err := h.service.GetByID(r.Context(), tenant.ID, roomID)
	if err != nil {
		h.logger.Error("PATCH /rooms/{id} - Read back failed: tenant_id=%d, room_id=%d, error=%v",
			tenant.ID, roomID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /rooms/{id} - Updated: tenant_id=%d, room_id=%d, is_active=%t",
		tenant.ID, roomID, *req.IsActive)
	handlers.RespondJSON(w, http.StatusOK, room)
}
