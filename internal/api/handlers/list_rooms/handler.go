package list_rooms

import (
	"net/http"

	"github.com/samueljai120/boom-booking-service/internal/api/handlers"
	"github.com/samueljai120/boom-booking-service/internal/api/middleware"
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

// Handle GET /api/v1/rooms
//
// По умолчанию отдаёт только активные комнаты. Параметр includeInactive=true
// добавляет в выдачу отключённые комнаты тенанта.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /rooms - no tenant in context")
		handlers.RespondInternalError(w)
		return
	}

	onlyActive := r.URL.Query().Get("includeInactive") != "true"

	roomList, err := h.service.List(r.Context(), tenant.ID, onlyActive)
	if err != nil {
		h.logger.Error("GET /rooms - Failed: tenant_id=%d, error=%v", tenant.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, roomList)
}
