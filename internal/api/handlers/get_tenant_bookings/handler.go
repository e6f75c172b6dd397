package get_tenant_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/samueljai120/boom-booking-service/internal/api/handlers"
	"github.com/samueljai120/boom-booking-service/internal/api/middleware"
	"github.com/samueljai120/boom-booking-service/internal/service/bookings"
	"github.com/samueljai120/boom-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgInvalidTime   = "некорректный формат времени, ожидается RFC 3339"
	msgInvalidStatus = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenant/bookings
// Query params: roomId, from, to (RFC 3339), status, includeInactive.
// [from, to) отбирает бронирования, пересекающие окно по полуинтервальному правилу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /tenant/bookings - no tenant in context")
		handlers.RespondInternalError(w)
		return
	}

	req := &models.GetTenantBookingsRequest{TenantID: tenant.ID}
	query := r.URL.Query()

	if roomIDStr := query.Get("roomId"); roomIDStr != "" {
		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /tenant/bookings - Invalid room ID: %q", roomIDStr)
			handlers.RespondBadRequest(w, msgInvalidRoomID)
			return
		}
		req.RoomID = &roomID
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.logger.Warn("GET /tenant/bookings - Invalid from: %q", fromStr)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.EndsAfter = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.logger.Warn("GET /tenant/bookings - Invalid to: %q", toStr)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.StartsBefore = &to
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.GetTenantBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /tenant/bookings - Invalid status: tenant_id=%d", tenant.ID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("GET /tenant/bookings - Failed: tenant_id=%d, error=%v", tenant.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenant/bookings - Returned %d bookings: tenant_id=%d", len(result.Bookings), tenant.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
