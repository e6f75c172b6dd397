package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/samueljai120/boom-booking-service/internal/api/handlers"
	"github.com/samueljai120/boom-booking-service/internal/api/middleware"
	"github.com/samueljai120/boom-booking-service/internal/service/hours"
	"github.com/samueljai120/boom-booking-service/internal/service/hours/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRules       = "некорректные правила рабочих часов"
	msgDuplicateWeekday   = "несколько правил на один день недели"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Error("PUT /business-hours - no tenant in context")
		handlers.RespondInternalError(w)
		return
	}

	var req models.UpdateWeekRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.TenantID = tenant.ID

	week, err := h.service.UpdateWeek(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrDuplicateWeekday):
			h.logger.Warn("PUT /business-hours - Duplicate weekday: tenant_id=%d", tenant.ID)
			handlers.RespondBadRequest(w, msgDuplicateWeekday)
		case errors.Is(err, hours.ErrInvalidInput):
			h.logger.Warn("PUT /business-hours - Invalid rules: tenant_id=%d, error=%v", tenant.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRules)
		default:
			h.logger.Error("PUT /business-hours - Failed: tenant_id=%d, error=%v", tenant.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /business-hours - Updated schedule: tenant_id=%d", tenant.ID)
	handlers.RespondJSON(w, http.StatusOK, week)
}
