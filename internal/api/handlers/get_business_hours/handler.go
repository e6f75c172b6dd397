package get_business_hours

import (
	"net/http"

	"github.com/samueljai120/boom-booking-service/internal/api/handlers"
	"github.com/samueljai120/boom-booking-service/internal/api/middleware"
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

// Handle GET /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /business-hours - no tenant in context")
		handlers.RespondInternalError(w)
		return
	}

	week, err := h.service.GetWeek(r.Context(), tenant.ID)
	if err != nil {
		h.logger.Error("GET /business-hours - Failed: tenant_id=%d, error=%v", tenant.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, week)
}
