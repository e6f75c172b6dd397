package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/samueljai120/boom-booking-service/internal/api/handlers"
	"github.com/samueljai120/boom-booking-service/internal/api/middleware"
	getAvailableSlots "github.com/samueljai120/boom-booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidRoomID   = "некорректный ID комнаты"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSlotSize = "некорректный шаг сетки слотов"
	msgDateInPast      = "дата не должна быть в прошлом"
	msgRoomNotFound    = "комната не найдена"
	msgRoomNotBookable = "комната недоступна для бронирования"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/available-slots
// Query params: date (required, YYYY-MM-DD), slotSize (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenant, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /rooms/{id}/available-slots - no tenant in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)

	// Извлекаем roomId из URL
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/available-slots - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /rooms/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Шаг сетки опционален, по умолчанию берётся из конфигурации сервиса
	slotSize := 0
	if slotSizeStr := r.URL.Query().Get("slotSize"); slotSizeStr != "" {
		slotSize, err = strconv.Atoi(slotSizeStr)
		if err != nil || slotSize <= 0 {
			h.logger.Warn("GET /rooms/{id}/available-slots - Invalid slot size: %q", slotSizeStr)
			handlers.RespondBadRequest(w, msgInvalidSlotSize)
			return
		}
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(tenant.ID, roomID, dateStr, slotSize)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/available-slots - Room not found: tenant_id=%d, room_id=%d", tenant.ID, roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getAvailableSlots.ErrRoomNotBookable):
			h.logger.Warn("GET /rooms/{id}/available-slots - Room not bookable: tenant_id=%d, room_id=%d", tenant.ID, roomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotBookable)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /rooms/{id}/available-slots - Invalid date: tenant_id=%d, date=%s", tenant.ID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/available-slots - Invalid input: tenant_id=%d, error=%v", tenant.ID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotSize)

		default:
			h.logger.Error("GET /rooms/{id}/available-slots - Failed: tenant_id=%d, room_id=%d, error=%v",
				tenant.ID, roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/available-slots - Returned %d slots: tenant_id=%d, room_id=%d, date=%s",
		len(result.Slots), tenant.ID, roomID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
