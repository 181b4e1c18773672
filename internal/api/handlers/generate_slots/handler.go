package generate_slots

import (
	"errors"
	"net/http"

	"github.com/paupet/PG-AppointmentService/internal/api/handlers"
	"github.com/paupet/PG-AppointmentService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRange       = "некорректный диапазон времени или длительность слота"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule/slots/generate
//
// Вспомогательная операция конструктора расписания: нарезает диапазон
// рабочих часов на слоты одинаковой длительности. Ничего не сохраняет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.GenerateSlotsForRange(r.Context(), req.StartTime, req.EndTime, req.DurationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule/slots/generate - Invalid range: start=%s, end=%s, duration=%d",
				req.StartTime, req.EndTime, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("POST /schedule/slots/generate - Failed to generate slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/slots/generate - Slots generated successfully: start=%s, end=%s, duration=%d, count=%d",
		req.StartTime, req.EndTime, req.DurationMinutes, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
