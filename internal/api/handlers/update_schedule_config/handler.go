package update_schedule_config

import (
	"errors"
	"net/http"

	"github.com/paupet/PG-AppointmentService/internal/api/handlers"
	"github.com/paupet/PG-AppointmentService/internal/service/schedule"
	"github.com/paupet/PG-AppointmentService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "некорректные данные конфигурации"
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

// Handle PUT /api/v1/schedule/config
//
// Конфигурация сохраняется целиком: частичных обновлений нет,
// клиент присылает все семь дней недели
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Save(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidConfig), errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/config - Invalid config: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /schedule/config - Failed to save config: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/config - Config saved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
