package add_visit

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/paupet/PG-AppointmentService/internal/api/handlers"
	"github.com/paupet/PG-AppointmentService/internal/domain"
	"github.com/paupet/PG-AppointmentService/internal/service/visits"
)

const (
	msgInvalidCustomerID  = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCustomerNotFound   = "клиент не найден"
	msgInvalidData        = "некорректные данные визита"
)

type Handler struct {
	service VisitService
	logger  Logger
}

func NewHandler(service VisitService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/customers/{customerId}/visits
//
// Ручное добавление визита в историю (бэкфилл услуг, оказанных без записи)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем customerId из URL
	vars := mux.Vars(r)
	customerIDStr := vars["customerId"]

	customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /customers/{id}/visits - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	// Декодируем body
	var req AddVisitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers/{id}/visits - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Парсим дату
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /customers/{id}/visits - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Добавляем визит
	visit, err := h.service.Append(r.Context(), customerID, req.Service, req.Price, date)
	if err != nil {
		switch {
		case errors.Is(err, visits.ErrCustomerNotFound):
			h.logger.Warn("POST /customers/{id}/visits - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, visits.ErrInvalidInput):
			h.logger.Warn("POST /customers/{id}/visits - Invalid data: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /customers/{id}/visits - Failed to add visit: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers/{id}/visits - Visit added successfully: visit_id=%d, customer_id=%d",
		visit.ID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainVisit(visit))
}
