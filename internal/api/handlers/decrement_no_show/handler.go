package decrement_no_show

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/paupet/PG-AppointmentService/internal/api/handlers"
	"github.com/paupet/PG-AppointmentService/internal/service/customers"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgCustomerNotFound  = "клиент не найден"
)

// NoShowsResponse HTTP модель счётчика неявок
type NoShowsResponse struct {
	CustomerID int64 `json:"customerId"`
	NoShows    int   `json:"noShows"`
}

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/customers/{customerId}/no-shows/decrement
//
// Ручная коррекция счётчика неявок (прощение). На нуле операция
// ничего не меняет - счётчик не уходит в минус
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем customerId из URL
	vars := mux.Vars(r)
	customerIDStr := vars["customerId"]

	customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /customers/{id}/no-shows/decrement - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	// Уменьшаем счётчик
	noShows, err := h.service.DecrementNoShows(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("POST /customers/{id}/no-shows/decrement - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("POST /customers/{id}/no-shows/decrement - Failed to decrement: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers/{id}/no-shows/decrement - Counter decremented: customer_id=%d, no_shows=%d",
		customerID, noShows)
	handlers.RespondJSON(w, http.StatusOK, NoShowsResponse{CustomerID: customerID, NoShows: noShows})
}
