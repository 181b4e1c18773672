package get_customer_visits

import (
	"time"

	"github.com/paupet/PG-AppointmentService/internal/domain"
)

// VisitResponse HTTP модель одного визита
type VisitResponse struct {
	ID        int64   `json:"id"`
	Service   string  `json:"service"`
	Price     float64 `json:"price"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"createdAt"`
}

// VisitListResponse HTTP модель истории визитов
type VisitListResponse struct {
	CustomerID int64           `json:"customerId"`
	Visits     []VisitResponse `json:"visits"`
}

// FromDomainVisits конвертирует domain модели в HTTP response
func FromDomainVisits(customerID int64, visits []*domain.Visit) *VisitListResponse {
	resp := &VisitListResponse{
		CustomerID: customerID,
		Visits:     make([]VisitResponse, 0, len(visits)),
	}

	for _, v := range visits {
		resp.Visits = append(resp.Visits, VisitResponse{
			ID:        v.ID,
			Service:   v.Service,
			Price:     v.Price,
			Date:      v.Date.Format(domain.DateFormat),
			CreatedAt: v.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp
}
