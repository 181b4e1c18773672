package add_visit

import (
	"time"

	"github.com/paupet/PG-AppointmentService/internal/domain"
)

// AddVisitRequest HTTP request model
type AddVisitRequest struct {
	Service string  `json:"service"`
	Price   float64 `json:"price"`
	Date    string  `json:"date"` // "2026-08-20"
}

// VisitResponse HTTP response model
type VisitResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	Service    string  `json:"service"`
	Price      float64 `json:"price"`
	Date       string  `json:"date"`
	CreatedAt  string  `json:"createdAt"`
}

// FromDomainVisit конвертирует domain модель в HTTP response
func FromDomainVisit(v *domain.Visit) *VisitResponse {
	return &VisitResponse{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		Service:    v.Service,
		Price:      v.Price,
		Date:       v.Date.Format(domain.DateFormat),
		CreatedAt:  v.CreatedAt.Format(time.RFC3339),
	}
}
