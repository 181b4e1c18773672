package get_customer

import (
	"time"

	"github.com/paupet/PG-AppointmentService/internal/domain"
)

// CustomerResponse HTTP модель клиента
type CustomerResponse struct {
	ID        int64  `json:"id"`
	PetName   string `json:"petName"`
	OwnerName string `json:"ownerName"`
	Breed     string `json:"breed,omitempty"`
	Phone     string `json:"phone,omitempty"`
	NoShows   int    `json:"noShows"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomainCustomer конвертирует domain модель в HTTP response
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		PetName:   c.PetName,
		OwnerName: c.OwnerName,
		Breed:     c.Breed,
		Phone:     c.Phone,
		NoShows:   c.NoShows,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
