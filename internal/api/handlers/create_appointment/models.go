package create_appointment

import (
	"time"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	createAppointment "github.com/paupet/PG-AppointmentService/internal/usecase/create_appointment"
	"github.com/paupet/PG-AppointmentService/pkg/types"
)

// NewCustomerInput данные нового клиента в HTTP запросе
type NewCustomerInput struct {
	PetName   string `json:"petName"`
	OwnerName string `json:"ownerName"`
	Breed     string `json:"breed,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerID  *int64            `json:"customerId,omitempty"`
	NewCustomer *NewCustomerInput `json:"newCustomer,omitempty"`
	Service     string            `json:"service"`
	Date        string            `json:"date"`      // "2026-09-15"
	StartTime   string            `json:"startTime"` // "10:00"
	Price       float64           `json:"price"`
	Status      string            `json:"status,omitempty"` // pending | confirmed
	FromPortal  bool              `json:"fromPortal"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	PetName    string  `json:"petName"`
	Service    string  `json:"service"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
	FromPortal bool    `json:"fromPortal"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	var newCustomer *createAppointment.NewCustomerInput
	if r.NewCustomer != nil {
		newCustomer = &createAppointment.NewCustomerInput{
			PetName:   r.NewCustomer.PetName,
			OwnerName: r.NewCustomer.OwnerName,
			Breed:     r.NewCustomer.Breed,
			Phone:     r.NewCustomer.Phone,
		}
	}

	return &createAppointment.Request{
		CustomerID:  r.CustomerID,
		NewCustomer: newCustomer,
		Service:     r.Service,
		Date:        date,
		StartTime:   startTime,
		Price:       r.Price,
		Status:      r.Status,
		FromPortal:  r.FromPortal,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		PetName:    resp.PetName,
		Service:    resp.Service,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		Price:      resp.Price,
		Status:     resp.Status,
		FromPortal: resp.FromPortal,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
