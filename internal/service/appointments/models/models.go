package models

import (
	"time"

	"github.com/paupet/PG-AppointmentService/internal/domain"
)

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customerId"`
	PetName    string  `json:"petName"`
	Service    string  `json:"service"`
	Date       string  `json:"date"`      // "2026-08-31"
	StartTime  string  `json:"startTime"` // "10:00"
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
	FromPortal bool    `json:"fromPortal"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// NoShowResponse результат обработки неявки
// Сама запись удалена, от неявки остаётся только счётчик клиента
type NoShowResponse struct {
	CustomerID int64 `json:"customerId"`
	NoShows    int   `json:"noShows"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		PetName:    a.PetName,
		Service:    a.Service,
		Date:       a.Date.Format(domain.DateFormat),
		StartTime:  a.StartTime.String(),
		Price:      a.Price,
		Status:     string(a.Status),
		FromPortal: a.FromPortal,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}
