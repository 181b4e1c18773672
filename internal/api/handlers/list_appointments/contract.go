package list_appointments

import (
	"context"
	"time"

	"github.com/paupet/PG-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	ListByDate(ctx context.Context, date time.Time) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
