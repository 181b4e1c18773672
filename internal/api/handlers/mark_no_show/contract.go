package mark_no_show

import (
	"context"

	"github.com/paupet/PG-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	MarkNoShow(ctx context.Context, id int64) (*models.NoShowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
