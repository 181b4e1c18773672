package update_schedule_config

import (
	"context"

	"github.com/paupet/PG-AppointmentService/internal/service/schedule/models"
)

type ScheduleService interface {
	Save(ctx context.Context, req *models.SaveConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
