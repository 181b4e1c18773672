package generate_slots

import (
	"context"

	"github.com/paupet/PG-AppointmentService/internal/service/schedule/models"
)

type ScheduleService interface {
	GenerateSlotsForRange(ctx context.Context, startTime, endTime string, durationMinutes int) (*models.GeneratedSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
