package schedule

import (
	"context"

	"github.com/paupet/PG-AppointmentService/internal/domain"
)

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	Load(ctx context.Context) (*domain.ScheduleConfig, error)
	Save(ctx context.Context, cfg *domain.ScheduleConfig) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
