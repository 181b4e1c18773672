package customers

import (
	"context"

	"github.com/paupet/PG-AppointmentService/internal/domain"
)

// CustomerStore интерфейс хранилища клиентов
type CustomerStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	AdjustNoShows(ctx context.Context, id int64, delta int) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
