package visits

import (
	"context"

	"github.com/paupet/PG-AppointmentService/internal/domain"
)

// VisitLedger интерфейс append-only журнала визитов
type VisitLedger interface {
	Append(ctx context.Context, visit *domain.Visit) (*domain.Visit, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Visit, error)
}

// CustomerStore интерфейс хранилища клиентов
type CustomerStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
