package get_customer

import (
	"context"

	"github.com/paupet/PG-AppointmentService/internal/domain"
)

type CustomerService interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
