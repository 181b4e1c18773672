package get_customer_visits

import (
	"context"

	"github.com/paupet/PG-AppointmentService/internal/domain"
)

type VisitService interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Visit, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
