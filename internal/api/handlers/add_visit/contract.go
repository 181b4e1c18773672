package add_visit

import (
	"context"
	"time"

	"github.com/paupet/PG-AppointmentService/internal/domain"
)

type VisitService interface {
	Append(ctx context.Context, customerID int64, service string, price float64, date time.Time) (*domain.Visit, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
