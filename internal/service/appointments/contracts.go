package appointments

import (
	"context"
	"time"

	"github.com/paupet/PG-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id int64) error
}

// VisitLedger интерфейс append-only журнала визитов
type VisitLedger interface {
	Append(ctx context.Context, visit *domain.Visit) (*domain.Visit, error)
}

// CustomerStore интерфейс хранилища клиентов
// Лайфсайкл-движок только корректирует счётчик неявок
type CustomerStore interface {
	AdjustNoShows(ctx context.Context, id int64, delta int) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
// Переходы записи и их побочные эффекты выполняются как единое целое
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
