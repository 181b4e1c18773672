package visits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	customerRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/customer"
)

// Service сервис истории визитов
// Штатно визиты появляются при завершении записи лайфсайкл-движком;
// здесь живут чтение истории и ручной бэкфилл старых визитов
type Service struct {
	visitLedger   VisitLedger
	customerStore CustomerStore
	logger        Logger
}

// NewService создает новый экземпляр сервиса визитов
func NewService(visitLedger VisitLedger, customerStore CustomerStore, logger Logger) *Service {
	return &Service{
		visitLedger:   visitLedger,
		customerStore: customerStore,
		logger:        logger,
	}
}

// ListByCustomer получает историю визитов клиента, сначала новые
func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Visit, error) {
	s.logger.Info("ListByCustomer: fetching visits for customer id=%d", customerID)

	visits, err := s.visitLedger.ListByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("ListByCustomer: repository error for customer id=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: ListByCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCustomer: fetched %d visits for customer id=%d", len(visits), customerID)
	return visits, nil
}

// Append добавляет визит в историю клиента вручную (бэкфилл)
// Проверяет существование клиента; сами визиты неизменяемы после записи
func (s *Service) Append(ctx context.Context, customerID int64, service string, price float64, date time.Time) (*domain.Visit, error) {
	s.logger.Info("Append: recording visit for customer id=%d, service=%q", customerID, service)

	if service == "" {
		return nil, fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if len(service) > domain.MaxServiceLength {
		return nil, fmt.Errorf("%w: service is too long", ErrInvalidInput)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := s.customerStore.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Append: customer id=%d not found", customerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Append: failed to get customer id=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: Append - repository error: %v", ErrInternal, err)
	}

	visit, err := s.visitLedger.Append(ctx, &domain.Visit{
		CustomerID: customerID,
		Service:    service,
		Price:      price,
		Date:       date,
	})
	if err != nil {
		s.logger.Error("Append: failed to append visit for customer id=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: Append - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Append: visit id=%d recorded for customer id=%d", visit.ID, customerID)
	return visit, nil
}
