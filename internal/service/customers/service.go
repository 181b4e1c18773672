package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	customerRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/customer"
)

// Service сервис учёта посещаемости клиентов
// Счётчик неявок увеличивается только лайфсайкл-движком записей;
// здесь живёт административная коррекция (снятие ошибочной отметки)
type Service struct {
	customerStore CustomerStore
	logger        Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerStore CustomerStore, logger Logger) *Service {
	return &Service{
		customerStore: customerStore,
		logger:        logger,
	}
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	s.logger.Info("GetByID: fetching customer id=%d", id)

	customer, err := s.customerStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return customer, nil
}

// DecrementNoShows уменьшает счётчик неявок клиента на 1
// Счётчик не опускается ниже нуля: декремент нулевого счётчика - no-op,
// а не ошибка. Возвращает новое значение счётчика
func (s *Service) DecrementNoShows(ctx context.Context, id int64) (int, error) {
	s.logger.Info("DecrementNoShows: decrementing no-show counter for customer id=%d", id)

	noShows, err := s.customerStore.AdjustNoShows(ctx, id, -1)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("DecrementNoShows: customer id=%d not found", id)
			return 0, ErrCustomerNotFound
		}
		s.logger.Error("DecrementNoShows: repository error for customer id=%d: %v", id, err)
		return 0, fmt.Errorf("%w: DecrementNoShows - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DecrementNoShows: customer id=%d no-show counter is now %d", id, noShows)
	return noShows, nil
}
