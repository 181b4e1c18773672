package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	apptRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/appointment"
	"github.com/paupet/PG-AppointmentService/internal/service/appointments/models"
)

// Service лайфсайкл-движок записей на груминг
//
// Владеет всеми переходами статуса записи и их побочными эффектами:
// завершение добавляет ровно один визит в историю клиента, неявка удаляет
// запись и увеличивает счётчик неявок. Каждый переход вместе со своими
// эффектами выполняется в одной сериализуемой транзакции, поэтому из двух
// конкурирующих переходов по одной записи выигрывает ровно один, а второй
// видит терминальное/отсутствующее состояние и получает ошибку
type Service struct {
	apptRepo      AppointmentRepository
	visitLedger   VisitLedger
	customerStore CustomerStore
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр лайфсайкл-движка
func NewService(
	apptRepo AppointmentRepository,
	visitLedger VisitLedger,
	customerStore CustomerStore,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:      apptRepo,
		visitLedger:   visitLedger,
		customerStore: customerStore,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// ListByDate получает все записи на указанную дату, отсортированные
// по времени начала
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByDate: fetching appointments for date=%s", date.Format(domain.DateFormat))

	appointments, err := s.apptRepo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: fetched %d appointments for date=%s", len(appointments), date.Format(domain.DateFormat))
	return models.FromDomainAppointmentList(appointments), nil
}

// Confirm подтверждает ожидающую запись (pending -> confirmed)
// Повторное подтверждение уже подтверждённой записи - no-op
// Завершённую запись подтвердить нельзя
func (s *Service) Confirm(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Confirm: confirming appointment id=%d", id)

	var result *domain.Appointment

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := s.getForTransition(txCtx, "Confirm", id)
		if err != nil {
			return err
		}

		if !appt.CanBeConfirmed() {
			s.logger.Warn("Confirm: appointment id=%d is immutable, status=%s", id, appt.Status)
			return fmt.Errorf("%w: cannot confirm appointment id=%d in status %s", ErrInvalidTransition, id, appt.Status)
		}

		if appt.Status == domain.StatusConfirmed {
			result = appt
			return nil
		}

		if err := s.apptRepo.UpdateStatus(txCtx, id, domain.StatusConfirmed); err != nil {
			s.logger.Error("Confirm: failed to update status for appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}

		appt.Status = domain.StatusConfirmed
		result = appt
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Confirm: appointment id=%d confirmed", id)
	return models.FromDomainAppointment(result), nil
}

// Complete завершает запись (pending|confirmed -> completed)
//
// Смена статуса и добавление визита в историю выполняются в одной
// сериализуемой транзакции: запись не может оказаться завершённой без
// визита, а визит не может появиться без завершения записи. Повторное
// завершение возвращает ErrAlreadyCompleted - второго визита не будет
func (s *Service) Complete(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Complete: completing appointment id=%d", id)

	var result *domain.Appointment

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := s.getForTransition(txCtx, "Complete", id)
		if err != nil {
			return err
		}

		if appt.IsCompleted() {
			s.logger.Warn("Complete: appointment id=%d is already completed", id)
			return fmt.Errorf("%w: appointment id=%d", ErrAlreadyCompleted, id)
		}

		if err := s.apptRepo.UpdateStatus(txCtx, id, domain.StatusCompleted); err != nil {
			s.logger.Error("Complete: failed to update status for appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
		}

		visit := &domain.Visit{
			CustomerID: appt.CustomerID,
			Service:    appt.Service,
			Price:      appt.Price,
			Date:       appt.Date,
		}

		if _, err := s.visitLedger.Append(txCtx, visit); err != nil {
			s.logger.Error("Complete: failed to append visit for appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Complete - failed to append visit: %v", ErrInternal, err)
		}

		appt.Status = domain.StatusCompleted
		result = appt
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Complete: appointment id=%d completed, visit recorded for customer id=%d",
		id, result.CustomerID)
	return models.FromDomainAppointment(result), nil
}

// MarkNoShow обрабатывает неявку клиента
//
// Запись удаляется (слот снова открывается для бронирования), а счётчик
// неявок клиента увеличивается ровно на 1 - оба эффекта в одной
// сериализуемой транзакции. Повторная обработка той же записи возвращает
// ErrAppointmentNotFound: счётчик не будет увеличен дважды
func (s *Service) MarkNoShow(ctx context.Context, id int64) (*models.NoShowResponse, error) {
	s.logger.Info("MarkNoShow: marking appointment id=%d as no-show", id)

	var result models.NoShowResponse

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := s.getForTransition(txCtx, "MarkNoShow", id)
		if err != nil {
			return err
		}

		if !appt.CanBeDeleted() {
			s.logger.Warn("MarkNoShow: appointment id=%d is immutable, status=%s", id, appt.Status)
			return fmt.Errorf("%w: cannot mark appointment id=%d in status %s as no-show", ErrInvalidTransition, id, appt.Status)
		}

		if err := s.apptRepo.Delete(txCtx, id); err != nil {
			s.logger.Error("MarkNoShow: failed to delete appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: MarkNoShow - repository error: %v", ErrInternal, err)
		}

		noShows, err := s.customerStore.AdjustNoShows(txCtx, appt.CustomerID, 1)
		if err != nil {
			s.logger.Error("MarkNoShow: failed to increment no-show counter for customer id=%d: %v",
				appt.CustomerID, err)
			return fmt.Errorf("%w: MarkNoShow - failed to adjust counter: %v", ErrInternal, err)
		}

		result = models.NoShowResponse{
			CustomerID: appt.CustomerID,
			NoShows:    noShows,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("MarkNoShow: appointment id=%d removed, customer id=%d no-show counter is now %d",
		id, result.CustomerID, result.NoShows)
	return &result, nil
}

// Cancel удаляет запись без побочных эффектов
// Обычная отмена, в отличие от неявки: счётчик и история не затрагиваются
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := s.getForTransition(txCtx, "Cancel", id)
		if err != nil {
			return err
		}

		if !appt.CanBeDeleted() {
			s.logger.Warn("Cancel: appointment id=%d is immutable, status=%s", id, appt.Status)
			return fmt.Errorf("%w: cannot cancel appointment id=%d in status %s", ErrInvalidTransition, id, appt.Status)
		}

		if err := s.apptRepo.Delete(txCtx, id); err != nil {
			s.logger.Error("Cancel: failed to delete appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Cancel: appointment id=%d cancelled", id)
	return nil
}

// getForTransition получает запись внутри транзакции (с блокировкой строки)
// и маппит отсутствие записи на ошибку сервиса
func (s *Service) getForTransition(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, fmt.Errorf("%w: appointment id=%d", ErrAppointmentNotFound, id)
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}
