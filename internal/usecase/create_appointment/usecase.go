package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	customerRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/customer"
	scheduleRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/schedule"
)

// UseCase use case для создания записи на груминг
type UseCase struct {
	apptRepo     AppointmentRepository
	customerRepo CustomerRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	customerRepo CustomerRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		customerRepo: customerRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка занятости слота и вставка записи выполняются атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%q, date=%s, time=%s, fromPortal=%t",
		req.Service, req.Date.Format(domain.DateFormat), req.StartTime, req.FromPortal)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// Переменная для хранения результата
	var result *domain.Appointment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Загружаем конфигурацию расписания
		cfg, err := uc.scheduleRepo.Load(txCtx)
		if err != nil {
			if !errors.Is(err, scheduleRepo.ErrConfigNotFound) {
				uc.logger.Error("CreateAppointment: failed to load schedule config: %v", err)
				return fmt.Errorf("%w: failed to load schedule config: %v", ErrInternal, err)
			}
			cfg = domain.DefaultScheduleConfig()
			uc.logger.Info("CreateAppointment: no schedule config saved yet, using defaults")
		}

		// 3.2. Портальные записи проходят полную проверку расписания.
		// Записи, созданные персоналом, ограничены только занятостью слота:
		// салон может записать клиента вне каталога (особый случай, перенос)
		if req.FromPortal {
			if err := validateDate(req.Date, now, cfg.AnticipationDays); err != nil {
				uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
				return err
			}

			if !cfg.IsOpenOn(req.Date) {
				uc.logger.Warn("CreateAppointment: business is closed on %s", req.Date.Format(domain.DateFormat))
				return ErrClosedDay
			}

			if err := validateSlotInCatalogue(cfg, req.Date, req.StartTime); err != nil {
				uc.logger.Warn("CreateAppointment: time=%s not in slot catalogue for %s",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return err
			}
		}

		// 3.3. Определяем клиента: существующий или создаваемый на лету
		customer, err := uc.resolveCustomer(txCtx, req)
		if err != nil {
			return err
		}

		// 3.4. Получаем все записи на эту дату с блокировкой (FOR UPDATE)
		appointments, err := uc.apptRepo.ListByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		// 3.5. Проверяем занятость слота: любая сохранённая запись на это
		// время блокирует слот, независимо от статуса
		for _, appt := range appointments {
			if appt.StartTime == req.StartTime {
				uc.logger.Warn("CreateAppointment: slot %s on %s already taken by appointment id=%d",
					req.StartTime, req.Date.Format(domain.DateFormat), appt.ID)
				return ErrSlotTaken
			}
		}

		// 3.6. Создаем запись со снимком клички питомца
		status := domain.AppointmentStatus(req.Status)
		if req.Status == "" {
			status = domain.StatusPending
		}

		appt := &domain.Appointment{
			CustomerID: customer.ID,
			PetName:    customer.PetName,
			Service:    req.Service,
			Date:       req.Date,
			StartTime:  req.StartTime,
			Price:      req.Price,
			Status:     status,
			FromPortal: req.FromPortal,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:         result.ID,
		CustomerID: result.CustomerID,
		PetName:    result.PetName,
		Service:    result.Service,
		Date:       result.Date,
		StartTime:  result.StartTime,
		Price:      result.Price,
		Status:     string(result.Status),
		FromPortal: result.FromPortal,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

// resolveCustomer возвращает существующего клиента или создает нового
// в рамках той же транзакции, что и запись
func (uc *UseCase) resolveCustomer(ctx context.Context, req *Request) (*domain.Customer, error) {
	if req.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(ctx, *req.CustomerID)
		if err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				uc.logger.Warn("CreateAppointment: customer id=%d not found", *req.CustomerID)
				return nil, ErrCustomerNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get customer id=%d: %v", *req.CustomerID, err)
			return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}
		return customer, nil
	}

	customer := &domain.Customer{
		PetName:   req.NewCustomer.PetName,
		OwnerName: req.NewCustomer.OwnerName,
		Breed:     req.NewCustomer.Breed,
		Phone:     req.NewCustomer.Phone,
	}

	created, err := uc.customerRepo.Create(ctx, customer)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create customer: %v", err)
		return nil, fmt.Errorf("%w: failed to create customer: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created new customer id=%d (pet=%q)", created.ID, created.PetName)
	return created, nil
}
