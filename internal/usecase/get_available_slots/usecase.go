package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	scheduleRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/schedule"
)

// UseCase use case получения доступных для бронирования слотов
//
// Результат консультативный, а не блокирующий: слот, показанный как
// свободный, может быть занят конкурентным бронированием до того, как
// вызывающая сторона закоммитит своё. Настоящая защита от конфликта -
// повторная проверка в транзакции создания записи
type UseCase struct {
	apptRepo     AppointmentRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Загружаем конфигурацию расписания
	cfg, err := uc.scheduleRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			uc.logger.Info("GetAvailableSlots: no schedule config saved yet, using defaults")
			cfg = domain.DefaultScheduleConfig()
		} else {
			uc.logger.Error("GetAvailableSlots: failed to load schedule config: %v", err)
			return nil, fmt.Errorf("%w: failed to load schedule config: %v", ErrInternal, err)
		}
	}

	// 4. Получаем все записи на эту дату
	appointments, err := uc.apptRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 5. Вычисляем доступные слоты
	slots := resolveAvailableSlots(cfg, req.Date, appointments, now)

	uc.logger.Info("GetAvailableSlots: %d slots available for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
