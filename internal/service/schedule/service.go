package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	scheduleRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/schedule"
	"github.com/paupet/PG-AppointmentService/internal/service/schedule/models"
	"github.com/paupet/PG-AppointmentService/pkg/types"
)

// Service сервис конфигурации расписания
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Get возвращает текущую конфигурацию расписания
// Если конфигурация ещё не сохранялась, возвращает дефолтную
func (s *Service) Get(ctx context.Context) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching schedule config")

	cfg, err := s.scheduleRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			s.logger.Info("Get: no schedule config saved yet, returning defaults")
			return models.FromDomainConfig(domain.DefaultScheduleConfig()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// Save валидирует и сохраняет конфигурацию расписания целиком
// Частичного сохранения нет: либо записывается вся конфигурация,
// либо ничего (upsert единственной строки)
func (s *Service) Save(ctx context.Context, req *models.SaveConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Save: saving schedule config, anticipation=%d days", req.AnticipationDays)

	cfg := req.ToDomainConfig()

	if err := validateConfig(cfg); err != nil {
		s.logger.Warn("Save: validation failed: %v", err)
		return nil, err
	}

	if err := s.scheduleRepo.Save(ctx, cfg); err != nil {
		s.logger.Error("Save: repository error: %v", err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: schedule config saved")
	return models.FromDomainConfig(cfg), nil
}

// GenerateSlotsForRange генерирует каталог слотов для диапазона времени
// Чистая операция: результат не сохраняется и не сливается с уже
// настроенными слотами - это делает редактор конфигурации на своей стороне
func (s *Service) GenerateSlotsForRange(ctx context.Context, startTime, endTime string, durationMinutes int) (*models.GeneratedSlotsResponse, error) {
	s.logger.Info("GenerateSlotsForRange: start=%s, end=%s, duration=%d", startTime, endTime, durationMinutes)

	slots, err := GenerateSlots(types.TimeString(startTime), types.TimeString(endTime), durationMinutes)
	if err != nil {
		s.logger.Warn("GenerateSlotsForRange: %v", err)
		return nil, err
	}

	resp := &models.GeneratedSlotsResponse{
		Slots: make([]models.SlotResponse, 0, len(slots)),
	}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, models.SlotResponse{
			StartTime:       slot.String(),
			DurationMinutes: durationMinutes,
		})
	}

	s.logger.Info("GenerateSlotsForRange: generated %d slots", len(resp.Slots))
	return resp, nil
}
