package models

import (
	"time"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	"github.com/paupet/PG-AppointmentService/pkg/types"
)

// SlotInput слот в запросе на сохранение конфигурации
type SlotInput struct {
	StartTime       string `json:"startTime"` // "09:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// DayScheduleInput конфигурация одного дня недели в запросе
type DayScheduleInput struct {
	Open     bool        `json:"open"`
	OpensAt  string      `json:"opensAt"`
	ClosesAt string      `json:"closesAt"`
	Slots    []SlotInput `json:"slots"`
}

// SaveConfigRequest запрос на сохранение конфигурации расписания целиком
type SaveConfigRequest struct {
	BusinessName     string                      `json:"businessName"`
	WelcomeMessage   string                      `json:"welcomeMessage"`
	AnticipationDays int                         `json:"anticipationDays"`
	Weekdays         map[string]DayScheduleInput `json:"weekdays"`
}

// ToDomainConfig конвертирует запрос в domain модель
// Валидация формата времени происходит в сервисе, здесь только маппинг
func (r *SaveConfigRequest) ToDomainConfig() *domain.ScheduleConfig {
	weekdays := make(map[domain.Weekday]domain.DaySchedule, len(r.Weekdays))
	for key, day := range r.Weekdays {
		slots := make([]domain.Slot, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, domain.Slot{
				StartTime:       types.TimeString(slot.StartTime),
				DurationMinutes: slot.DurationMinutes,
			})
		}

		weekdays[domain.Weekday(key)] = domain.DaySchedule{
			Open:     day.Open,
			OpensAt:  types.TimeString(day.OpensAt),
			ClosesAt: types.TimeString(day.ClosesAt),
			Slots:    slots,
		}
	}

	return &domain.ScheduleConfig{
		BusinessName:     r.BusinessName,
		WelcomeMessage:   r.WelcomeMessage,
		AnticipationDays: r.AnticipationDays,
		Weekdays:         weekdays,
	}
}

// SlotResponse слот в ответе
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// DayScheduleResponse конфигурация одного дня недели в ответе
type DayScheduleResponse struct {
	Open     bool           `json:"open"`
	OpensAt  string         `json:"opensAt"`
	ClosesAt string         `json:"closesAt"`
	Slots    []SlotResponse `json:"slots"`
}

// ConfigResponse ответ с конфигурацией расписания
type ConfigResponse struct {
	BusinessName     string                         `json:"businessName"`
	WelcomeMessage   string                         `json:"welcomeMessage"`
	AnticipationDays int                            `json:"anticipationDays"`
	Weekdays         map[string]DayScheduleResponse `json:"weekdays"`
	UpdatedAt        time.Time                      `json:"updatedAt"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(cfg *domain.ScheduleConfig) *ConfigResponse {
	if cfg == nil {
		return nil
	}

	weekdays := make(map[string]DayScheduleResponse, len(cfg.Weekdays))
	for key, day := range cfg.Weekdays {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, SlotResponse{
				StartTime:       slot.StartTime.String(),
				DurationMinutes: slot.DurationMinutes,
			})
		}

		weekdays[string(key)] = DayScheduleResponse{
			Open:     day.Open,
			OpensAt:  day.OpensAt.String(),
			ClosesAt: day.ClosesAt.String(),
			Slots:    slots,
		}
	}

	return &ConfigResponse{
		BusinessName:     cfg.BusinessName,
		WelcomeMessage:   cfg.WelcomeMessage,
		AnticipationDays: cfg.AnticipationDays,
		Weekdays:         weekdays,
		UpdatedAt:        cfg.UpdatedAt,
	}
}

// GeneratedSlotsResponse результат генерации слотов
type GeneratedSlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
}
