package schedule

import (
	"fmt"

	"github.com/paupet/PG-AppointmentService/internal/domain"
)

// validateConfig проверяет конфигурацию расписания перед сохранением
//
// Правила:
// - присутствуют все 7 дней недели (набор фиксирован и исчерпывающий)
// - длительность каждого слота - положительное число минут
// - в пределах одного дня нет двух слотов с одинаковым временем
//
// Слоты закрытого дня и слоты вне часов работы допустимы: список слотов -
// фактический источник истины для бронирования, часы работы информативны
func validateConfig(cfg *domain.ScheduleConfig) error {
	if cfg.AnticipationDays < domain.MinAnticipationDays || cfg.AnticipationDays > domain.MaxAnticipationDays {
		return fmt.Errorf("%w: anticipation days must be between %d and %d",
			ErrInvalidConfig, domain.MinAnticipationDays, domain.MaxAnticipationDays)
	}

	for _, weekday := range domain.AllWeekdays {
		day, ok := cfg.Weekdays[weekday]
		if !ok {
			return fmt.Errorf("%w: missing weekday %q", ErrInvalidConfig, weekday)
		}

		seen := make(map[string]struct{}, len(day.Slots))
		for _, slot := range day.Slots {
			if err := slot.StartTime.Validate(); err != nil {
				return fmt.Errorf("%w: %s: invalid slot time: %v", ErrInvalidConfig, weekday, err)
			}
			if slot.DurationMinutes <= 0 {
				return fmt.Errorf("%w: %s: slot %s duration must be positive",
					ErrInvalidConfig, weekday, slot.StartTime)
			}

			key := slot.StartTime.String()
			if _, dup := seen[key]; dup {
				return fmt.Errorf("%w: %s: duplicate slot time %s", ErrInvalidConfig, weekday, slot.StartTime)
			}
			seen[key] = struct{}{}
		}

		if day.Open {
			if err := day.OpensAt.Validate(); err != nil {
				return fmt.Errorf("%w: %s: invalid opening time: %v", ErrInvalidConfig, weekday, err)
			}
			if err := day.ClosesAt.Validate(); err != nil {
				return fmt.Errorf("%w: %s: invalid closing time: %v", ErrInvalidConfig, weekday, err)
			}
		}
	}

	return nil
}
