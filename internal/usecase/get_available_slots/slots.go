package get_available_slots

import (
	"time"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	"github.com/paupet/PG-AppointmentService/pkg/types"
)

// resolveAvailableSlots вычисляет доступные для бронирования слоты на дату
//
// Алгоритм:
// 1. Закрытый день - пустой результат, каталог слотов не важен
// 2. Дата вне окна [сегодня, сегодня + anticipationDays] - пустой результат;
//    окно включительно с обеих сторон и считается целыми календарными днями
// 3. Иначе берём каталог слотов этого дня недели (по возрастанию времени)
// 4. Убираем слоты, время которых совпадает со временем существующей записи
//    на эту дату. Блокируют слот pending, confirmed и completed записи
//    (completed занимала ресурс). Обработанная неявка удалена из хранилища
//    и слот намеренно открывается снова
func resolveAvailableSlots(
	cfg *domain.ScheduleConfig,
	date time.Time,
	appointments []*domain.Appointment,
	now time.Time,
) []Slot {
	if !cfg.IsOpenOn(date) {
		return []Slot{}
	}

	if isDateInPast(date, now) || isDateBeyondWindow(date, now, cfg.AnticipationDays) {
		return []Slot{}
	}

	taken := make(map[types.TimeString]struct{}, len(appointments))
	for _, appt := range appointments {
		taken[appt.StartTime] = struct{}{}
	}

	catalogue := cfg.SlotsForDate(date)
	available := make([]Slot, 0, len(catalogue))
	for _, slot := range catalogue {
		if _, occupied := taken[slot.StartTime]; occupied {
			continue
		}
		available = append(available, Slot{
			StartTime:       slot.StartTime,
			DurationMinutes: slot.DurationMinutes,
		})
	}

	return available
}

// isDateInPast проверяет, что дата раньше сегодняшнего календарного дня
func isDateInPast(date, now time.Time) bool {
	return truncateToDay(date).Before(truncateToDay(now))
}

// isDateBeyondWindow проверяет, что дата строго позже последнего дня
// окна бронирования (сегодня + anticipationDays)
func isDateBeyondWindow(date, now time.Time, anticipationDays int) bool {
	maxDate := truncateToDay(now).AddDate(0, 0, anticipationDays)
	return truncateToDay(date).After(maxDate)
}

// truncateToDay обнуляет время, оставляя только календарную дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
