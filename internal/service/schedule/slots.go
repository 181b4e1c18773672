package schedule

import (
	"fmt"

	"github.com/paupet/PG-AppointmentService/pkg/types"
)

// GenerateSlots генерирует последовательность времён слотов от startTime
// с шагом durationMinutes
//
// Возвращаются все времена t, для которых t + duration <= endTime; слот,
// выходящий за endTime, не создаётся (усечённых слотов не бывает).
// startTime >= endTime - легитимный результат "слотов нет", не ошибка.
//
// Функция чистая: она не сливает результат с уже настроенными слотами,
// объединение по времени - ответственность редактора конфигурации
func GenerateSlots(startTime, endTime types.TimeString, durationMinutes int) ([]types.TimeString, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be a positive number of minutes", ErrInvalidInput)
	}
	if err := startTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if err := endTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	slots := make([]types.TimeString, 0)
	current := startTime

	for current.IsBefore(endTime) {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// Конец слота вышел за границу суток
			break
		}
		if slotEnd.IsAfter(endTime) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots, nil
}
