package get_available_slots

import (
	"time"

	"github.com/paupet/PG-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
// Слоты отсортированы по времени начала - в этом порядке они
// показываются конечному пользователю
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Список доступных слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
}
