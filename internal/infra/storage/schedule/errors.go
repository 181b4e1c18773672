package schedule

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация расписания не найдена
	ErrConfigNotFound = errors.New("schedule.repository: schedule config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrEncodeWeekdays возвращается при ошибке сериализации расписания по дням
	ErrEncodeWeekdays = errors.New("schedule.repository: failed to encode weekdays")

	// ErrDecodeWeekdays возвращается при ошибке десериализации расписания по дням
	ErrDecodeWeekdays = errors.New("schedule.repository: failed to decode weekdays")
)
