package schedule

import "errors"

var (
	// ErrInvalidConfig возвращается, когда конфигурация расписания
	// не проходит валидацию (отсутствует день недели, неположительная
	// длительность слота, дубликат времени слота)
	ErrInvalidConfig = errors.New("invalid schedule config")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
