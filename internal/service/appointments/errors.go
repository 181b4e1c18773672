package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	// (в том числе когда неявка по ней уже обработана и запись удалена)
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAlreadyCompleted возвращается при повторной попытке завершить запись
	// Гарантирует, что по одной записи не будет двух визитов в истории
	ErrAlreadyCompleted = errors.New("appointment already completed")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// Завершённые записи неизменяемы
	ErrInvalidTransition = errors.New("invalid appointment transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
