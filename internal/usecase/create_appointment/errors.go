package create_appointment

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_appointment: customer not found")

	// ErrInvalidDate возвращается при некорректной дате записи (в прошлом)
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает окно anticipationDays
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrClosedDay возвращается, когда салон закрыт в указанный день
	ErrClosedDay = errors.New("create_appointment: business is closed on this date")

	// ErrSlotNotInCatalogue возвращается, когда время не совпадает ни с одним слотом расписания
	ErrSlotNotInCatalogue = errors.New("create_appointment: time does not match any configured slot")

	// ErrSlotTaken возвращается, когда слот уже занят другой записью
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
