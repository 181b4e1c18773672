package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	"github.com/paupet/PG-AppointmentService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID == nil && req.NewCustomer == nil {
		return fmt.Errorf("%w: either customerID or newCustomer is required", ErrInvalidInput)
	}

	if req.CustomerID != nil && req.NewCustomer != nil {
		return fmt.Errorf("%w: customerID and newCustomer are mutually exclusive", ErrInvalidInput)
	}

	if req.CustomerID != nil && *req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.NewCustomer != nil {
		if err := validateNewCustomer(req.NewCustomer); err != nil {
			return err
		}
	}

	if strings.TrimSpace(req.Service) == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if len(req.Service) > domain.MaxServiceLength {
		return fmt.Errorf("%w: service must be at most %d characters", ErrInvalidInput, domain.MaxServiceLength)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Начальный статус может быть только pending или confirmed
	if req.Status != "" && !domain.IsValidEntryStatus(domain.AppointmentStatus(req.Status)) {
		return fmt.Errorf("%w: status must be pending or confirmed", ErrInvalidInput)
	}

	return nil
}

// validateNewCustomer валидирует данные нового клиента
func validateNewCustomer(input *NewCustomerInput) error {
	if strings.TrimSpace(input.PetName) == "" {
		return fmt.Errorf("%w: petName is required", ErrInvalidInput)
	}

	if len(input.PetName) > domain.MaxPetNameLength {
		return fmt.Errorf("%w: petName must be at most %d characters", ErrInvalidInput, domain.MaxPetNameLength)
	}

	if strings.TrimSpace(input.OwnerName) == "" {
		return fmt.Errorf("%w: ownerName is required", ErrInvalidInput)
	}

	if len(input.OwnerName) > domain.MaxOwnerNameLength {
		return fmt.Errorf("%w: ownerName must be at most %d characters", ErrInvalidInput, domain.MaxOwnerNameLength)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования
func validateDate(apptDate time.Time, now time.Time, anticipationDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(apptDate, now) {
		return ErrInvalidDate
	}

	// Проверяем, что дата не превышает окно anticipationDays
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, anticipationDays)

	apptDateOnly := time.Date(apptDate.Year(), apptDate.Month(), apptDate.Day(), 0, 0, 0, 0, apptDate.Location())

	if apptDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, anticipationDays)
	}

	return nil
}

// validateSlotInCatalogue проверяет, что время совпадает с одним из слотов расписания
func validateSlotInCatalogue(cfg *domain.ScheduleConfig, date time.Time, startTime types.TimeString) error {
	for _, slot := range cfg.SlotsForDate(date) {
		if slot.StartTime == startTime {
			return nil
		}
	}
	return ErrSlotNotInCatalogue
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
