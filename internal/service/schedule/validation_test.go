package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	"github.com/paupet/PG-AppointmentService/pkg/types"
)

func validTestConfig() *domain.ScheduleConfig {
	cfg := domain.DefaultScheduleConfig()
	cfg.Weekdays[domain.Monday] = domain.DaySchedule{
		Open:     true,
		OpensAt:  "09:00",
		ClosesAt: "18:00",
		Slots: []domain.Slot{
			{StartTime: "09:00", DurationMinutes: 60},
			{StartTime: "10:00", DurationMinutes: 60},
		},
	}
	return cfg
}

func TestValidateConfig_Valid(t *testing.T) {
	require.NoError(t, validateConfig(validTestConfig()))
}

func TestValidateConfig_MissingWeekday(t *testing.T) {
	cfg := validTestConfig()
	delete(cfg.Weekdays, domain.Sunday)

	err := validateConfig(cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "sunday")
}

func TestValidateConfig_AnticipationBounds(t *testing.T) {
	cfg := validTestConfig()

	cfg.AnticipationDays = 0
	require.ErrorIs(t, validateConfig(cfg), ErrInvalidConfig)

	cfg.AnticipationDays = domain.MaxAnticipationDays + 1
	require.ErrorIs(t, validateConfig(cfg), ErrInvalidConfig)

	cfg.AnticipationDays = domain.MinAnticipationDays
	require.NoError(t, validateConfig(cfg))
}

func TestValidateConfig_DuplicateSlotTime(t *testing.T) {
	cfg := validTestConfig()
	day := cfg.Weekdays[domain.Monday]
	day.Slots = append(day.Slots, domain.Slot{StartTime: "09:00", DurationMinutes: 30})
	cfg.Weekdays[domain.Monday] = day

	err := validateConfig(cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestValidateConfig_NonPositiveDuration(t *testing.T) {
	cfg := validTestConfig()
	day := cfg.Weekdays[domain.Monday]
	day.Slots = []domain.Slot{{StartTime: "09:00", DurationMinutes: 0}}
	cfg.Weekdays[domain.Monday] = day

	require.ErrorIs(t, validateConfig(cfg), ErrInvalidConfig)
}

func TestValidateConfig_InvalidSlotTime(t *testing.T) {
	cfg := validTestConfig()
	day := cfg.Weekdays[domain.Monday]
	day.Slots = []domain.Slot{{StartTime: "24:30", DurationMinutes: 60}}
	cfg.Weekdays[domain.Monday] = day

	require.ErrorIs(t, validateConfig(cfg), ErrInvalidConfig)
}

func TestValidateConfig_ClosedDayKeepsSlots(t *testing.T) {
	// Слоты закрытого дня сохраняются: конфигурация остаётся на месте,
	// а бронирование в этот день всё равно запрещено
	cfg := validTestConfig()
	cfg.Weekdays[domain.Sunday] = domain.DaySchedule{
		Open:  false,
		Slots: []domain.Slot{{StartTime: "12:00", DurationMinutes: 60}},
	}

	require.NoError(t, validateConfig(cfg))
}

func TestValidateConfig_OpenDayRequiresValidHours(t *testing.T) {
	cfg := validTestConfig()
	day := cfg.Weekdays[domain.Monday]
	day.OpensAt = types.TimeString("nine")
	cfg.Weekdays[domain.Monday] = day

	require.ErrorIs(t, validateConfig(cfg), ErrInvalidConfig)
}
