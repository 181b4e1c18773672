package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	scheduleRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/schedule"
	"github.com/paupet/PG-AppointmentService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeApptRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeApptRepo) ListByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeScheduleRepo struct {
	cfg *domain.ScheduleConfig
}

func (f *fakeScheduleRepo) Load(_ context.Context) (*domain.ScheduleConfig, error) {
	if f.cfg == nil {
		return nil, scheduleRepo.ErrConfigNotFound
	}
	return f.cfg, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// Пятница 2026-09-04, "сейчас" - понедельник той же недели
var (
	testNow  = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	friday   = time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
)

func testConfig() *domain.ScheduleConfig {
	cfg := domain.DefaultScheduleConfig()
	cfg.AnticipationDays = 30
	cfg.Weekdays[domain.Friday] = domain.DaySchedule{
		Open:     true,
		OpensAt:  "09:00",
		ClosesAt: "18:00",
		Slots: []domain.Slot{
			// Намеренно не по порядку: каталог сортируется при выдаче
			{StartTime: "10:00", DurationMinutes: 60},
			{StartTime: "09:00", DurationMinutes: 60},
		},
	}
	return cfg
}

func newTestUseCase(apptRepo AppointmentRepository, schedRepo ScheduleRepository, now time.Time) *UseCase {
	uc := NewUseCase(apptRepo, schedRepo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_AllSlotsFree(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{}, &fakeScheduleRepo{cfg: testConfig()}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: friday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	// Отсортировано по времени начала
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[1].StartTime)
}

func TestExecute_TakenSlotExcluded(t *testing.T) {
	appts := &fakeApptRepo{
		appointments: []*domain.Appointment{
			{ID: 1, Date: friday, StartTime: "09:00", Status: domain.StatusPending},
		},
	}
	uc := newTestUseCase(appts, &fakeScheduleRepo{cfg: testConfig()}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: friday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].StartTime)
}

func TestExecute_CompletedAppointmentStillBlocksSlot(t *testing.T) {
	appts := &fakeApptRepo{
		appointments: []*domain.Appointment{
			{ID: 1, Date: friday, StartTime: "10:00", Status: domain.StatusCompleted},
		},
	}
	uc := newTestUseCase(appts, &fakeScheduleRepo{cfg: testConfig()}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: friday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
}

func TestExecute_ClosedDayIsEmpty(t *testing.T) {
	// Воскресенье закрыто в дефолтной конфигурации
	uc := newTestUseCase(&fakeApptRepo{}, &fakeScheduleRepo{cfg: testConfig()}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDateIsEmpty(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{}, &fakeScheduleRepo{cfg: testConfig()}, testNow)

	yesterday := testNow.AddDate(0, 0, -1)
	resp, err := uc.Execute(context.Background(), &Request{Date: yesterday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BookingWindow(t *testing.T) {
	cfg := testConfig()
	cfg.AnticipationDays = 4
	cfg.Weekdays[domain.Saturday] = domain.DaySchedule{
		Open:     true,
		OpensAt:  "09:00",
		ClosesAt: "14:00",
		Slots:    []domain.Slot{{StartTime: "09:00", DurationMinutes: 60}},
	}
	uc := newTestUseCase(&fakeApptRepo{}, &fakeScheduleRepo{cfg: cfg}, testNow)

	// Пятница = сегодня + 4 дня: последний день окна, включительно
	resp, err := uc.Execute(context.Background(), &Request{Date: friday})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)

	// Суббота = сегодня + 5 дней: за пределами окна
	resp, err = uc.Execute(context.Background(), &Request{Date: saturday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TodayIsInsideWindow(t *testing.T) {
	cfg := testConfig()
	cfg.Weekdays[domain.Monday] = domain.DaySchedule{
		Open:     true,
		OpensAt:  "09:00",
		ClosesAt: "18:00",
		Slots:    []domain.Slot{{StartTime: "15:00", DurationMinutes: 60}},
	}
	uc := newTestUseCase(&fakeApptRepo{}, &fakeScheduleRepo{cfg: cfg}, testNow)

	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: today})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 1)
}

func TestExecute_NoConfigUsesDefaults(t *testing.T) {
	// Дефолтная конфигурация - пустые каталоги слотов
	uc := newTestUseCase(&fakeApptRepo{}, &fakeScheduleRepo{cfg: nil}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: friday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ZeroDateFails(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{}, &fakeScheduleRepo{cfg: testConfig()}, testNow)

	_, err := uc.Execute(context.Background(), &Request{})
	require.ErrorIs(t, err, ErrInvalidInput)
}
