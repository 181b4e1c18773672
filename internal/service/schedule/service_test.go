package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	scheduleRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/schedule"
	"github.com/paupet/PG-AppointmentService/internal/service/schedule/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeScheduleRepo struct {
	cfg *domain.ScheduleConfig
}

func (f *fakeScheduleRepo) Load(_ context.Context) (*domain.ScheduleConfig, error) {
	if f.cfg == nil {
		return nil, scheduleRepo.ErrConfigNotFound
	}
	return f.cfg, nil
}

func (f *fakeScheduleRepo) Save(_ context.Context, cfg *domain.ScheduleConfig) error {
	f.cfg = cfg
	return nil
}

func saveRequest() *models.SaveConfigRequest {
	weekdays := make(map[string]models.DayScheduleInput, len(domain.AllWeekdays))
	for _, day := range domain.AllWeekdays {
		weekdays[string(day)] = models.DayScheduleInput{
			Open:     day != domain.Sunday,
			OpensAt:  "09:00",
			ClosesAt: "18:00",
			Slots:    []models.SlotInput{},
		}
	}
	weekdays[string(domain.Friday)] = models.DayScheduleInput{
		Open:     true,
		OpensAt:  "09:00",
		ClosesAt: "18:00",
		Slots: []models.SlotInput{
			{StartTime: "09:00", DurationMinutes: 60},
			{StartTime: "10:00", DurationMinutes: 60},
		},
	}

	return &models.SaveConfigRequest{
		BusinessName:     "Paupet Peluquería",
		WelcomeMessage:   "¡Hola! Reservá tu turno",
		AnticipationDays: 30,
		Weekdays:         weekdays,
	}
}

func TestGet_NoConfigReturnsDefaults(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultAnticipationDays, resp.AnticipationDays)
	assert.Len(t, resp.Weekdays, 7)
	assert.False(t, resp.Weekdays["sunday"].Open)
}

func TestSave_RoundTrip(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Save(context.Background(), saveRequest())
	require.NoError(t, err)

	assert.Equal(t, "Paupet Peluquería", resp.BusinessName)
	require.NotNil(t, repo.cfg)
	assert.Len(t, repo.cfg.Weekdays[domain.Friday].Slots, 2)

	// Сохранённая конфигурация возвращается при чтении
	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, got.AnticipationDays)
	assert.Len(t, got.Weekdays["friday"].Slots, 2)
}

func TestSave_InvalidConfigRejected(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, nopLogger{})

	req := saveRequest()
	delete(req.Weekdays, "monday")

	_, err := svc.Save(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, repo.cfg)
}

func TestGenerateSlotsForRange(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	resp, err := svc.GenerateSlotsForRange(context.Background(), "09:00", "11:00", 30)
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, "10:30", resp.Slots[3].StartTime)
	assert.Equal(t, 30, resp.Slots[0].DurationMinutes)
}
