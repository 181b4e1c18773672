package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	customerRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/customer"
	scheduleRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/schedule"
	"github.com/paupet/PG-AppointmentService/pkg/ptr"
	"github.com/paupet/PG-AppointmentService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeApptRepo struct {
	appointments []*domain.Appointment
	nextID       int64
}

func (f *fakeApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	created := *appt
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.appointments = append(f.appointments, &created)
	return &created, nil
}

func (f *fakeApptRepo) ListByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.appointments {
		if appt.Date.Equal(date) {
			result = append(result, appt)
		}
	}
	return result, nil
}

type fakeCustomerRepo struct {
	customers map[int64]*domain.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[int64]*domain.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	f.nextID++
	created := *customer
	created.ID = f.nextID
	f.customers[created.ID] = &created
	return &created, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return customer, nil
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

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

var (
	testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	friday  = time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	sunday  = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
)

func testConfig() *domain.ScheduleConfig {
	cfg := domain.DefaultScheduleConfig()
	cfg.Weekdays[domain.Friday] = domain.DaySchedule{
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

type testEnv struct {
	appts     *fakeApptRepo
	customers *fakeCustomerRepo
	uc        *UseCase
}

func newTestEnv(cfg *domain.ScheduleConfig) *testEnv {
	appts := &fakeApptRepo{}
	customers := newFakeCustomerRepo()
	customers.customers[7] = &domain.Customer{ID: 7, PetName: "Rocky", OwnerName: "Ana"}

	uc := NewUseCase(appts, customers, &fakeScheduleRepo{cfg: cfg}, passthroughTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}

	return &testEnv{appts: appts, customers: customers, uc: uc}
}

func validRequest() *Request {
	return &Request{
		CustomerID: ptr.Ptr(int64(7)),
		Service:    "Baño y corte",
		Date:       friday,
		StartTime:  "10:00",
		Price:      25.0,
		FromPortal: true,
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	env := newTestEnv(testConfig())

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.CustomerID)
	assert.Equal(t, "Rocky", resp.PetName) // снимок клички на момент создания
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.True(t, resp.FromPortal)
	require.Len(t, env.appts.appointments, 1)
}

func TestExecute_EntryStatusConfirmed(t *testing.T) {
	env := newTestEnv(testConfig())

	req := validRequest()
	req.Status = "confirmed"

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_CompletedEntryStatusRejected(t *testing.T) {
	env := newTestEnv(testConfig())

	req := validRequest()
	req.Status = "completed"

	_, err := env.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SlotTaken(t *testing.T) {
	env := newTestEnv(testConfig())

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Второе бронирование того же слота
	_, err = env.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, env.appts.appointments, 1)
}

func TestExecute_OtherSlotStillFree(t *testing.T) {
	env := newTestEnv(testConfig())

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.StartTime = "09:00"
	_, err = env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, env.appts.appointments, 2)
}

func TestExecute_InlineCustomerCreation(t *testing.T) {
	env := newTestEnv(testConfig())

	req := validRequest()
	req.CustomerID = nil
	req.NewCustomer = &NewCustomerInput{
		PetName:   "Luna",
		OwnerName: "Carlos",
		Breed:     "Caniche",
		Phone:     "+54 11 5555-0000",
	}

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Клиент создан в той же операции
	customer, ok := env.customers.customers[resp.CustomerID]
	require.True(t, ok)
	assert.Equal(t, "Luna", customer.PetName)
	assert.Equal(t, "Luna", resp.PetName)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	env := newTestEnv(testConfig())

	req := validRequest()
	req.CustomerID = ptr.Ptr(int64(99))

	_, err := env.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_PortalClosedDay(t *testing.T) {
	env := newTestEnv(testConfig())

	req := validRequest()
	req.Date = sunday

	_, err := env.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrClosedDay)
}

func TestExecute_PortalPastDate(t *testing.T) {
	env := newTestEnv(testConfig())

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -7)

	_, err := env.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_PortalBeyondWindow(t *testing.T) {
	cfg := testConfig()
	cfg.AnticipationDays = 2
	env := newTestEnv(cfg)

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_PortalSlotNotInCatalogue(t *testing.T) {
	env := newTestEnv(testConfig())

	req := validRequest()
	req.StartTime = "11:30"

	_, err := env.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotNotInCatalogue)
}

func TestExecute_StaffBypassesScheduleChecks(t *testing.T) {
	// Персонал может записать клиента вне каталога и вне окна,
	// но занятость слота проверяется всегда
	env := newTestEnv(testConfig())

	req := validRequest()
	req.FromPortal = false
	req.StartTime = "11:30"

	_, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	_, err = env.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ValidationErrors(t *testing.T) {
	env := newTestEnv(testConfig())

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"нет клиента", func(req *Request) { req.CustomerID = nil }},
		{"оба способа указать клиента", func(req *Request) {
			req.NewCustomer = &NewCustomerInput{PetName: "Luna", OwnerName: "Carlos"}
		}},
		{"пустая услуга", func(req *Request) { req.Service = "  " }},
		{"отрицательная цена", func(req *Request) { req.Price = -1 }},
		{"нулевая дата", func(req *Request) { req.Date = time.Time{} }},
		{"пустое время", func(req *Request) { req.StartTime = "" }},
		{"кривое время", func(req *Request) { req.StartTime = types.TimeString("25:99") }},
		{"новый клиент без клички", func(req *Request) {
			req.CustomerID = nil
			req.NewCustomer = &NewCustomerInput{OwnerName: "Carlos"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
