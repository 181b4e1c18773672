package appointments

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	apptRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/appointment"
	"github.com/paupet/PG-AppointmentService/pkg/types"
)

// nopLogger логгер-заглушка для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeStore in-memory реализация всех зависимостей лайфсайкл-движка
// Мьютекс в DoSerializable даёт те же гарантии, что сериализуемая
// транзакция БД: переходы по одной записи выполняются строго по очереди
type fakeStore struct {
	mu           sync.Mutex
	appointments map[int64]*domain.Appointment
	visits       []*domain.Visit
	noShows      map[int64]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		appointments: make(map[int64]*domain.Appointment),
		visits:       []*domain.Visit{},
		noShows:      make(map[int64]int),
	}
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeStore) ListByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.appointments {
		if appt.Date.Equal(date) {
			copied := *appt
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := f.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.appointments[id]; !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeStore) Append(_ context.Context, visit *domain.Visit) (*domain.Visit, error) {
	copied := *visit
	copied.ID = int64(len(f.visits) + 1)
	f.visits = append(f.visits, &copied)
	return &copied, nil
}

func (f *fakeStore) AdjustNoShows(_ context.Context, id int64, delta int) (int, error) {
	next := f.noShows[id] + delta
	if next < 0 {
		next = 0
	}
	f.noShows[id] = next
	return next, nil
}

func (f *fakeStore) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

func newTestService(store *fakeStore) *Service {
	return NewService(store, store, store, store, nopLogger{})
}

func seedAppointment(store *fakeStore, id int64, status domain.AppointmentStatus) *domain.Appointment {
	appt := &domain.Appointment{
		ID:         id,
		CustomerID: 7,
		PetName:    "Rocky",
		Service:    "Baño y corte",
		Date:       time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
		Price:      25.0,
		Status:     status,
	}
	store.appointments[id] = appt
	return appt
}

func TestComplete_RecordsExactlyOneVisit(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, 1, domain.StatusConfirmed)
	svc := newTestService(store)

	resp, err := svc.Complete(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	require.Len(t, store.visits, 1)
	assert.Equal(t, int64(7), store.visits[0].CustomerID)
	assert.Equal(t, "Baño y corte", store.visits[0].Service)
	assert.Equal(t, 25.0, store.visits[0].Price)
}

func TestComplete_PendingAppointment(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, 1, domain.StatusPending)
	svc := newTestService(store)

	resp, err := svc.Complete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
}

func TestComplete_TwiceReturnsAlreadyCompleted(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, 1, domain.StatusConfirmed)
	svc := newTestService(store)

	_, err := svc.Complete(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), 1)
	require.ErrorIs(t, err, ErrAlreadyCompleted)

	// Визит остался ровно один
	assert.Len(t, store.visits, 1)
}

func TestComplete_NotFound(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Complete(context.Background(), 42)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Empty(t, store.visits)
}

func TestComplete_ConcurrentExactlyOneWins(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, 1, domain.StatusConfirmed)
	svc := newTestService(store)

	const workers = 2
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Complete(context.Background(), 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, failed int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, ErrAlreadyCompleted)
			failed++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)
	assert.Len(t, store.visits, 1)
}

func TestConfirm_PendingAppointment(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, 1, domain.StatusPending)
	svc := newTestService(store)

	resp, err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.StatusConfirmed, store.appointments[1].Status)
}

func TestConfirm_AlreadyConfirmedIsNoop(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, 1, domain.StatusConfirmed)
	svc := newTestService(store)

	resp, err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestConfirm_CompletedFails(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, 1, domain.StatusCompleted)
	svc := newTestService(store)

	_, err := svc.Confirm(context.Background(), 1)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMarkNoShow_DeletesAndIncrementsCounter(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, 1, domain.StatusConfirmed)
	svc := newTestService(store)

	resp, err := svc.MarkNoShow(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.CustomerID)
	assert.Equal(t, 1, resp.NoShows)

	// Запись удалена, слот снова свободен
	_, ok := store.appointments[1]
	assert.False(t, ok)

	// Истории визитов неявка не касается
	assert.Empty(t, store.visits)
}

func TestMarkNoShow_RepeatReturnsNotFound(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, 1, domain.StatusPending)
	svc := newTestService(store)

	_, err := svc.MarkNoShow(context.Background(), 1)
	require.NoError(t, err)

	// Повторная обработка не увеличит счётчик второй раз
	_, err = svc.MarkNoShow(context.Background(), 1)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Equal(t, 1, store.noShows[7])
}

func TestMarkNoShow_CompletedFails(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, 1, domain.StatusCompleted)
	svc := newTestService(store)

	_, err := svc.MarkNoShow(context.Background(), 1)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 0, store.noShows[7])
}

func TestCancel_NoSideEffects(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, 1, domain.StatusConfirmed)
	svc := newTestService(store)

	err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)

	_, ok := store.appointments[1]
	assert.False(t, ok)
	assert.Empty(t, store.visits)
	assert.Equal(t, 0, store.noShows[7])
}

func TestCancel_CompletedFails(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, 1, domain.StatusCompleted)
	svc := newTestService(store)

	err := svc.Cancel(context.Background(), 1)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, ok := store.appointments[1]
	assert.True(t, ok)
}

func TestGetByID_NotFound(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}
