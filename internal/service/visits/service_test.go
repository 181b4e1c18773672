package visits

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	customerRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/customer"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeLedger struct {
	visits []*domain.Visit
}

func (f *fakeLedger) Append(_ context.Context, visit *domain.Visit) (*domain.Visit, error) {
	copied := *visit
	copied.ID = int64(len(f.visits) + 1)
	f.visits = append(f.visits, &copied)
	return &copied, nil
}

func (f *fakeLedger) ListByCustomer(_ context.Context, customerID int64) ([]*domain.Visit, error) {
	var result []*domain.Visit
	for _, v := range f.visits {
		if v.CustomerID == customerID {
			result = append(result, v)
		}
	}
	return result, nil
}

type fakeCustomerStore struct {
	ids map[int64]struct{}
}

func (f *fakeCustomerStore) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if _, ok := f.ids[id]; !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return &domain.Customer{ID: id}, nil
}

func newTestService() (*Service, *fakeLedger) {
	ledger := &fakeLedger{}
	store := &fakeCustomerStore{ids: map[int64]struct{}{7: {}}}
	return NewService(ledger, store, nopLogger{}), ledger
}

var visitDate = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

func TestAppend(t *testing.T) {
	svc, ledger := newTestService()

	visit, err := svc.Append(context.Background(), 7, "Baño y corte", 25.0, visitDate)
	require.NoError(t, err)

	assert.Equal(t, int64(7), visit.CustomerID)
	assert.Equal(t, 25.0, visit.Price)
	assert.Len(t, ledger.visits, 1)
}

func TestAppend_CustomerNotFound(t *testing.T) {
	svc, ledger := newTestService()

	_, err := svc.Append(context.Background(), 99, "Baño", 10.0, visitDate)
	require.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Empty(t, ledger.visits)
}

func TestAppend_Validation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Append(context.Background(), 7, "", 10.0, visitDate)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Append(context.Background(), 7, "Baño", -5.0, visitDate)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Append(context.Background(), 7, "Baño", 10.0, time.Time{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByCustomer(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Append(context.Background(), 7, "Baño", 10.0, visitDate)
	require.NoError(t, err)
	_, err = svc.Append(context.Background(), 7, "Corte", 15.0, visitDate.AddDate(0, 0, 3))
	require.NoError(t, err)

	visits, err := svc.ListByCustomer(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, visits, 2)
}
