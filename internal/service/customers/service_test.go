package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	customerRepo "github.com/paupet/PG-AppointmentService/internal/infra/storage/customer"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCustomerStore struct {
	customers map[int64]*domain.Customer
}

func (f *fakeCustomerStore) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return customer, nil
}

func (f *fakeCustomerStore) AdjustNoShows(_ context.Context, id int64, delta int) (int, error) {
	customer, ok := f.customers[id]
	if !ok {
		return 0, customerRepo.ErrCustomerNotFound
	}
	customer.NoShows += delta
	if customer.NoShows < 0 {
		customer.NoShows = 0
	}
	return customer.NoShows, nil
}

func TestDecrementNoShows(t *testing.T) {
	store := &fakeCustomerStore{customers: map[int64]*domain.Customer{
		7: {ID: 7, PetName: "Rocky", NoShows: 2},
	}}
	svc := NewService(store, nopLogger{})

	noShows, err := svc.DecrementNoShows(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, noShows)
}

func TestDecrementNoShows_AtZeroIsNoop(t *testing.T) {
	store := &fakeCustomerStore{customers: map[int64]*domain.Customer{
		7: {ID: 7, PetName: "Rocky", NoShows: 0},
	}}
	svc := NewService(store, nopLogger{})

	noShows, err := svc.DecrementNoShows(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 0, noShows)
}

func TestDecrementNoShows_CustomerNotFound(t *testing.T) {
	store := &fakeCustomerStore{customers: map[int64]*domain.Customer{}}
	svc := NewService(store, nopLogger{})

	_, err := svc.DecrementNoShows(context.Background(), 99)
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestGetByID(t *testing.T) {
	store := &fakeCustomerStore{customers: map[int64]*domain.Customer{
		7: {ID: 7, PetName: "Rocky", OwnerName: "Ana"},
	}}
	svc := NewService(store, nopLogger{})

	customer, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Rocky", customer.PetName)

	_, err = svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrCustomerNotFound)
}
