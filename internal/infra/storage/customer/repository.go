package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	"github.com/paupet/PG-AppointmentService/pkg/psqlbuilder"
	"github.com/paupet/PG-AppointmentService/pkg/txmanager"
)

// Repository репозиторий для работы с клиентами
// Ядро планирования читает клиентов и корректирует счётчик неявок;
// полное управление профилем живёт в отдельном сервисе
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового клиента
// Используется при создании записи вместе с новым клиентом (одна транзакция)
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("pet_name", "owner_name", "breed", "phone", "no_shows").
		Values(customer.PetName, customer.OwnerName, customer.Breed, customer.Phone, customer.NoShows).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return customer, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"pet_name",
		"owner_name",
		"breed",
		"phone",
		"no_shows",
		"created_at",
		"updated_at",
	).
		From("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.PetName,
		&customer.OwnerName,
		&customer.Breed,
		&customer.Phone,
		&customer.NoShows,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %v", ErrScanRow, err)
	}

	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return &customer, nil
}

// AdjustNoShows изменяет счётчик неявок клиента на delta
// Счётчик никогда не опускается ниже нуля: декремент нулевого счётчика -
// no-op, а не ошибка (отмена ошибочной отметки)
// Возвращает новое значение счётчика
func (r *Repository) AdjustNoShows(ctx context.Context, id int64, delta int) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("no_shows", squirrel.Expr("GREATEST(no_shows + ?, 0)", delta)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING no_shows").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: AdjustNoShows - build update query: %v", ErrBuildQuery, err)
	}

	var noShows int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&noShows)
	if err == sql.ErrNoRows {
		return 0, ErrCustomerNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: AdjustNoShows - execute update: %v", ErrExecQuery, err)
	}

	return noShows, nil
}
