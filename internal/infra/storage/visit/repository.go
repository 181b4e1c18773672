package visit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	"github.com/paupet/PG-AppointmentService/pkg/psqlbuilder"
	"github.com/paupet/PG-AppointmentService/pkg/txmanager"
)

// Repository append-only журнал визитов
// Визиты создаются при завершении записи (в одной транзакции с изменением
// её статуса) или ручным бэкфиллом; обновления и удаления не поддерживаются
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория визитов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет визит в историю клиента
func (r *Repository) Append(ctx context.Context, visit *domain.Visit) (*domain.Visit, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("visits").
		Columns("customer_id", "service", "price", "visit_date").
		Values(visit.CustomerID, visit.Service, visit.Price, visit.Date).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&visit.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	visit.CreatedAt = createdAt.Time

	return visit, nil
}

// ListByCustomer получает историю визитов клиента, сначала новые
func (r *Repository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Visit, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"customer_id",
		"service",
		"price",
		"visit_date",
		"created_at",
	).
		From("visits").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("visit_date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	visits := make([]*domain.Visit, 0)
	for rows.Next() {
		var visit domain.Visit
		var createdAt sql.NullTime

		err := rows.Scan(
			&visit.ID,
			&visit.CustomerID,
			&visit.Service,
			&visit.Price,
			&visit.Date,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByCustomer - scan row: %v", ErrScanRow, err)
		}

		visit.CreatedAt = createdAt.Time
		visits = append(visits, &visit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - rows error: %v", ErrScanRow, err)
	}

	return visits, nil
}
