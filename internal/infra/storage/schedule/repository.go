package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/paupet/PG-AppointmentService/internal/domain"
	"github.com/paupet/PG-AppointmentService/pkg/psqlbuilder"
	"github.com/paupet/PG-AppointmentService/pkg/txmanager"
)

// configRowID конфигурация расписания хранится в единственной строке
const configRowID = 1

// Repository репозиторий конфигурации расписания
// Конфигурация сохраняется целиком одним upsert'ом: частичная запись
// невозможна, читатели никогда не видят наполовину обновлённое расписание
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Load загружает конфигурацию расписания
func (r *Repository) Load(ctx context.Context) (*domain.ScheduleConfig, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"business_name",
		"welcome_message",
		"anticipation_days",
		"weekdays",
		"updated_at",
	).
		From("schedule_config").
		Where(squirrel.Eq{"id": configRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.ScheduleConfig
	var weekdaysRaw []byte
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.BusinessName,
		&cfg.WelcomeMessage,
		&cfg.AnticipationDays,
		&weekdaysRaw,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan config: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(weekdaysRaw, &cfg.Weekdays); err != nil {
		return nil, fmt.Errorf("%w: Load: %v", ErrDecodeWeekdays, err)
	}

	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Save сохраняет конфигурацию расписания целиком (upsert единственной строки)
func (r *Repository) Save(ctx context.Context, cfg *domain.ScheduleConfig) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	weekdaysRaw, err := json.Marshal(cfg.Weekdays)
	if err != nil {
		return fmt.Errorf("%w: Save: %v", ErrEncodeWeekdays, err)
	}

	query, args, err := psqlbuilder.Insert("schedule_config").
		Columns("id", "business_name", "welcome_message", "anticipation_days", "weekdays").
		Values(configRowID, cfg.BusinessName, cfg.WelcomeMessage, cfg.AnticipationDays, weekdaysRaw).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			welcome_message = EXCLUDED.welcome_message,
			anticipation_days = EXCLUDED.anticipation_days,
			weekdays = EXCLUDED.weekdays,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
