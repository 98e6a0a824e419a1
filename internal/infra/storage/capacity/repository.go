package capacity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/pkg/psqlbuilder"
)

const table = "time_slot_capacities"

var columns = []string{
	"slot_id",
	"day",
	"display_time",
	"total_vacancies",
	"created_at",
	"updated_at",
}

// Repository репозиторий реестра вместимости слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория вместимости
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySlotID получает строку вместимости слота
// Отсутствие строки возвращается как ErrCapacityNotFound, а не как нулевая вместимость
func (r *Repository) GetBySlotID(ctx context.Context, slotID string) (*domain.TimeSlotCapacity, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCapacity(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCapacityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotID - scan capacity: %v", ErrScanRow, err)
	}

	return c, nil
}

// List получает все строки реестра
func (r *Repository) List(ctx context.Context) ([]*domain.TimeSlotCapacity, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("day", "display_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

// ListByDay получает строки реестра одного дня
func (r *Repository) ListByDay(ctx context.Context, day domain.WeekDay) ([]*domain.TimeSlotCapacity, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"day": day}).
		OrderBy("display_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDay - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListByDay", query, args)
}

// Upsert создает или перезаписывает строку вместимости слота
// Один запрос на строку: при гонке побеждает последняя запись
func (r *Repository) Upsert(ctx context.Context, c *domain.TimeSlotCapacity) (*domain.TimeSlotCapacity, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns("slot_id", "day", "display_time", "total_vacancies").
		Values(c.SlotID, c.Day, c.DisplayTime, c.TotalVacancies).
		Suffix(`ON CONFLICT (slot_id) DO UPDATE SET
			day = EXCLUDED.day,
			display_time = EXCLUDED.display_time,
			total_vacancies = EXCLUDED.total_vacancies,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	saved := *c
	saved.CreatedAt = createdAt.Time
	saved.UpdatedAt = updatedAt.Time

	return &saved, nil
}

// InsertMissing вставляет строки, которых еще нет; существующие не трогает
// Возвращает количество вставленных строк
func (r *Repository) InsertMissing(ctx context.Context, rows []*domain.TimeSlotCapacity) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	insert := psqlbuilder.Insert(table).
		Columns("slot_id", "day", "display_time", "total_vacancies")
	for _, c := range rows {
		insert = insert.Values(c.SlotID, c.Day, c.DisplayTime, c.TotalVacancies)
	}

	query, args, err := insert.Suffix("ON CONFLICT (slot_id) DO NOTHING").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: InsertMissing - build insert query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: InsertMissing - execute insert: %v", ErrExecQuery, err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: InsertMissing - rows affected: %v", ErrExecQuery, err)
	}

	return inserted, nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.TimeSlotCapacity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	capacities := make([]*domain.TimeSlotCapacity, 0)
	for rows.Next() {
		c, err := scanCapacity(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan capacity: %v", ErrScanRow, op, err)
		}
		capacities = append(capacities, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}

	return capacities, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCapacity(row scanner) (*domain.TimeSlotCapacity, error) {
	var c domain.TimeSlotCapacity
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.SlotID,
		&c.Day,
		&c.DisplayTime,
		&c.TotalVacancies,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
