package course

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/pkg/psqlbuilder"
)

const table = "courses"

var columns = []string{
	"id",
	"name",
	"total_hours",
	"start_date",
	"end_date",
	"created_at",
	"updated_at",
}

// Repository репозиторий курсов (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория курсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает курс по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCourse(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan course: %v", ErrScanRow, err)
	}

	return c, nil
}

// GetAll получает все курсы
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Course, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("start_date", "name").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courses := make([]*domain.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan course: %v", ErrScanRow, err)
		}
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - iterate rows: %v", ErrScanRow, err)
	}

	return courses, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCourse(row scanner) (*domain.Course, error) {
	var c domain.Course
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.TotalHours,
		&c.StartDate,
		&c.EndDate,
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
