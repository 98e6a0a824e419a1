package student

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/pkg/psqlbuilder"
)

const table = "students"

var columns = []string{
	"id",
	"full_name",
	"birth_date",
	"course_id",
	"course_start_date",
	"schedule",
	"is_completed",
	"completion_date",
	"created_at",
	"updated_at",
}

// Repository репозиторий студентов (только чтение и завершение курса)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория студентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает студента по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanStudent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan student: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetAll получает студентов по фильтру
// Студент с нечитаемым расписанием возвращается с заполненным ScheduleErr, выборка не прерывается
func (r *Repository) GetAll(ctx context.Context, filter domain.StudentFilter) ([]*domain.Student, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("full_name", "id")

	if filter.CourseID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"course_id": *filter.CourseID})
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_completed": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	students := make([]*domain.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan student: %v", ErrScanRow, err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - iterate rows: %v", ErrScanRow, err)
	}

	return students, nil
}

// MarkCompleted переводит студента в состояние Completed
// Переход односторонний: повторный вызов возвращает ErrAlreadyCompleted
func (r *Repository) MarkCompleted(ctx context.Context, id uuid.UUID, completionDate time.Time) (*domain.Student, error) {
	query, args, err := psqlbuilder.Update(table).
		Set("is_completed", true).
		Set("completion_date", domain.DateOnly(completionDate)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_completed": false}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MarkCompleted - build update query: %v", ErrBuildQuery, err)
	}

	s, err := scanStudent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		// строка не обновлена: студента нет или он уже завершил курс
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrAlreadyCompleted
	}
	if err != nil {
		return nil, fmt.Errorf("%w: MarkCompleted - execute update: %v", ErrExecQuery, err)
	}

	return s, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanStudent(row scanner) (*domain.Student, error) {
	var s domain.Student
	var courseStart, completionDate, createdAt, updatedAt sql.NullTime
	var schedule sql.NullString

	err := row.Scan(
		&s.ID,
		&s.FullName,
		&s.BirthDate,
		&s.CourseID,
		&courseStart,
		&schedule,
		&s.IsCompleted,
		&completionDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if courseStart.Valid {
		s.CourseStartDate = &courseStart.Time
	}
	if completionDate.Valid {
		s.CompletionDate = &completionDate.Time
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	parsed, err := domain.ParseSchedule(schedule.String)
	if err != nil {
		s.Schedule = domain.StudentSchedule{}
		s.ScheduleErr = fmt.Errorf("student %s: %w", s.ID, err)
	} else {
		s.Schedule = parsed
	}

	return &s, nil
}
