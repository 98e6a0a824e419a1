package attendance

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/pkg/psqlbuilder"
)

const table = "attendance_records"

var columns = []string{
	"id",
	"student_id",
	"date",
	"status",
	"class_hours",
	"created_at",
}

// Repository репозиторий записей посещаемости (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория посещаемости
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStudentID получает записи посещаемости студента по дате
func (r *Repository) GetByStudentID(ctx context.Context, studentID uuid.UUID) ([]domain.AttendanceRecord, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("date", "created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStudentID - build select query: %v", ErrBuildQuery, err)
	}

	records, err := r.query(ctx, "GetByStudentID", query, args)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// GetByStudentIDs получает записи нескольких студентов, сгруппированные по студенту
func (r *Repository) GetByStudentIDs(ctx context.Context, studentIDs []uuid.UUID) (map[uuid.UUID][]domain.AttendanceRecord, error) {
	grouped := make(map[uuid.UUID][]domain.AttendanceRecord, len(studentIDs))
	if len(studentIDs) == 0 {
		return grouped, nil
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"student_id": studentIDs}).
		OrderBy("student_id", "date", "created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStudentIDs - build select query: %v", ErrBuildQuery, err)
	}

	records, err := r.query(ctx, "GetByStudentIDs", query, args)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		grouped[rec.StudentID] = append(grouped[rec.StudentID], rec)
	}

	return grouped, nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]domain.AttendanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	records := make([]domain.AttendanceRecord, 0)
	for rows.Next() {
		var rec domain.AttendanceRecord
		var createdAt sql.NullTime

		err := rows.Scan(
			&rec.ID,
			&rec.StudentID,
			&rec.Date,
			&rec.Status,
			&rec.ClassHours,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan record: %v", ErrScanRow, op, err)
		}

		rec.CreatedAt = createdAt.Time
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}

	return records, nil
}
