package get_progress_report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/progress"
)

// UseCase use case отчета о прогрессе всех студентов
type UseCase struct {
	studentRepo    StudentRepository
	courseRepo     CourseRepository
	attendanceRepo AttendanceRepository
	tracker        Tracker
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	studentRepo StudentRepository,
	courseRepo CourseRepository,
	attendanceRepo AttendanceRepository,
	tracker Tracker,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		attendanceRepo: attendanceRepo,
		tracker:        tracker,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute строит отчет о прогрессе
// Ошибка данных одного студента помечает его строку и не прерывает отчет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetProgressReport: course=%v, activeOnly=%t", req.CourseID, req.ActiveOnly)

	// 1. Загружаем студентов и курсы параллельно
	var (
		students []*domain.Student
		courses  []*domain.Course
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		students, err = uc.studentRepo.GetAll(gctx, domain.StudentFilter{
			CourseID:   req.CourseID,
			ActiveOnly: req.ActiveOnly,
		})
		return err
	})
	g.Go(func() error {
		var err error
		courses, err = uc.courseRepo.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetProgressReport: failed to load students or courses: %v", err)
		return nil, fmt.Errorf("%w: failed to load students or courses: %v", ErrInternal, err)
	}

	// 2. Загружаем посещаемость одним запросом
	ids := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.ID)
	}
	attendance, err := uc.attendanceRepo.GetByStudentIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("GetProgressReport: failed to load attendance: %v", err)
		return nil, fmt.Errorf("%w: failed to load attendance: %v", ErrInternal, err)
	}

	coursesByID := make(map[uuid.UUID]*domain.Course, len(courses))
	for _, c := range courses {
		coursesByID[c.ID] = c
	}

	// 3. Считаем строки
	now := uc.timeProvider.Now()
	resp := &Response{
		GeneratedAt: now,
		Rows:        make([]Row, 0, len(students)),
	}

	for _, student := range students {
		row := uc.buildRow(student, coursesByID[student.CourseID], attendance[student.ID], now)
		resp.Rows = append(resp.Rows, row)
		resp.Totals.add(row)
	}

	uc.logger.Info("GetProgressReport: %d students, %d eligible, %d behind schedule, %d warnings",
		resp.Totals.Students, resp.Totals.Eligible, resp.Totals.BehindSchedule, resp.Totals.Warnings)

	return resp, nil
}

func (uc *UseCase) buildRow(student *domain.Student, course *domain.Course, records []domain.AttendanceRecord, now time.Time) Row {
	row := Row{
		Student: student,
		Course:  course,
	}

	if course == nil {
		uc.logger.Warn("GetProgressReport: course=%s of student=%s not found", student.CourseID, student.ID)
		row.Warning = fmt.Sprintf("course %s not found", student.CourseID)
		row.Summary = progress.Summary{
			CompletedHours: progress.CompletedHours(records),
			Attendance:     progress.Attendance(records),
		}
		return row
	}

	summary, err := uc.tracker.Summarize(student, course, records, now)
	if err != nil {
		uc.metrics.ObserveInconsistentSchedule()
		uc.logger.Warn("GetProgressReport: student=%s flagged: %v", student.ID, err)
		row.Warning = err.Error()
		row.Summary = progress.Partial(course, records)
		return row
	}

	row.Summary = summary
	return row
}

func (t *Totals) add(row Row) {
	t.Students++
	if row.Warning != "" {
		t.Warnings++
		return
	}
	if row.Student.IsCompleted {
		t.Completed++
	}
	if row.Summary.Eligible {
		t.Eligible++
	}
	if row.Summary.BehindSchedule {
		t.BehindSchedule++
	}
}
