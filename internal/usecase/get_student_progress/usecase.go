package get_student_progress

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/progress"
	courseRepo "github.com/m04kA/SMC-CourseService/internal/infra/storage/course"
	studentRepo "github.com/m04kA/SMC-CourseService/internal/infra/storage/student"
)

// UseCase use case получения прогресса студента
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

// Execute считает прогресс студента на текущую дату
// Отставание от графика и готовность к завершению являются флагами, а не ошибками
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetStudentProgress: student=%s", req.StudentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetStudentProgress: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем студента
	student, err := uc.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			uc.logger.Warn("GetStudentProgress: student=%s not found", req.StudentID)
			return nil, ErrStudentNotFound
		}
		uc.logger.Error("GetStudentProgress: failed to get student=%s: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: failed to get student: %v", ErrInternal, err)
	}

	// 3. Курс и посещаемость загружаем параллельно
	var (
		course  *domain.Course
		records []domain.AttendanceRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		course, err = uc.courseRepo.GetByID(gctx, student.CourseID)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = uc.attendanceRepo.GetByStudentID(gctx, student.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			uc.logger.Warn("GetStudentProgress: course=%s of student=%s not found", student.CourseID, student.ID)
			return nil, ErrCourseNotFound
		}
		uc.logger.Error("GetStudentProgress: failed to load course or attendance of student=%s: %v", student.ID, err)
		return nil, fmt.Errorf("%w: failed to load course or attendance: %v", ErrInternal, err)
	}

	// 4. Считаем прогресс
	resp := &Response{
		Student: student,
		Course:  course,
	}

	summary, err := uc.tracker.Summarize(student, course, records, uc.timeProvider.Now())
	if err != nil {
		if errors.Is(err, progress.ErrCourseMismatch) {
			uc.logger.Error("GetStudentProgress: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		// Некорректное расписание: показываем часы и посещаемость без прогнозов
		uc.metrics.ObserveInconsistentSchedule()
		uc.logger.Warn("GetStudentProgress: student=%s has inconsistent schedule: %v", student.ID, err)
		resp.Summary = progress.Partial(course, records)
		resp.Warning = err.Error()
		return resp, nil
	}

	uc.metrics.ObserveProjection("original", summary.Original.Outcome())
	uc.metrics.ObserveProjection("current", summary.Current.Outcome())
	if summary.BehindSchedule {
		uc.logger.Info("GetStudentProgress: student=%s is behind schedule (projected %s, course ends %s)",
			student.ID, summary.Current.Date.Format(domain.DateFormat), course.EndDate.Format(domain.DateFormat))
	}

	resp.Summary = summary
	return resp, nil
}
