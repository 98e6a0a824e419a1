package complete_student

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/progress"
	courseRepo "github.com/m04kA/SMC-CourseService/internal/infra/storage/course"
	studentRepo "github.com/m04kA/SMC-CourseService/internal/infra/storage/student"
)

// UseCase use case перевода студента в состояние Completed
type UseCase struct {
	studentRepo    StudentRepository
	courseRepo     CourseRepository
	attendanceRepo AttendanceRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	studentRepo StudentRepository,
	courseRepo CourseRepository,
	attendanceRepo AttendanceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		attendanceRepo: attendanceRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute завершает курс студента
// Переход Active -> Completed односторонний; без Force требуется набрать все часы курса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompleteStudent: student=%s, force=%t", req.StudentID, req.Force)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CompleteStudent: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем студента
	student, err := uc.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			uc.logger.Warn("CompleteStudent: student=%s not found", req.StudentID)
			return nil, ErrStudentNotFound
		}
		uc.logger.Error("CompleteStudent: failed to get student=%s: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: failed to get student: %v", ErrInternal, err)
	}

	if !student.IsActive() {
		uc.logger.Warn("CompleteStudent: student=%s is already completed", req.StudentID)
		return nil, ErrAlreadyCompleted
	}

	// 3. Получаем курс и посещаемость
	course, err := uc.courseRepo.GetByID(ctx, student.CourseID)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			uc.logger.Warn("CompleteStudent: course=%s of student=%s not found", student.CourseID, req.StudentID)
			return nil, ErrCourseNotFound
		}
		uc.logger.Error("CompleteStudent: failed to get course=%s: %v", student.CourseID, err)
		return nil, fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
	}

	records, err := uc.attendanceRepo.GetByStudentID(ctx, student.ID)
	if err != nil {
		uc.logger.Error("CompleteStudent: failed to get attendance of student=%s: %v", student.ID, err)
		return nil, fmt.Errorf("%w: failed to get attendance: %v", ErrInternal, err)
	}

	// 4. Проверяем набранные часы
	completed := progress.CompletedHours(records)
	eligible := progress.IsEligibleForCompletion(completed, course.TotalHours)
	if !eligible && !req.Force {
		uc.logger.Warn("CompleteStudent: student=%s has %d of %d hours", student.ID, completed, course.TotalHours)
		return nil, fmt.Errorf("%w: %d of %d hours completed", ErrNotEligible, completed, course.TotalHours)
	}

	// 5. Фиксируем завершение
	now := uc.timeProvider.Now()
	updated, err := uc.studentRepo.MarkCompleted(ctx, student.ID, now)
	if err != nil {
		if errors.Is(err, studentRepo.ErrAlreadyCompleted) {
			uc.logger.Warn("CompleteStudent: student=%s was completed concurrently", student.ID)
			return nil, ErrAlreadyCompleted
		}
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			return nil, ErrStudentNotFound
		}
		uc.logger.Error("CompleteStudent: failed to mark student=%s completed: %v", student.ID, err)
		return nil, fmt.Errorf("%w: failed to mark completed: %v", ErrInternal, err)
	}

	completionDate := domain.DateOnly(now)
	if updated.CompletionDate != nil {
		completionDate = *updated.CompletionDate
	}

	uc.logger.Info("CompleteStudent: student=%s completed on %s (%d/%d hours)",
		student.ID, completionDate.Format(domain.DateFormat), completed, course.TotalHours)

	return &Response{
		StudentID:      student.ID,
		CompletionDate: completionDate,
		CompletedHours: completed,
		TotalHours:     course.TotalHours,
		Forced:         !eligible,
	}, nil
}
