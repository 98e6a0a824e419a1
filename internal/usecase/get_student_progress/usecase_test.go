package get_student_progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/catalog"
	"github.com/m04kA/SMC-CourseService/internal/engine/progress"
	"github.com/m04kA/SMC-CourseService/internal/engine/projection"
	"github.com/m04kA/SMC-CourseService/internal/engine/schedule"
	courseRepo "github.com/m04kA/SMC-CourseService/internal/infra/storage/course"
	studentRepo "github.com/m04kA/SMC-CourseService/internal/infra/storage/student"
	"github.com/m04kA/SMC-CourseService/pkg/logger"
)

type mockStudentRepo struct {
	mock.Mock
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

type mockCourseRepo struct {
	mock.Mock
}

func (m *mockCourseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

type mockAttendanceRepo struct {
	mock.Mock
}

func (m *mockAttendanceRepo) GetByStudentID(ctx context.Context, studentID uuid.UUID) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) ObserveProjection(kind, outcome string) {
	m.Called(kind, outcome)
}

func (m *mockMetrics) ObserveInconsistentSchedule() {
	m.Called()
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

func date(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

type fixture struct {
	students   *mockStudentRepo
	courses    *mockCourseRepo
	attendance *mockAttendanceRepo
	metrics    *mockMetrics
	uc         *UseCase
	student    *domain.Student
	course     *domain.Course
}

func newFixture(sched domain.StudentSchedule, today string) *fixture {
	f := &fixture{
		students:   new(mockStudentRepo),
		courses:    new(mockCourseRepo),
		attendance: new(mockAttendanceRepo),
		metrics:    new(mockMetrics),
	}
	f.course = &domain.Course{
		ID:         uuid.New(),
		TotalHours: 80,
		StartDate:  date("2024-01-15"),
		EndDate:    date("2024-06-03"),
	}
	f.student = &domain.Student{ID: uuid.New(), CourseID: f.course.ID, Schedule: sched}

	records := []domain.AttendanceRecord{
		{Status: domain.AttendancePresent, ClassHours: 10},
		{Status: domain.AttendancePresent, ClassHours: 10},
		{Status: domain.AttendanceAbsent, ClassHours: 4},
	}

	f.students.On("GetByID", mock.Anything, f.student.ID).Return(f.student, nil)
	f.courses.On("GetByID", mock.Anything, f.course.ID).Return(f.course, nil)
	f.attendance.On("GetByStudentID", mock.Anything, f.student.ID).Return(records, nil)

	c := catalog.Default()
	tracker := progress.NewTracker(schedule.NewAggregator(c), projection.NewProjector(domain.DefaultSkipCalendar()))
	f.uc = NewUseCase(f.students, f.courses, f.attendance, tracker, f.metrics, logger.NewNop())
	f.uc.timeProvider = fixedTime{now: date(today)}
	return f
}

func fourHours() domain.StudentSchedule {
	return domain.StudentSchedule{
		domain.Monday:    {"mon-08-09", "mon-09-10"},
		domain.Wednesday: {"wed-13-14", "wed-14-15"},
	}
}

func TestUseCase_Execute(t *testing.T) {
	f := newFixture(fourHours(), "2024-02-19")
	f.metrics.On("ObserveProjection", "original", "projected").Once()
	f.metrics.On("ObserveProjection", "current", "projected").Once()

	resp, err := f.uc.Execute(context.Background(), &Request{StudentID: f.student.ID})
	require.NoError(t, err)

	assert.Empty(t, resp.Warning)
	assert.Equal(t, 4, resp.Summary.WeeklyHours)
	assert.Equal(t, 20, resp.Summary.CompletedHours)
	assert.InDelta(t, 25.0, resp.Summary.ProgressPercent, 1e-9)
	assert.Equal(t, "2024-06-03", resp.Summary.Original.Date.Format(domain.DateFormat))
	assert.Equal(t, "2024-06-03", resp.Summary.Current.Date.Format(domain.DateFormat))
	assert.False(t, resp.Summary.BehindSchedule)
	f.metrics.AssertExpectations(t)
}

func TestUseCase_Execute_InconsistentScheduleIsWarning(t *testing.T) {
	f := newFixture(domain.StudentSchedule{domain.Friday: {"fri-08-09"}}, "2024-02-19")
	f.metrics.On("ObserveInconsistentSchedule").Once()

	resp, err := f.uc.Execute(context.Background(), &Request{StudentID: f.student.ID})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Warning)
	assert.Equal(t, 20, resp.Summary.CompletedHours)
	assert.False(t, resp.Summary.Current.Projectable)
	f.metrics.AssertExpectations(t)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		f := newFixture(fourHours(), "2024-02-19")
		_, err := f.uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("student not found", func(t *testing.T) {
		f := newFixture(fourHours(), "2024-02-19")
		missing := uuid.New()
		f.students.On("GetByID", mock.Anything, missing).Return(nil, studentRepo.ErrStudentNotFound)

		_, err := f.uc.Execute(context.Background(), &Request{StudentID: missing})
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("course not found", func(t *testing.T) {
		students := new(mockStudentRepo)
		courses := new(mockCourseRepo)
		attendance := new(mockAttendanceRepo)
		s := &domain.Student{ID: uuid.New(), CourseID: uuid.New()}
		students.On("GetByID", mock.Anything, s.ID).Return(s, nil)
		courses.On("GetByID", mock.Anything, s.CourseID).Return(nil, courseRepo.ErrCourseNotFound)
		attendance.On("GetByStudentID", mock.Anything, s.ID).Return([]domain.AttendanceRecord{}, nil).Maybe()

		uc := NewUseCase(students, courses, attendance, nil, new(mockMetrics), logger.NewNop())
		_, err := uc.Execute(context.Background(), &Request{StudentID: s.ID})
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})

	t.Run("attendance failure", func(t *testing.T) {
		students := new(mockStudentRepo)
		courses := new(mockCourseRepo)
		attendance := new(mockAttendanceRepo)
		s := &domain.Student{ID: uuid.New(), CourseID: uuid.New()}
		students.On("GetByID", mock.Anything, s.ID).Return(s, nil)
		courses.On("GetByID", mock.Anything, s.CourseID).Return(&domain.Course{ID: s.CourseID}, nil).Maybe()
		attendance.On("GetByStudentID", mock.Anything, s.ID).Return(nil, errors.New("timeout"))

		uc := NewUseCase(students, courses, attendance, nil, new(mockMetrics), logger.NewNop())
		_, err := uc.Execute(context.Background(), &Request{StudentID: s.ID})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
