package complete_student

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourseService/internal/domain"
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

func (m *mockStudentRepo) MarkCompleted(ctx context.Context, id uuid.UUID, completionDate time.Time) (*domain.Student, error) {
	args := m.Called(ctx, id, completionDate)
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

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type fixture struct {
	students   *mockStudentRepo
	courses    *mockCourseRepo
	attendance *mockAttendanceRepo
	uc         *UseCase
	now        time.Time
	student    *domain.Student
	course     *domain.Course
}

func newFixture(presentHours int) *fixture {
	f := &fixture{
		students:   new(mockStudentRepo),
		courses:    new(mockCourseRepo),
		attendance: new(mockAttendanceRepo),
		now:        time.Date(2024, time.June, 10, 15, 30, 0, 0, time.UTC),
	}
	f.course = &domain.Course{ID: uuid.New(), TotalHours: 8}
	f.student = &domain.Student{ID: uuid.New(), CourseID: f.course.ID}

	records := []domain.AttendanceRecord{
		{Status: domain.AttendancePresent, ClassHours: presentHours},
		{Status: domain.AttendanceAbsent, ClassHours: 4},
	}

	f.students.On("GetByID", mock.Anything, f.student.ID).Return(f.student, nil)
	f.courses.On("GetByID", mock.Anything, f.course.ID).Return(f.course, nil)
	f.attendance.On("GetByStudentID", mock.Anything, f.student.ID).Return(records, nil)

	f.uc = NewUseCase(f.students, f.courses, f.attendance, logger.NewNop())
	f.uc.timeProvider = fixedTime{now: f.now}
	return f
}

func (f *fixture) expectMark() {
	done := *f.student
	date := domain.DateOnly(f.now)
	done.IsCompleted = true
	done.CompletionDate = &date
	f.students.On("MarkCompleted", mock.Anything, f.student.ID, f.now).Return(&done, nil).Once()
}

func TestUseCase_Execute_Eligible(t *testing.T) {
	f := newFixture(8)
	f.expectMark()

	resp, err := f.uc.Execute(context.Background(), &Request{StudentID: f.student.ID})
	require.NoError(t, err)

	assert.Equal(t, 8, resp.CompletedHours)
	assert.False(t, resp.Forced)
	assert.Equal(t, "2024-06-10", resp.CompletionDate.Format(domain.DateFormat))
	f.students.AssertExpectations(t)
}

func TestUseCase_Execute_NotEligible(t *testing.T) {
	f := newFixture(4)

	_, err := f.uc.Execute(context.Background(), &Request{StudentID: f.student.ID})
	assert.ErrorIs(t, err, ErrNotEligible)
	f.students.AssertNotCalled(t, "MarkCompleted", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_Forced(t *testing.T) {
	f := newFixture(4)
	f.expectMark()

	resp, err := f.uc.Execute(context.Background(), &Request{StudentID: f.student.ID, Force: true})
	require.NoError(t, err)
	assert.True(t, resp.Forced)
	assert.Equal(t, 4, resp.CompletedHours)
}

func TestUseCase_Execute_AlreadyCompleted(t *testing.T) {
	t.Run("loaded as completed", func(t *testing.T) {
		f := newFixture(8)
		f.student.IsCompleted = true

		_, err := f.uc.Execute(context.Background(), &Request{StudentID: f.student.ID})
		assert.ErrorIs(t, err, ErrAlreadyCompleted)
	})

	t.Run("completed concurrently", func(t *testing.T) {
		f := newFixture(8)
		f.students.On("MarkCompleted", mock.Anything, f.student.ID, f.now).
			Return(nil, studentRepo.ErrAlreadyCompleted).Once()

		_, err := f.uc.Execute(context.Background(), &Request{StudentID: f.student.ID})
		assert.ErrorIs(t, err, ErrAlreadyCompleted)
	})
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	students := new(mockStudentRepo)
	id := uuid.New()
	students.On("GetByID", mock.Anything, id).Return(nil, studentRepo.ErrStudentNotFound)

	uc := NewUseCase(students, new(mockCourseRepo), new(mockAttendanceRepo), logger.NewNop())
	_, err := uc.Execute(context.Background(), &Request{StudentID: id})
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
