package project_completion

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
	"github.com/m04kA/SMC-CourseService/internal/engine/projection"
	"github.com/m04kA/SMC-CourseService/internal/engine/schedule"
	courseRepo "github.com/m04kA/SMC-CourseService/internal/infra/storage/course"
	"github.com/m04kA/SMC-CourseService/pkg/logger"
	"github.com/m04kA/SMC-CourseService/pkg/ptr"
)

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

func fourHours() domain.StudentSchedule {
	return domain.StudentSchedule{
		domain.Monday:    {"mon-08-09", "mon-09-10"},
		domain.Wednesday: {"wed-13-14", "wed-14-15"},
	}
}

func newUseCase(courses *mockCourseRepo, metrics *mockMetrics, today string) *UseCase {
	c := catalog.Default()
	uc := NewUseCase(courses, schedule.NewAggregator(c), projection.NewProjector(domain.DefaultSkipCalendar()), metrics, logger.NewNop())
	uc.timeProvider = fixedTime{now: date(today)}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	tests := []struct {
		name         string
		req          func(courseID uuid.UUID) *Request
		wantHours    int
		wantStart    string
		wantDate     string
		wantSkipped  int
		wantBehind   bool
		wantEndKnown bool
	}{
		{
			name: "course defaults",
			req: func(id uuid.UUID) *Request {
				return &Request{CourseID: &id, Schedule: fourHours()}
			},
			wantHours:    80,
			wantStart:    "2024-01-15",
			wantDate:     "2024-06-03",
			wantEndKnown: true,
		},
		{
			name: "explicit start crosses december",
			req: func(id uuid.UUID) *Request {
				return &Request{CourseID: &id, StartDate: ptr.Ptr(date("2024-09-03")), TotalHours: 52, Schedule: fourHours()}
			},
			wantHours:    52,
			wantStart:    "2024-09-03",
			wantDate:     "2024-12-10",
			wantSkipped:  1,
			wantBehind:   true,
			wantEndKnown: true,
		},
		{
			name: "hours without course start today",
			req: func(uuid.UUID) *Request {
				return &Request{TotalHours: 40, Schedule: fourHours()}
			},
			wantHours:   40,
			wantStart:   "2024-10-01",
			wantDate:    "2024-12-24",
			wantSkipped: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := &domain.Course{
				ID:         uuid.New(),
				TotalHours: 80,
				StartDate:  date("2024-01-15"),
				EndDate:    date("2024-06-03"),
			}
			courses := new(mockCourseRepo)
			courses.On("GetByID", mock.Anything, course.ID).Return(course, nil).Maybe()
			metrics := new(mockMetrics)
			metrics.On("ObserveProjection", "preview", "projected").Once()

			uc := newUseCase(courses, metrics, "2024-10-01")
			resp, err := uc.Execute(context.Background(), tt.req(course.ID))
			require.NoError(t, err)

			assert.Equal(t, tt.wantHours, resp.TotalHours)
			assert.Equal(t, 4, resp.WeeklyHours)
			assert.Equal(t, map[domain.WeekDay]int{domain.Monday: 2, domain.Wednesday: 2}, resp.HoursByDay)
			assert.Equal(t, tt.wantStart, resp.StartDate.Format(domain.DateFormat))
			assert.Equal(t, tt.wantDate, resp.Projection.Date.Format(domain.DateFormat))
			assert.Equal(t, tt.wantSkipped, resp.Projection.SkippedWeeks)
			assert.Equal(t, tt.wantBehind, resp.BehindSchedule)
			assert.Equal(t, tt.wantEndKnown, resp.CourseEndDate != nil)
			metrics.AssertExpectations(t)
		})
	}
}

func TestUseCase_Execute_BehindCourseEnd(t *testing.T) {
	course := &domain.Course{ID: uuid.New(), TotalHours: 80, StartDate: date("2024-01-15"), EndDate: date("2024-05-01")}
	courses := new(mockCourseRepo)
	courses.On("GetByID", mock.Anything, course.ID).Return(course, nil)
	metrics := new(mockMetrics)
	metrics.On("ObserveProjection", "preview", "projected").Once()

	resp, err := newUseCase(courses, metrics, "2024-01-01").Execute(context.Background(), &Request{CourseID: &course.ID, Schedule: fourHours()})
	require.NoError(t, err)
	assert.True(t, resp.BehindSchedule)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	t.Run("nothing to project", func(t *testing.T) {
		_, err := newUseCase(new(mockCourseRepo), new(mockMetrics), "2024-01-01").
			Execute(context.Background(), &Request{Schedule: fourHours()})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("course not found", func(t *testing.T) {
		id := uuid.New()
		courses := new(mockCourseRepo)
		courses.On("GetByID", mock.Anything, id).Return(nil, courseRepo.ErrCourseNotFound)

		_, err := newUseCase(courses, new(mockMetrics), "2024-01-01").
			Execute(context.Background(), &Request{CourseID: &id, Schedule: fourHours()})
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		id := uuid.New()
		courses := new(mockCourseRepo)
		courses.On("GetByID", mock.Anything, id).Return(nil, errors.New("timeout"))

		_, err := newUseCase(courses, new(mockMetrics), "2024-01-01").
			Execute(context.Background(), &Request{CourseID: &id, Schedule: fourHours()})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("slot outside catalog", func(t *testing.T) {
		metrics := new(mockMetrics)
		metrics.On("ObserveInconsistentSchedule").Once()

		_, err := newUseCase(new(mockCourseRepo), metrics, "2024-01-01").
			Execute(context.Background(), &Request{TotalHours: 10, Schedule: domain.StudentSchedule{domain.Friday: {"fri-08-09"}}})
		assert.ErrorIs(t, err, ErrInconsistentSchedule)
		metrics.AssertExpectations(t)
	})
}

func TestUseCase_Execute_EmptyScheduleIsUnprojectable(t *testing.T) {
	metrics := new(mockMetrics)
	metrics.On("ObserveProjection", "preview", "unprojectable").Once()

	resp, err := newUseCase(new(mockCourseRepo), metrics, "2024-01-01").
		Execute(context.Background(), &Request{TotalHours: 80, Schedule: domain.StudentSchedule{}})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.WeeklyHours)
	assert.Empty(t, resp.HoursByDay)
	assert.False(t, resp.Projection.Projectable)
	assert.Nil(t, resp.Projection.DatePtr())
	assert.Equal(t, "unprojectable", resp.Projection.Outcome())
	assert.False(t, resp.BehindSchedule)
	metrics.AssertExpectations(t)
}

type stubAggregator struct {
	weekly int
	byDay  map[domain.WeekDay]int
}

func (s stubAggregator) WeeklyHours(domain.StudentSchedule) (int, error) {
	return s.weekly, nil
}

func (s stubAggregator) Breakdown(domain.StudentSchedule) (map[domain.WeekDay]int, error) {
	return s.byDay, nil
}

func TestUseCase_Execute_WeeklyHoursFromAggregator(t *testing.T) {
	metrics := new(mockMetrics)
	metrics.On("ObserveProjection", "preview", "projected").Once()

	agg := stubAggregator{weekly: 8, byDay: map[domain.WeekDay]int{domain.Monday: 2}}
	uc := NewUseCase(new(mockCourseRepo), agg, projection.NewProjector(nil), metrics, logger.NewNop())
	uc.timeProvider = fixedTime{now: date("2024-01-15")}

	resp, err := uc.Execute(context.Background(), &Request{TotalHours: 80, Schedule: fourHours()})
	require.NoError(t, err)

	assert.Equal(t, 8, resp.WeeklyHours)
	assert.Equal(t, map[domain.WeekDay]int{domain.Monday: 2}, resp.HoursByDay)
	assert.Equal(t, 10, resp.Projection.Weeks)
}
