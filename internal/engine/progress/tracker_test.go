package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/catalog"
	"github.com/m04kA/SMC-CourseService/internal/engine/projection"
	"github.com/m04kA/SMC-CourseService/internal/engine/schedule"
)

func day(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

func record(status domain.AttendanceStatus, hours int) domain.AttendanceRecord {
	return domain.AttendanceRecord{ID: uuid.New(), Status: status, ClassHours: hours}
}

func newTracker() *Tracker {
	c := catalog.Default()
	return NewTracker(schedule.NewAggregator(c), projection.NewProjector(domain.DefaultSkipCalendar()))
}

func TestCompletedHours_IgnoresAbsent(t *testing.T) {
	records := []domain.AttendanceRecord{
		record(domain.AttendancePresent, 2),
		record(domain.AttendanceAbsent, 3),
		record(domain.AttendancePresent, 1),
		record(domain.AttendanceAbsent, 5),
	}

	assert.Equal(t, 3, CompletedHours(records))
	assert.Zero(t, CompletedHours(nil))
}

func TestAttendance(t *testing.T) {
	records := []domain.AttendanceRecord{
		record(domain.AttendancePresent, 1),
		record(domain.AttendancePresent, 1),
		record(domain.AttendancePresent, 1),
		record(domain.AttendanceAbsent, 1),
	}

	stats := Attendance(records)

	assert.Equal(t, 4, stats.TotalClasses)
	assert.Equal(t, 3, stats.Present)
	assert.Equal(t, 1, stats.Absent)
	assert.InDelta(t, 75.0, stats.Percent, 1e-9)
	assert.Equal(t, BandRegular, stats.Band)
}

func TestBandOf(t *testing.T) {
	assert.Equal(t, BandExcellent, BandOf(90))
	assert.Equal(t, BandGood, BandOf(89.9))
	assert.Equal(t, BandGood, BandOf(80))
	assert.Equal(t, BandRegular, BandOf(70))
	assert.Equal(t, BandLow, BandOf(69.99))
	assert.Equal(t, BandLow, BandOf(0))
}

func TestProgressPercentAndEligibility(t *testing.T) {
	assert.InDelta(t, 50.0, ProgressPercent(40, 80), 1e-9)
	assert.Zero(t, ProgressPercent(40, 0))
	assert.False(t, IsEligibleForCompletion(79, 80))
	assert.True(t, IsEligibleForCompletion(80, 80))
	assert.True(t, IsEligibleForCompletion(90, 80))
	assert.False(t, IsEligibleForCompletion(0, 0))
}

func TestTracker_Summarize(t *testing.T) {
	course := &domain.Course{
		ID:         uuid.New(),
		TotalHours: 80,
		StartDate:  day("2024-01-15"),
		EndDate:    day("2024-06-03"),
	}
	student := &domain.Student{
		ID:       uuid.New(),
		CourseID: course.ID,
		Schedule: domain.StudentSchedule{
			domain.Monday:    {"mon-08-09", "mon-09-10"},
			domain.Wednesday: {"wed-13-14", "wed-14-15"},
		},
	}

	records := make([]domain.AttendanceRecord, 0)
	for i := 0; i < 10; i++ {
		records = append(records, record(domain.AttendancePresent, 2))
	}
	records = append(records, record(domain.AttendanceAbsent, 2))

	t.Run("on track", func(t *testing.T) {
		got, err := newTracker().Summarize(student, course, records, day("2024-02-19"))
		require.NoError(t, err)

		assert.Equal(t, 4, got.WeeklyHours)
		assert.Equal(t, 20, got.CompletedHours)
		assert.Equal(t, 60, got.RemainingHours)
		assert.InDelta(t, 25.0, got.ProgressPercent, 1e-9)
		assert.False(t, got.Eligible)
		assert.Equal(t, "2024-06-03", got.Original.Date.Format(domain.DateFormat))
		assert.Equal(t, "2024-06-03", got.Current.Date.Format(domain.DateFormat))
		assert.False(t, got.BehindSchedule)
		assert.Equal(t, 11, got.Attendance.TotalClasses)
	})

	t.Run("behind schedule is a flag", func(t *testing.T) {
		got, err := newTracker().Summarize(student, course, records, day("2024-03-04"))
		require.NoError(t, err)

		assert.Equal(t, "2024-06-17", got.Current.Date.Format(domain.DateFormat))
		assert.True(t, got.BehindSchedule)
		assert.True(t, got.Current.Projectable)
	})

	t.Run("student start date wins over course start", func(t *testing.T) {
		late := day("2024-02-05")
		s := *student
		s.CourseStartDate = &late

		got, err := newTracker().Summarize(&s, course, records, day("2024-03-04"))
		require.NoError(t, err)
		assert.Equal(t, "2024-06-24", got.Original.Date.Format(domain.DateFormat))
	})
}

func TestTracker_Summarize_ReadyToFinalize(t *testing.T) {
	course := &domain.Course{ID: uuid.New(), TotalHours: 4, StartDate: day("2024-01-15"), EndDate: day("2024-01-22")}
	student := &domain.Student{
		ID:       uuid.New(),
		CourseID: course.ID,
		Schedule: domain.StudentSchedule{domain.Monday: {"mon-08-09"}},
	}
	records := []domain.AttendanceRecord{
		record(domain.AttendancePresent, 2),
		record(domain.AttendancePresent, 2),
	}

	got, err := newTracker().Summarize(student, course, records, day("2024-12-02"))
	require.NoError(t, err)

	assert.True(t, got.Eligible)
	assert.True(t, got.Current.ReadyToFinalize)
	assert.False(t, got.BehindSchedule)
	assert.Zero(t, got.RemainingHours)
}

func TestTracker_Summarize_Errors(t *testing.T) {
	course := &domain.Course{ID: uuid.New(), TotalHours: 80}

	t.Run("inconsistent schedule", func(t *testing.T) {
		student := &domain.Student{
			ID:       uuid.New(),
			CourseID: course.ID,
			Schedule: domain.StudentSchedule{domain.Friday: {"fri-08-09"}},
		}
		_, err := newTracker().Summarize(student, course, nil, day("2024-03-04"))
		assert.ErrorIs(t, err, schedule.ErrInconsistentSchedule)
		assert.ErrorIs(t, err, catalog.ErrUnknownSlot)
	})

	t.Run("course mismatch", func(t *testing.T) {
		student := &domain.Student{ID: uuid.New(), CourseID: uuid.New()}
		_, err := newTracker().Summarize(student, course, nil, day("2024-03-04"))
		assert.ErrorIs(t, err, ErrCourseMismatch)
	})
}

func TestPartial(t *testing.T) {
	course := &domain.Course{TotalHours: 10}
	records := []domain.AttendanceRecord{
		record(domain.AttendancePresent, 6),
		record(domain.AttendancePresent, 6),
		record(domain.AttendanceAbsent, 2),
	}

	got := Partial(course, records)

	assert.Equal(t, 12, got.CompletedHours)
	assert.Zero(t, got.RemainingHours)
	assert.InDelta(t, 120.0, got.ProgressPercent, 1e-9)
	assert.True(t, got.Eligible)
	assert.False(t, got.Original.Projectable)
	assert.False(t, got.BehindSchedule)
}
