package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourseService/internal/domain"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func TestWeeksNeeded(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		weekly int
		want   int
	}{
		{"exact", 80, 4, 20},
		{"rounds up", 81, 4, 21},
		{"less than a week", 3, 4, 1},
		{"zero weekly", 80, 0, 0},
		{"zero total", 0, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeeksNeeded(tt.total, tt.weekly))
		})
	}
}

func TestProject_NoSkipBeforeDecember(t *testing.T) {
	p := NewProjector(domain.DefaultSkipCalendar())

	got := p.Project(date(t, "2024-01-15"), 80, 4)

	require.True(t, got.Projectable)
	assert.Equal(t, 20, got.Weeks)
	assert.Zero(t, got.SkippedWeeks)
	assert.Equal(t, "2024-06-03", got.Date.Format(domain.DateFormat))
}

func TestProject_SingleDecemberCrossing(t *testing.T) {
	p := NewProjector(domain.DefaultSkipCalendar())
	start := date(t, "2024-09-03")

	naive := NewProjector(nil).Project(start, 52, 4)
	got := p.Project(start, 52, 4)

	assert.Equal(t, "2024-12-03", naive.Date.Format(domain.DateFormat))
	assert.Equal(t, 1, got.SkippedWeeks)
	assert.Equal(t, naive.Date.AddDate(0, 0, 7), got.Date)
}

func TestProject_EachLandingInSkipPeriodAddsOneWeek(t *testing.T) {
	p := NewProjector(domain.DefaultSkipCalendar())

	got := p.Project(date(t, "2024-10-01"), 40, 4)

	assert.Equal(t, 10, got.Weeks)
	assert.Equal(t, 2, got.SkippedWeeks)
	assert.Equal(t, "2024-12-24", got.Date.Format(domain.DateFormat))
}

func TestProject_CustomSkipPeriod(t *testing.T) {
	recess, err := domain.NewSkipPeriod("2024-07-01", "2024-07-31")
	require.NoError(t, err)
	p := NewProjector(domain.SkipCalendar{recess})

	got := p.Project(date(t, "2024-06-24"), 8, 4)

	// 07-01 пропускается -> 07-08, затем 07-15 тоже в июле -> 07-22
	assert.Equal(t, 2, got.SkippedWeeks)
	assert.Equal(t, "2024-07-22", got.Date.Format(domain.DateFormat))
}

func TestProject_Unprojectable(t *testing.T) {
	p := NewProjector(domain.DefaultSkipCalendar())
	start := date(t, "2024-01-15")

	for _, got := range []Projection{
		p.Project(start, 80, 0),
		p.Project(start, 80, -2),
		p.Project(start, 0, 4),
	} {
		assert.False(t, got.Projectable)
		assert.Nil(t, got.DatePtr())
		assert.False(t, got.After(start))
	}
}

func TestProject_MonotonicInTotalHours(t *testing.T) {
	p := NewProjector(domain.DefaultSkipCalendar())
	start := date(t, "2024-08-05")

	prev := p.Project(start, 1, 4).Date
	for total := 2; total <= 200; total++ {
		cur := p.Project(start, total, 4).Date
		assert.False(t, cur.Before(prev), "total=%d", total)
		prev = cur
	}
}

func TestProject_MonotonicInWeeklyHours(t *testing.T) {
	p := NewProjector(domain.DefaultSkipCalendar())
	start := date(t, "2024-08-05")

	prev := p.Project(start, 120, 1).Date
	for weekly := 2; weekly <= 30; weekly++ {
		cur := p.Project(start, 120, weekly).Date
		assert.False(t, cur.After(prev), "weekly=%d", weekly)
		prev = cur
	}
}

func TestProjectRemaining(t *testing.T) {
	p := NewProjector(domain.DefaultSkipCalendar())
	today := date(t, "2024-03-04")

	t.Run("remaining hours", func(t *testing.T) {
		got := p.ProjectRemaining(today, 80, 72, 4)
		require.True(t, got.Projectable)
		assert.Equal(t, 8, got.Hours)
		assert.Equal(t, 2, got.Weeks)
		assert.Equal(t, "2024-03-18", got.Date.Format(domain.DateFormat))
	})

	t.Run("ready to finalize", func(t *testing.T) {
		got := p.ProjectRemaining(today, 80, 84, 4)
		assert.True(t, got.ReadyToFinalize)
		assert.False(t, got.Projectable)
		assert.Nil(t, got.DatePtr())
	})

	t.Run("no weekly hours", func(t *testing.T) {
		got := p.ProjectRemaining(today, 80, 10, 0)
		assert.False(t, got.ReadyToFinalize)
		assert.False(t, got.Projectable)
	})
}

func TestProjection_Outcome(t *testing.T) {
	p := NewProjector(nil)
	start := date(t, "2024-01-15")

	assert.Equal(t, "projected", p.Project(start, 8, 4).Outcome())
	assert.Equal(t, "unprojectable", p.Project(start, 8, 0).Outcome())
	assert.Equal(t, "ready", p.ProjectRemaining(start, 8, 8, 4).Outcome())
}
