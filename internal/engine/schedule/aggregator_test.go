package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/catalog"
	"github.com/m04kA/SMC-CourseService/pkg/types"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.SlotDefinition{
		{ID: "mon-08-09", Day: domain.Monday, Start: types.MustTimeString("08:00"), End: types.MustTimeString("09:00")},
		{ID: "mon-13-15", Day: domain.Monday, Start: types.MustTimeString("13:00"), End: types.MustTimeString("15:00")},
		{ID: "sat-08-11", Day: domain.Saturday, Start: types.MustTimeString("08:00"), End: types.MustTimeString("11:00")},
	})
	require.NoError(t, err)
	return c
}

func TestAggregator_WeeklyHours(t *testing.T) {
	c := testCatalog(t)
	agg := NewAggregator(c)

	tests := []struct {
		name     string
		schedule domain.StudentSchedule
		want     int
	}{
		{name: "empty", schedule: domain.StudentSchedule{}, want: 0},
		{name: "nil", schedule: nil, want: 0},
		{name: "single slot", schedule: domain.StudentSchedule{domain.Monday: {"mon-08-09"}}, want: 1},
		{
			name: "several days",
			schedule: domain.StudentSchedule{
				domain.Monday:   {"mon-08-09", "mon-13-15"},
				domain.Saturday: {"sat-08-11"},
			},
			want: 6,
		},
		{
			name:     "duplicates collapse",
			schedule: domain.StudentSchedule{domain.Monday: {"mon-13-15", "mon-13-15"}},
			want:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := agg.WeeklyHours(tt.schedule)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// сумма совпадает с поштучным DurationOf
			sum := 0
			for _, ref := range tt.schedule.Pairs() {
				h, err := c.DurationOf(ref.Day, ref.SlotID)
				require.NoError(t, err)
				sum += h
			}
			assert.Equal(t, sum, got)
		})
	}
}

func TestAggregator_UnresolvedSlotIsAnError(t *testing.T) {
	agg := NewAggregator(testCatalog(t))

	_, err := agg.WeeklyHours(domain.StudentSchedule{
		domain.Monday:  {"mon-08-09"},
		domain.Tuesday: {"mon-13-15"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInconsistentSchedule)
	assert.ErrorIs(t, err, catalog.ErrUnknownSlot)

	assert.ErrorIs(t, agg.Validate(domain.StudentSchedule{domain.Friday: {"fri-08-09"}}), ErrInconsistentSchedule)
}

func TestAggregator_Breakdown(t *testing.T) {
	agg := NewAggregator(testCatalog(t))

	perDay, err := agg.Breakdown(domain.StudentSchedule{
		domain.Monday:   {"mon-08-09", "mon-13-15"},
		domain.Saturday: {"sat-08-11"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[domain.WeekDay]int{domain.Monday: 3, domain.Saturday: 3}, perDay)
}
