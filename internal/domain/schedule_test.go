package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule(t *testing.T) {
	schedule, err := ParseSchedule(`{"Monday":["mon-09-10","mon-08-09","mon-08-09"],"saturday":[],"tuesday":["tue-13-14"]}`)
	require.NoError(t, err)

	assert.Equal(t, StudentSchedule{
		Monday:  {"mon-08-09", "mon-09-10"},
		Tuesday: {"tue-13-14"},
	}, schedule)
}

func TestParseSchedule_EmptyInputs(t *testing.T) {
	for _, raw := range []string{"", "  ", "null", "{}"} {
		schedule, err := ParseSchedule(raw)
		require.NoError(t, err, raw)
		assert.True(t, schedule.IsEmpty(), raw)
	}
}

func TestParseSchedule_Invalid(t *testing.T) {
	_, err := ParseSchedule(`{"sunday":["sun-08-09"]}`)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = ParseSchedule(`["mon-08-09"]`)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestStudentSchedule_PairsCalendarOrder(t *testing.T) {
	schedule := StudentSchedule{
		Saturday: {"sat-08-09"},
		Monday:   {"mon-10-11", "mon-08-09", "mon-10-11"},
	}

	assert.Equal(t, []SlotRef{
		{Day: Monday, SlotID: "mon-08-09"},
		{Day: Monday, SlotID: "mon-10-11"},
		{Day: Saturday, SlotID: "sat-08-09"},
	}, schedule.Pairs())
	assert.True(t, schedule.Contains(Monday, "mon-10-11"))
	assert.False(t, schedule.Contains(Tuesday, "mon-10-11"))
}

func TestStudentSchedule_EncodeRoundTrip(t *testing.T) {
	schedule := NewStudentSchedule(map[WeekDay][]string{Thursday: {"thu-14-15", "thu-14-15"}})

	raw, err := schedule.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"thursday":["thu-14-15"]}`, raw)
}

func TestScheduleFromMap(t *testing.T) {
	schedule, err := ScheduleFromMap(map[string][]string{
		"monday":    {"mon-09-10", " mon-08-09", "mon-09-10"},
		"Wednesday": {"wed-13-14"},
		"friday":    {},
	})
	require.NoError(t, err)
	assert.Equal(t, StudentSchedule{
		Monday:    {"mon-08-09", "mon-09-10"},
		Wednesday: {"wed-13-14"},
	}, schedule)

	empty, err := ScheduleFromMap(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = ScheduleFromMap(map[string][]string{"sunday": {"sun-08-09"}})
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}
