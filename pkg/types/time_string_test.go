package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("08:30")
	require.NoError(t, err)
	assert.Equal(t, 8*60+30, ts.Minutes())
	assert.Equal(t, "08:30", ts.String())

	_, err = NewTimeStringFromString("8h")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutesAndCompare(t *testing.T) {
	start := MustTimeString("13:00")

	end, err := start.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "14:00", end.String())
	assert.True(t, start.IsBefore(end))
	assert.True(t, end.IsAfter(start))
	assert.Equal(t, 60, start.MinutesUntil(end))

	_, err = MustTimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, "09:00", ts.String())

	assert.Error(t, ts.Scan(42))
}
