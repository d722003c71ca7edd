package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, c.Hour)
	assert.Equal(t, 30, c.Minute)
	assert.Equal(t, "09:30", c.String())
}

func TestParseClock_Invalid(t *testing.T) {
	for _, s := range []string{"", "9:30:00", "25:00", "09-30", "abc"} {
		_, err := ParseClock(s)
		assert.ErrorIs(t, err, ErrInvalidClock, "input %q", s)
	}
}

func TestClockFromMinutes(t *testing.T) {
	c := ClockFromMinutes(13*60 + 45)
	assert.Equal(t, "13:45", c.String())
	assert.Equal(t, 13*60+45, c.Minutes())
}

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange("09:00-13:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00-13:00", r.String())
	assert.Equal(t, 240, r.DurationMinutes())
}

func TestParseTimeRange_Invalid(t *testing.T) {
	cases := []string{
		"",
		"09:00",
		"09:00-13:00-17:00",
		"13:00-09:00", // start after end
		"09:00-09:00", // zero length
		"xx:00-13:00",
	}
	for _, s := range cases {
		_, err := ParseTimeRange(s)
		assert.ErrorIs(t, err, ErrInvalidRange, "input %q", s)
	}
}
