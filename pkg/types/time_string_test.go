package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, bad := range []string{"9:30", "09:60", "24:00", "09-30", "", "09:30:00", "ab:cd"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
	assert.True(t, TimeString("10:00").Equal("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	// выход за пределы суток — ошибка, расписания не пересекают полночь
	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_MinutesUntil(t *testing.T) {
	d, err := TimeString("09:00").MinutesUntil("10:30")
	require.NoError(t, err)
	assert.Equal(t, 90, d)

	d, err = TimeString("10:30").MinutesUntil("09:00")
	require.NoError(t, err)
	assert.Equal(t, -90, d)
}

func TestNewTimeString_FromTime(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 14, 7, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("07:05"), ts)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 22, 40, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("22:40"), ts)

	assert.Error(t, ts.Scan(123))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	_, err = TimeString("25:00").Value()
	assert.Error(t, err)
}
