package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLocalDateTime(t *testing.T) {
	out, err := NormalizeLocalDateTime("2026-03-14T19:30", "-03:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14T19:30:00-03:00", out)

	out, err = NormalizeLocalDateTime("2026-12-01T08:00", "+05:30")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-01T08:00:00+05:30", out)
}

// Выбранные пользователем часы и минуты никогда не сдвигаются:
// они попадают в результат байт-в-байт, независимо от смещения
func TestNormalizeLocalDateTime_PreservesWallClock(t *testing.T) {
	for _, offset := range []string{"-12:00", "-03:00", "+00:00", "+05:30", "+14:00"} {
		out, err := NormalizeLocalDateTime("2026-07-01T23:45", offset)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "2026-07-01T23:45:00"), "offset %s", offset)
		assert.True(t, strings.HasSuffix(out, offset))
	}
}

func TestNormalizeLocalDateTime_Malformed(t *testing.T) {
	cases := []struct {
		local  string
		offset string
	}{
		{"2026-03-14 19:30", "-03:00"},
		{"2026-03-14T19:30:00", "-03:00"},
		{"14-03-2026T19:30", "-03:00"},
		{"2026-13-14T19:30", "-03:00"},
		{"2026-03-32T19:30", "-03:00"},
		{"2026-03-14T24:30", "-03:00"},
		{"2026-03-14T19:60", "-03:00"},
		{"", "-03:00"},
		{"2026-03-14T19:30", "03:00"},
		{"2026-03-14T19:30", "-3:00"},
		{"2026-03-14T19:30", "UTC"},
		{"2026-03-14T19:30", ""},
	}

	for _, tc := range cases {
		_, err := NormalizeLocalDateTime(tc.local, tc.offset)
		assert.ErrorIs(t, err, ErrMalformedDateTime, "local=%q offset=%q", tc.local, tc.offset)
	}
}
