package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := ParseDay("2025-10-20")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), got)
	})

	for _, bad := range []string{"", "2025/10/20", "20-10-2025", "2025-13-01", "2025-10-20T12:00:00Z", "yesterday"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := ParseDay(bad)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestDay(t *testing.T) {
	t.Run("truncates time of day", func(t *testing.T) {
		in := time.Date(2025, 10, 20, 23, 59, 59, 999999999, time.UTC)
		assert.Equal(t, time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), Day(in))
	})

	t.Run("converts to UTC first", func(t *testing.T) {
		// 23:00 UTC-5 is 04:00 next day in UTC.
		loc := time.FixedZone("UTC-5", -5*60*60)
		in := time.Date(2025, 10, 20, 23, 0, 0, 0, loc)
		assert.Equal(t, time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC), Day(in))
	})

	t.Run("midnight is a fixed point", func(t *testing.T) {
		in := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, in, Day(in))
	})
}

func TestFormatDay(t *testing.T) {
	assert.Equal(t, "2025-10-20", FormatDay(time.Date(2025, 10, 20, 15, 4, 5, 0, time.UTC)))

	// Round trip.
	day, err := ParseDay("2025-02-28")
	assert.NoError(t, err)
	assert.Equal(t, "2025-02-28", FormatDay(day))
}
