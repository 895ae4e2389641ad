package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTimeZone(t *testing.T) {
	t.Run("first valid candidate wins", func(t *testing.T) {
		got := ResolveTimeZone([]string{"America/New_York", "Europe/Paris"}, "UTC")
		assert.Equal(t, "America/New_York", got)
	})

	t.Run("invalid and empty candidates are skipped", func(t *testing.T) {
		got := ResolveTimeZone([]string{"", "Mars/Olympus", "Europe/Paris"}, "UTC")
		assert.Equal(t, "Europe/Paris", got)
	})

	t.Run("falls back when no candidate is valid", func(t *testing.T) {
		got := ResolveTimeZone([]string{"", "nope"}, "Asia/Tokyo")
		assert.Equal(t, "Asia/Tokyo", got)
	})

	t.Run("UTC is the last resort", func(t *testing.T) {
		got := ResolveTimeZone(nil, "also-invalid")
		assert.Equal(t, DefaultTimeZone, got)
	})
}

func TestResolveTimeZoneStrict(t *testing.T) {
	t.Run("returns the loaded location", func(t *testing.T) {
		loc, err := ResolveTimeZoneStrict([]string{"", "America/Los_Angeles"})
		require.NoError(t, err)
		assert.Equal(t, "America/Los_Angeles", loc.String())
	})

	t.Run("fails instead of guessing", func(t *testing.T) {
		_, err := ResolveTimeZoneStrict([]string{"", "not-a-zone"})
		require.Error(t, err)
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeValidation, be.Code)
		assert.Equal(t, "timeZone", be.Field)
	})
}
