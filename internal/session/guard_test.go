package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Nahom8bit/Balancer/internal/ledger"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 1, hour, minute, 0, 0, time.UTC)
}

// -- IsWithinClosingWindow tests --

func TestIsWithinClosingWindow_DefaultBoundaries(t *testing.T) {
	w := Window{StartHour: 18, EndHour: 24, Location: time.UTC}

	assert.False(t, w.IsWithinClosingWindow(at(17, 59)))
	assert.True(t, w.IsWithinClosingWindow(at(18, 0)))
	assert.True(t, w.IsWithinClosingWindow(at(23, 59)))
	assert.False(t, w.IsWithinClosingWindow(at(0, 0)))
	assert.False(t, w.IsWithinClosingWindow(at(12, 0)))
}

func TestIsWithinClosingWindow_Reconfigured(t *testing.T) {
	w := Window{StartHour: 9, EndHour: 17, Location: time.UTC}

	assert.False(t, w.IsWithinClosingWindow(at(8, 59)))
	assert.True(t, w.IsWithinClosingWindow(at(9, 0)))
	assert.True(t, w.IsWithinClosingWindow(at(16, 59)))
	assert.False(t, w.IsWithinClosingWindow(at(17, 0)))
}

func TestIsWithinClosingWindow_PastMidnight(t *testing.T) {
	w := Window{StartHour: 22, EndHour: 2, Location: time.UTC}

	assert.True(t, w.IsWithinClosingWindow(at(23, 0)))
	assert.True(t, w.IsWithinClosingWindow(at(1, 59)))
	assert.False(t, w.IsWithinClosingWindow(at(2, 0)))
	assert.False(t, w.IsWithinClosingWindow(at(21, 59)))
}

func TestIsWithinClosingWindow_UsesWindowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+1", 3600)
	w := Window{StartHour: 18, EndHour: 24, Location: loc}

	// 17:30 UTC is 18:30 in UTC+1.
	assert.True(t, w.IsWithinClosingWindow(at(17, 30)))
	// 23:30 UTC is 00:30 the next day in UTC+1.
	assert.False(t, w.IsWithinClosingWindow(at(23, 30)))
}

// -- AssertSameDay tests --

func TestAssertSameDay_EmptyStore(t *testing.T) {
	assert.NoError(t, AssertSameDay(at(19, 0), nil))
}

func TestAssertSameDay_SameDayDifferentTime(t *testing.T) {
	latest := at(0, 1)
	assert.NoError(t, AssertSameDay(at(23, 59), &latest))
}

func TestAssertSameDay_PreviousDay(t *testing.T) {
	latest := at(23, 59).AddDate(0, 0, -1)
	assert.ErrorIs(t, AssertSameDay(at(18, 0), &latest), ledger.ErrStaleSession)
}

func TestAssertSameDay_ComparesInCurrentLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*3600)
	current := time.Date(2025, 6, 1, 20, 0, 0, 0, loc)
	// 01:00 UTC on June 2nd is 22:00 on June 1st in UTC-3.
	latest := time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC)

	assert.NoError(t, AssertSameDay(current, &latest))
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(at(19, 45))

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), end)
}
