package session

import (
	"time"

	"github.com/Nahom8bit/Balancer/internal/ledger"
)

const (
	DefaultWindowStartHour = 18
	DefaultWindowEndHour   = 24
)

// Window is the daily span of local hours during which entries may be
// recorded. StartHour is inclusive, EndHour exclusive. A window with
// StartHour > EndHour runs past midnight.
type Window struct {
	StartHour int
	EndHour   int
	Location  *time.Location
}

// DefaultWindow is 6pm to midnight in the process local time zone.
func DefaultWindow() Window {
	return Window{
		StartHour: DefaultWindowStartHour,
		EndHour:   DefaultWindowEndHour,
		Location:  time.Local,
	}
}

// IsWithinClosingWindow reports whether now's local hour is inside the window.
func (w Window) IsWithinClosingWindow(now time.Time) bool {
	if w.Location != nil {
		now = now.In(w.Location)
	}
	hour := now.Hour()
	if w.StartHour <= w.EndHour {
		return hour >= w.StartHour && hour < w.EndHour
	}
	return hour >= w.StartHour || hour < w.EndHour
}

// AssertSameDay succeeds when the store is empty (latest is nil) or its
// latest entry falls on the same calendar day as current, in current's
// location.
func AssertSameDay(current time.Time, latest *time.Time) error {
	if latest == nil {
		return nil
	}
	if !SameDay(current, *latest) {
		return ledger.ErrStaleSession
	}
	return nil
}

// SameDay compares two instants at day granularity in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayBounds returns the start of t's day and the start of the next day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
