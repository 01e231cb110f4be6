package booking

import (
	"math"
	"time"
)

// Stay is a requested occupancy: a date range plus the party size.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   Guests
}

// DateOnly truncates t to midnight UTC. All stay comparisons are date-only;
// the time of day is ignored.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Validate checks the stay against the room capacity before anything is sent
// to the backend. today anchors the past-date check.
func (s Stay) Validate(capacity int, today time.Time) error {
	if s.Guests.Adults < 1 {
		return ErrNoAdults
	}

	in := DateOnly(s.CheckIn)
	out := DateOnly(s.CheckOut)

	if in.Before(DateOnly(today)) {
		return ErrCheckInPast
	}
	if !out.After(in) {
		return ErrCheckOutNotAfter
	}
	if s.Guests.Total() > capacity {
		return ErrOverCapacity
	}
	return nil
}

// Nights is the number of nights between check-in and check-out, rounded up
// on date-only granularity.
func (s Stay) Nights() int {
	hours := DateOnly(s.CheckOut).Sub(DateOnly(s.CheckIn)).Hours()
	if hours <= 0 {
		return 0
	}
	return int(math.Ceil(hours / 24))
}

// Total is the display-only price preview: nights times the nightly rate.
// The backend recomputes the authoritative total; this value is never
// submitted or billed.
func (s Stay) Total(nightlyRate float64) float64 {
	return float64(s.Nights()) * nightlyRate
}
