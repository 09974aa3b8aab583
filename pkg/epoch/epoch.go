// Package epoch converts calendar timestamps to and from integer offsets since
// the unix epoch (1970-01-01T00:00:00 UTC), at millisecond or microsecond
// resolution.
//
// Any location carried by a time.Time is dropped before conversion: the wall
// clock reading is taken as UTC.
package epoch

import (
	"time"
)

// Epoch is the zero point of all offsets
var Epoch = time.Unix(0, 0).UTC()

// Strip returns the wall clock reading of t, reinterpreted in UTC.
func Strip(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Seconds elapsed since the epoch, with sub-second precision
func Seconds(t time.Time) float64 {
	w := Strip(t)
	return float64(w.Unix()) + float64(w.Nanosecond())/float64(time.Second)
}

// Milliseconds elapsed since the epoch, truncated toward zero
func Milliseconds(t time.Time) int64 {
	return truncated(Strip(t), time.Millisecond)
}

// Microseconds elapsed since the epoch, truncated toward zero
func Microseconds(t time.Time) int64 {
	return truncated(Strip(t), time.Microsecond)
}

// FromMicroseconds is the inverse of Microseconds. The result is in UTC.
func FromMicroseconds(us int64) time.Time {
	return time.UnixMicro(us).UTC()
}

// FromMilliseconds is the inverse of Milliseconds. The result is in UTC.
func FromMilliseconds(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// truncated counts whole units since the epoch. The second/nanosecond split is
// kept in integers, so no float rounding creeps into the result.
func truncated(t time.Time, unit time.Duration) int64 {
	u := int64(unit)
	perSecond := int64(time.Second) / u
	sec, nsec := t.Unix(), int64(t.Nanosecond())

	// nsec is always positive: this is the floor of the exact value
	n := sec*perSecond + nsec/u
	if n < 0 && nsec%u != 0 {
		n++
	}
	return n
}
