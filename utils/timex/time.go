// Package timex holds the time helpers behind the date/time SQL functions: an
// injectable clock, calendar unit alignment and field extraction.
package timex

import (
	"time"
)

// Clock is the single time source read by CURRENT_DATE, CURRENT_TIME,
// CURRENT_TIMESTAMP, LOCALTIME and LOCALTIMESTAMP.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// AlignTime aligns time to specified time unit. When roundUp is true, rounds up; when false, rounds down
func AlignTime(t time.Time, timeUnit time.Duration, roundUp bool) time.Time {
	trunc := t.Truncate(timeUnit)
	if roundUp && !t.Equal(trunc) {
		return trunc.Add(timeUnit)
	}
	return trunc
}

// TruncatePrecision keeps precision fractional second digits of t (0 to 9).
func TruncatePrecision(t time.Time, precision int) time.Time {
	if precision >= 9 {
		return t
	}
	if precision < 0 {
		precision = 0
	}
	unit := time.Second
	for i := 0; i < precision; i++ {
		unit /= 10
	}
	return t.Truncate(unit)
}
