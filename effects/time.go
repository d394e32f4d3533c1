package effects

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

// Stopwatch starts timing now. Calling the returned function closes the span.
func Stopwatch() func() TimeSpan {
	start := time.Now()
	return func() TimeSpan {
		return NewTimeSpan(start, time.Now())
	}
}
