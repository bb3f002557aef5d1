package chrono

import (
	"fmt"
	"math"
)

// MaxDuration is the largest representable Duration. It stands in for the
// unbounded span of the Forever unit.
var MaxDuration = Duration{Seconds: math.MaxInt64, Nanos: 999999999}

// Duration is a span of time as whole seconds plus a non-negative
// nanosecond remainder. Unlike time.Duration it can represent spans far
// beyond 290 years, which calendar units such as Eras require.
//
// Durations attached to calendar units are estimates used for
// documentation and ordering only; they never take part in exact date
// arithmetic.
type Duration struct {
	Seconds int64
	Nanos   int32
}

// DurationOfSeconds returns a Duration of the given whole seconds.
func DurationOfSeconds(seconds int64) Duration {
	return Duration{Seconds: seconds}
}

// Less returns true if d is a shorter span than other.
func (d Duration) Less(other Duration) bool {
	if d.Seconds != other.Seconds {
		return d.Seconds < other.Seconds
	}
	return d.Nanos < other.Nanos
}

// String returns the duration in seconds, e.g. "86400s" or "1.5s".
func (d Duration) String() string {
	if d.Nanos == 0 {
		return fmt.Sprintf("%ds", d.Seconds)
	}
	return fmt.Sprintf("%d.%09ds", d.Seconds, d.Nanos)
}
