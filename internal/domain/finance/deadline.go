package finance

import (
	"math"
	"time"
)

// DaysRemaining returns the whole days until due, rounding partial days up.
// A negative result means the deadline passed that many days ago.
func DaysRemaining(now, due time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// IsOverdue reports whether the deadline has passed at now.
func IsOverdue(now, due time.Time) bool {
	return DaysRemaining(now, due) < 0
}
