package booking

import "time"

// overlaps reports whether two [start, end) windows share at least one instant.
// Windows that merely touch at a boundary do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
