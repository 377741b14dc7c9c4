package appointment

import "time"

// intervalsOverlap reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching intervals, where one ends exactly when
// the other starts, do not overlap.
func intervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
