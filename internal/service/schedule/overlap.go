package schedule

import "regexp"

// Zero-padded 24h clock. Lexicographic order on these strings equals
// chronological order within a day.
var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func validTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(s)
}

// rangesOverlap reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Inputs must be zero-padded HH:MM strings.
// Touching ranges do not overlap.
func rangesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}
