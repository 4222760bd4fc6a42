// Package timerange provides interval math over zero-padded "HH:MM"
// wall-clock values. Lexicographic comparison is equivalent to
// minute-of-day comparison because every value shares the same format.
package timerange

import "strconv"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// DurationHours returns the length of [start, end) in decimal hours.
// The result is negative when end precedes start; callers are expected
// to reject non-positive durations before pricing.
func DurationHours(start, end string) float64 {
	sh, sm := splitClock(start)
	eh, em := splitClock(end)
	return float64(eh) + float64(em)/60 - (float64(sh) + float64(sm)/60)
}

func splitClock(v string) (int, int) {
	if len(v) != 5 || v[2] != ':' {
		return 0, 0
	}
	h, _ := strconv.Atoi(v[:2])
	m, _ := strconv.Atoi(v[3:])
	return h, m
}
