package availability

import "sort"

// Interval is a half-open [Start, End) span on a single calendar date,
// expressed in minutes from midnight (e.g. 540 for 9:00 AM). A slot ending
// exactly when another begins does not conflict.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// UnifyIntervals collapses possibly overlapping or adjacent intervals into
// the minimal set of disjoint, maximal intervals, sorted ascending. Standard
// sweep-line merge: sort by start, then fold each interval into the previous
// one whenever it starts at or before the previous end.
func UnifyIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start == sorted[j].Start {
			return sorted[i].End < sorted[j].End
		}
		return sorted[i].Start < sorted[j].Start
	})

	merged := sorted[:1]
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
