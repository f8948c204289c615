package core

import (
	"time"

	"github.com/mlcortez/footprint/schema"
)

// EstimateActiveHours converts a chronologically sorted commit timeline
// into an estimated number of actively worked hours using the session-gap
// heuristic. The input must be the union of matched commits across every
// repository, sorted ascending: a session may span work recorded under
// different repository names, so per-repository estimation would change
// the result.
//
// The first commit seeds one hour of setup time. Each gap shorter than the
// session threshold is billed in full as continuous work; a longer gap is
// discarded and replaced with a flat one-hour session start. The estimate
// is monotonic in commit count and insensitive to gap length beyond the
// threshold. It is an approximation, not a measured duration.
func EstimateActiveHours(timestamps []time.Time) float64 {
	if len(timestamps) == 0 {
		return 0
	}
	total := schema.SessionSeed
	for i := 1; i < len(timestamps); i++ {
		gap := timestamps[i].Sub(timestamps[i-1])
		if gap < schema.SessionGap {
			total += gap
		} else {
			total += schema.SessionSeed
		}
	}
	return total.Hours()
}
