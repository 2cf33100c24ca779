package models

import (
	"math"
	"time"
)

// AgingDays returns the elapsed days since the reference date, rounded
// up so a lead created this morning already counts as one day old.
func AgingDays(reference, now time.Time) int {
	diff := now.Sub(reference)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// AgingBucketFor classifies elapsed days into an urgency bucket.
// Boundaries are inclusive on the lower bucket: day 2 is still Fresh.
func AgingBucketFor(days int) string {
	switch {
	case days <= 2:
		return BucketFresh
	case days <= 5:
		return BucketWarm
	case days <= 10:
		return BucketAtRisk
	default:
		return BucketCritical
	}
}
