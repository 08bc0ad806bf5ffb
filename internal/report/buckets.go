// Package report holds the pure reducers that turn normalized record lists
// into the statistics and chart series served by the dashboard. Everything
// here is stateless; counts always reflect the list passed in, which is the
// fetched page, never a server-side total.
package report

import "admin/internal/models"

// CountByStatus tallies items into one bucket per recognized status in a
// single pass. Items with an unrecognized status contribute to Total and
// Unrecognized but to no named bucket, so the gap stays observable.
func CountByStatus[T any](items []T, status func(T) string, recognized ...string) models.StatusBuckets {
	buckets := models.StatusBuckets{
		Total:  len(items),
		Counts: make(map[string]int, len(recognized)),
	}
	for _, name := range recognized {
		buckets.Counts[name] = 0
	}

	for _, item := range items {
		key := status(item)
		if _, ok := buckets.Counts[key]; ok {
			buckets.Counts[key]++
		} else {
			buckets.Unrecognized++
		}
	}

	return buckets
}

// AdStats derives the ads page counters. Flagged is orthogonal to status: an
// ad counts as flagged whenever it carries at least one flag.
func AdStats(ads []models.AdRecord) (total, active, pending, flagged int) {
	total = len(ads)
	for _, ad := range ads {
		switch ad.Status {
		case "Active":
			active++
		case "Pending":
			pending++
		}
		if ad.Flags > 0 {
			flagged++
		}
	}
	return total, active, pending, flagged
}
