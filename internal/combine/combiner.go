// Package combine merges the recent and historical bike-count datasets into
// a single deduplicated, chronologically sorted dataset.
package combine

import (
	"log/slog"
	"sort"

	"github.com/klytics/bikemerge/internal/bikedata"
)

// Combiner merges two normalized datasets. The logger is injected so the
// caller controls where warnings and errors about absent or malformed
// inputs end up.
type Combiner struct {
	log *slog.Logger
}

// New returns a Combiner that reports through the given logger.
func New(log *slog.Logger) *Combiner {
	return &Combiner{log: log}
}

// Combine merges the recent and historical datasets. Either input may be
// absent (nil or zero rows):
//   - both absent: logs an error and returns nil;
//   - one absent: logs a warning and returns the other unchanged;
//   - both present: validates that each carries the required columns,
//     concatenates historical before recent, drops duplicate (Date, Route)
//     keys keeping the first occurrence, and sorts ascending by
//     (Date, Route).
//
// A schema violation in either input aborts the combine and returns nil.
// Inputs are never mutated; the merged dataset is freshly allocated.
func (c *Combiner) Combine(recent, historical *bikedata.Dataset) *bikedata.Dataset {
	if recent.Empty() && historical.Empty() {
		c.log.Error("both datasets are empty or could not be processed")
		return nil
	}
	if recent.Empty() {
		c.log.Warn("recent data is missing, using only historical data")
		return historical
	}
	if historical.Empty() {
		c.log.Warn("historical data is missing, using only recent data")
		return recent
	}

	for _, ds := range []*bikedata.Dataset{recent, historical} {
		if missing := ds.MissingColumns(); len(missing) > 0 {
			c.log.Error("missing columns in dataset",
				"dataset", ds.Name,
				"columns", missing)
			return nil
		}
	}

	c.log.Info("combining datasets",
		"recent_rows", recent.Len(),
		"historical_rows", historical.Len())

	// Historical rows come first so they win on duplicate keys, matching
	// the order the source exports were published in.
	merged := make([]bikedata.Record, 0, recent.Len()+historical.Len())
	seen := make(map[bikedata.Key]bool, recent.Len()+historical.Len())
	for _, src := range []*bikedata.Dataset{historical, recent} {
		for _, r := range src.Records {
			k := r.Key()
			if seen[k] {
				continue
			}
			seen[k] = true
			merged = append(merged, r)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Date.Before(merged[j].Date)
		}
		return merged[i].Route < merged[j].Route
	})

	combined := bikedata.New("combined_data", merged)
	c.log.Info("combined data ready", "rows", combined.Len())
	return combined
}
