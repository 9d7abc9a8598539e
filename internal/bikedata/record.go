// Package bikedata defines the normalized bike-count data model shared by
// the extractors, the combiner, and the output writers.
package bikedata

import "time"

// Record is one normalized bike-count observation. Year and Month are
// derived from Date but carried as separate columns for output
// compatibility with the source exports.
type Record struct {
	Date  time.Time `json:"date"`
	Year  int       `json:"year"`
	Month string    `json:"month"` // three-letter abbreviation, e.g. "Jan"
	Route string    `json:"route"`
	Count int       `json:"count"`
}

// NewRecord builds a Record from an observation date, route name, and count,
// deriving the Year and Month columns.
func NewRecord(date time.Time, route string, count int) Record {
	return Record{
		Date:  date,
		Year:  date.Year(),
		Month: date.Format("Jan"),
		Route: route,
		Count: count,
	}
}

// Key identifies a record for deduplication. Dates are compared at day
// precision.
type Key struct {
	Date  string
	Route string
}

// Key returns the (Date, Route) deduplication key of the record.
func (r Record) Key() Key {
	return Key{Date: r.Date.Format("2006-01-02"), Route: r.Route}
}
