package extract

import (
	"strconv"
	"strings"
	"time"
)

// Layouts seen across the exports. excelize returns date cells formatted
// per their cell style, so both ISO and US-style renderings show up.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"1/2/06 15:04",
	"Jan 2, 2006",
	"2-Jan-06",
	"January 2006",
	"Jan-06",
}

// Excel serial dates count days from the 1900 epoch (with the historical
// off-by-two, hence Dec 30 1899). Serials between these bounds cover
// 1955–2100, which is more than the counters have been running.
const (
	serialEpochOffset = -25569 // days from 1970-01-01 back to 1899-12-30
	serialMin         = 20000
	serialMax         = 80000
)

// parseDate coerces a cell value to a day-precision date. It accepts the
// textual layouts above plus raw Excel serial numbers.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Truncate(24 * time.Hour), true
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial >= serialMin && serial <= serialMax {
		days := int64(serial) + serialEpochOffset
		return time.Unix(days*86400, 0).UTC().Truncate(24 * time.Hour), true
	}

	return time.Time{}, false
}

// parseCount coerces a cell value to a non-negative integer count.
// Thousands separators are stripped; fractional values are truncated.
func parseCount(s string) (int, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return int(f), true
}
