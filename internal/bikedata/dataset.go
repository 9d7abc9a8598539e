package bikedata

import "time"

// Column names of the normalized shape, in output order.
const (
	ColDate  = "Date"
	ColYear  = "Year"
	ColMonth = "Month"
	ColRoute = "Route"
	ColCount = "Count"
)

// RequiredColumns is the schema every dataset must expose before it can be
// combined.
var RequiredColumns = []string{ColDate, ColYear, ColMonth, ColRoute, ColCount}

// Dataset is an ordered collection of records sharing the normalized
// five-column shape. Columns records which columns were actually populated
// when the dataset was constructed; a fully normalized dataset carries all
// of RequiredColumns.
type Dataset struct {
	Name    string
	Columns []string
	Records []Record
}

// New returns a fully normalized dataset carrying all required columns.
func New(name string, records []Record) *Dataset {
	return &Dataset{
		Name:    name,
		Columns: append([]string(nil), RequiredColumns...),
		Records: records,
	}
}

// Empty reports whether the dataset is absent or has no records. A nil
// receiver means the dataset was never produced (missing file, failed
// extraction) and is treated the same as zero rows.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Records) == 0
}

// Len returns the number of records; zero for an absent dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// MissingColumns returns the required columns the dataset does not carry.
func (d *Dataset) MissingColumns() []string {
	have := make(map[string]bool, len(d.Columns))
	for _, c := range d.Columns {
		have[c] = true
	}
	var missing []string
	for _, c := range RequiredColumns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// Routes returns the number of distinct routes in the dataset.
func (d *Dataset) Routes() int {
	if d == nil {
		return 0
	}
	seen := make(map[string]bool)
	for _, r := range d.Records {
		seen[r.Route] = true
	}
	return len(seen)
}

// DateRange returns the earliest and latest observation dates. The zero
// time is returned for both when the dataset is empty.
func (d *Dataset) DateRange() (min, max time.Time) {
	if d.Empty() {
		return
	}
	min, max = d.Records[0].Date, d.Records[0].Date
	for _, r := range d.Records[1:] {
		if r.Date.Before(min) {
			min = r.Date
		}
		if r.Date.After(max) {
			max = r.Date
		}
	}
	return
}

// TotalCount sums the Count column.
func (d *Dataset) TotalCount() int {
	if d == nil {
		return 0
	}
	total := 0
	for _, r := range d.Records {
		total += r.Count
	}
	return total
}
