package bikedata

import (
	"testing"
	"time"
)

func TestNewRecordDerivesYearAndMonth(t *testing.T) {
	d := time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC)
	r := NewRecord(d, "Seaside", 10)

	if r.Year != 2023 {
		t.Errorf("Year = %d", r.Year)
	}
	if r.Month != "Nov" {
		t.Errorf("Month = %q", r.Month)
	}
	if r.Key() != (Key{Date: "2023-11-05", Route: "Seaside"}) {
		t.Errorf("Key = %+v", r.Key())
	}
}

func TestEmpty(t *testing.T) {
	var absent *Dataset
	if !absent.Empty() {
		t.Error("nil dataset should be empty")
	}
	if !New("recent_data", nil).Empty() {
		t.Error("zero-row dataset should be empty")
	}
	ds := New("recent_data", []Record{NewRecord(time.Now(), "Hornby", 1)})
	if ds.Empty() {
		t.Error("populated dataset should not be empty")
	}
	if absent.Len() != 0 || ds.Len() != 1 {
		t.Errorf("Len: absent=%d ds=%d", absent.Len(), ds.Len())
	}
}

func TestMissingColumns(t *testing.T) {
	if missing := New("recent_data", nil).MissingColumns(); len(missing) != 0 {
		t.Errorf("fully normalized dataset reports missing: %v", missing)
	}

	partial := &Dataset{
		Name:    "recent_data",
		Columns: []string{ColDate, ColYear, ColMonth},
	}
	missing := partial.MissingColumns()
	if len(missing) != 2 || missing[0] != ColRoute || missing[1] != ColCount {
		t.Errorf("MissingColumns = %v, want [Route Count]", missing)
	}
}

func TestStats(t *testing.T) {
	day := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}
	ds := New("combined_data", []Record{
		NewRecord(day("2023-01-01"), "Seaside", 10),
		NewRecord(day("2020-05-05"), "Seaside", 3),
		NewRecord(day("2021-08-09"), "Hornby", 7),
	})

	min, max := ds.DateRange()
	if !min.Equal(day("2020-05-05")) || !max.Equal(day("2023-01-01")) {
		t.Errorf("DateRange = %v..%v", min, max)
	}
	if ds.Routes() != 2 {
		t.Errorf("Routes = %d", ds.Routes())
	}
	if ds.TotalCount() != 20 {
		t.Errorf("TotalCount = %d", ds.TotalCount())
	}
}
