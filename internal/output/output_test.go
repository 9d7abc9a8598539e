package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klytics/bikemerge/internal/bikedata"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func testDataset() *bikedata.Dataset {
	return bikedata.New("combined_data", []bikedata.Record{
		bikedata.NewRecord(date("2020-05-05"), "Seaside", 3),
		bikedata.NewRecord(date("2023-01-01"), "Seaside", 10),
		bikedata.NewRecord(date("2023-01-01"), "Hornby", 2500),
	})
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined_bike_data.csv")
	if err := WriteCSV(path, testDataset()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "Date,Year,Month,Route,Count" {
		t.Errorf("bad header: %q", lines[0])
	}
	if lines[1] != "2020-05-05,2020,May,Seaside,3" {
		t.Errorf("bad first row: %q", lines[1])
	}
}

func TestRowsQuotedRoute(t *testing.T) {
	ds := bikedata.New("combined_data", []bikedata.Record{
		bikedata.NewRecord(date("2021-01-01"), "Seaside, West", 4),
	})

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSV(path, ds); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"Seaside, West"`) {
		t.Errorf("route with comma not quoted: %s", data)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(testDataset())

	if s.Records != 3 {
		t.Errorf("Records = %d", s.Records)
	}
	if s.FirstDate != "2020-05-05" || s.LastDate != "2023-01-01" {
		t.Errorf("date range = %s..%s", s.FirstDate, s.LastDate)
	}
	if s.Routes != 2 {
		t.Errorf("Routes = %d", s.Routes)
	}
	if s.TotalCount != 2513 {
		t.Errorf("TotalCount = %d", s.TotalCount)
	}
}

func TestRenderThousandsSeparators(t *testing.T) {
	ds := bikedata.New("combined_data", []bikedata.Record{
		bikedata.NewRecord(date("2021-01-01"), "Seaside", 1234567),
	})

	var buf bytes.Buffer
	Summarize(ds).Render(&buf)

	if !strings.Contains(buf.String(), "1,234,567") {
		t.Errorf("total count missing separators: %s", buf.String())
	}
}
