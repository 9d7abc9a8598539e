// Package output serializes the combined dataset and renders the run
// summary.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/klytics/bikemerge/internal/bikedata"
)

// Rows renders the dataset as string rows with a leading header, the shape
// both the CSV and the xlsx writers consume. No index column is emitted.
func Rows(ds *bikedata.Dataset) [][]string {
	rows := make([][]string, 0, ds.Len()+1)
	rows = append(rows, append([]string(nil), bikedata.RequiredColumns...))
	for _, r := range ds.Records {
		rows = append(rows, []string{
			r.Date.Format("2006-01-02"),
			strconv.Itoa(r.Year),
			r.Month,
			r.Route,
			strconv.Itoa(r.Count),
		})
	}
	return rows
}

// WriteCSV writes the dataset to path as UTF-8 comma-separated text.
func WriteCSV(path string, ds *bikedata.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(Rows(ds)); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return f.Close()
}
