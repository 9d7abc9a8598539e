package extract

import (
	"log/slog"
	"strings"

	"github.com/klytics/bikemerge/internal/bikedata"
	"github.com/klytics/bikemerge/internal/formats/xlsx"
)

// Recent normalizes the 2021–2024 export, which is long-format: one row
// per (date, route) observation with the count in a volume column.
// Rows with unparseable dates, blank routes, or unusable counts are
// dropped with a logged total. Returns nil when the sheet has no usable
// shape at all.
func Recent(log *slog.Logger, sheet *xlsx.Sheet, m Mapping) *bikedata.Dataset {
	if sheet == nil || len(sheet.Rows) < 2 {
		log.Error("no recent data to process")
		return nil
	}

	headers := sheet.Headers()
	log.Info("processing recent bike data", "columns", headers)

	cols := m.resolve(headers)
	if cols.date < 0 {
		log.Error("no date column found in recent data")
		return nil
	}
	if cols.route < 0 || cols.count < 0 {
		log.Error("could not create standardized format - missing location or volume data")
		return nil
	}

	var records []bikedata.Record
	dropped := 0
	for _, row := range sheet.Rows[1:] {
		date, ok := parseDate(cell(row, cols.date))
		if !ok {
			dropped++
			continue
		}
		route := strings.TrimSpace(cell(row, cols.route))
		count, ok := parseCount(cell(row, cols.count))
		if route == "" || !ok {
			dropped++
			continue
		}
		records = append(records, bikedata.NewRecord(date, route, count))
	}

	if dropped > 0 {
		log.Warn("dropping rows with invalid dates or values", "rows", dropped)
	}
	log.Info("processed recent data", "rows", len(records))

	return bikedata.New("recent_data", records)
}

// cell returns the value at index i, tolerating the ragged rows excelize
// produces when trailing cells are empty.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
