package extract

import (
	"log/slog"
	"strings"

	"github.com/klytics/bikemerge/internal/bikedata"
	"github.com/klytics/bikemerge/internal/formats/xlsx"
)

// Historical normalizes the older export, which is wide-format: a date
// column plus one column per route. Each (row, route column) cell melts
// into its own record; blank and zero cells are skipped, matching how the
// city published months with no counter installed.
func Historical(log *slog.Logger, sheet *xlsx.Sheet, m Mapping) *bikedata.Dataset {
	if sheet == nil || len(sheet.Rows) < 2 {
		log.Error("no historical data to process")
		return nil
	}

	headers := sheet.Headers()
	log.Info("processing historical bike data", "columns", headers)

	dateIdx := m.resolve(headers).date
	if dateIdx < 0 {
		log.Error("no date column found in historical data")
		return nil
	}

	// Every non-date column is a route. Derived Year/Month columns from
	// earlier processing runs are skipped if present.
	type routeCol struct {
		idx  int
		name string
	}
	var routeCols []routeCol
	for i, h := range headers {
		name := strings.TrimSpace(h)
		if i == dateIdx || name == "" {
			continue
		}
		if name == bikedata.ColYear || name == bikedata.ColMonth {
			continue
		}
		routeCols = append(routeCols, routeCol{idx: i, name: name})
	}

	var records []bikedata.Record
	dropped := 0
	for _, row := range sheet.Rows[1:] {
		date, ok := parseDate(cell(row, dateIdx))
		if !ok {
			dropped++
			continue
		}
		for _, rc := range routeCols {
			count, ok := parseCount(cell(row, rc.idx))
			if !ok || count == 0 {
				continue
			}
			records = append(records, bikedata.NewRecord(date, rc.name, count))
		}
	}

	if dropped > 0 {
		log.Warn("dropping rows with invalid dates", "rows", dropped)
	}
	log.Info("processed historical data", "rows", len(records))

	return bikedata.New("historical_data", records)
}
