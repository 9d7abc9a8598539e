package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/klytics/bikemerge/internal/bikedata"
)

// Summary captures the headline statistics of a combined dataset.
type Summary struct {
	Records    int    `json:"records"`
	FirstDate  string `json:"first_date"`
	LastDate   string `json:"last_date"`
	Routes     int    `json:"routes"`
	TotalCount int    `json:"total_count"`
}

// Summarize computes the run summary for the combined dataset.
func Summarize(ds *bikedata.Dataset) Summary {
	min, max := ds.DateRange()
	return Summary{
		Records:    ds.Len(),
		FirstDate:  formatDate(min),
		LastDate:   formatDate(max),
		Routes:     ds.Routes(),
		TotalCount: ds.TotalCount(),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// Render writes the summary as a short human-readable block. The total
// bike count gets thousands separators, matching the original reports.
func (s Summary) Render(w io.Writer) {
	bold := color.New(color.Bold)
	p := message.NewPrinter(language.English)

	bold.Fprintln(w, "Data summary:")
	fmt.Fprintf(w, "  - Total records: %d\n", s.Records)
	fmt.Fprintf(w, "  - Date range: %s to %s\n", s.FirstDate, s.LastDate)
	fmt.Fprintf(w, "  - Routes: %d\n", s.Routes)
	p.Fprintf(w, "  - Total bike count: %d\n", s.TotalCount)
}
