// Package extract normalizes raw spreadsheet sheets into bike-count
// datasets. The recent export is long-format (one row per observation);
// the historical export is wide-format (one column per route).
package extract

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mapping lists, per canonical field, the lowercase substrings that
// identify a source column header. The exports have drifted in their
// header naming over the years, so matching is by keyword rather than
// exact name.
type Mapping struct {
	Date  []string `yaml:"date"`
	Route []string `yaml:"route"`
	Count []string `yaml:"count"`
}

// DefaultMapping returns the keyword mapping that covers the published
// City of Vancouver exports.
func DefaultMapping() Mapping {
	return Mapping{
		Date:  []string{"date", "time"},
		Route: []string{"location", "route"},
		Count: []string{"volume", "count"},
	}
}

// LoadMapping reads a YAML mapping file. Fields left empty in the file
// fall back to the defaults.
func LoadMapping(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Mapping{}, fmt.Errorf("could not read mapping file: %w", err)
	}

	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Mapping{}, fmt.Errorf("invalid mapping file %s: %w", path, err)
	}

	def := DefaultMapping()
	if len(m.Date) == 0 {
		m.Date = def.Date
	}
	if len(m.Route) == 0 {
		m.Route = def.Route
	}
	if len(m.Count) == 0 {
		m.Count = def.Count
	}
	return m, nil
}

func matchesAny(header string, keywords []string) bool {
	h := strings.ToLower(strings.TrimSpace(header))
	for _, kw := range keywords {
		if strings.Contains(h, kw) {
			return true
		}
	}
	return false
}

// columns holds the resolved source column index per canonical field;
// -1 means no column matched.
type columns struct {
	date, route, count int
}

// resolve classifies each header against the mapping. A header is claimed
// by at most one field, and each field keeps its first match, so a header
// like "Count Date" cannot satisfy both Date and Count. Route is tried
// first since route names are the most distinctive.
func (m Mapping) resolve(headers []string) columns {
	c := columns{date: -1, route: -1, count: -1}
	for i, h := range headers {
		switch {
		case c.route < 0 && matchesAny(h, m.Route):
			c.route = i
		case c.date < 0 && matchesAny(h, m.Date):
			c.date = i
		case c.count < 0 && matchesAny(h, m.Count):
			c.count = i
		}
	}
	return c
}
