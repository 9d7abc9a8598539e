package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMapping(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapping.yaml")
	content := "route:\n  - corridor\ncount:\n  - riders\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadMapping(path)
	if err != nil {
		t.Fatalf("LoadMapping failed: %v", err)
	}

	cols := m.resolve([]string{"Corridor", "Survey Date", "Riders"})
	if cols.route != 0 || cols.date != 1 || cols.count != 2 {
		t.Errorf("override mapping not applied: %+v", cols)
	}

	// Unspecified fields keep the defaults.
	if cols := m.resolve([]string{"date"}); cols.date != 0 {
		t.Error("default date keywords lost after override")
	}
}

func TestLoadMappingMissingFile(t *testing.T) {
	if _, err := LoadMapping("/nonexistent/mapping.yaml"); err == nil {
		t.Error("expected error for missing mapping file")
	}
}

func TestResolveAmbiguousHeaders(t *testing.T) {
	// "Count Date" must not satisfy both Date and Count.
	cols := DefaultMapping().resolve([]string{"Route Name", "Count Date", "Bike Count"})
	if cols.route != 0 || cols.date != 1 || cols.count != 2 {
		t.Errorf("ambiguous headers resolved wrong: %+v", cols)
	}
}
