package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Files.Recent != DefaultRecent {
		t.Errorf("default recent = %q", cfg.Files.Recent)
	}
	if cfg.Files.Historical != DefaultHistorical {
		t.Errorf("default historical = %q", cfg.Files.Historical)
	}
	if cfg.Files.Output != DefaultOutput {
		t.Errorf("default output = %q", cfg.Files.Output)
	}
	if !cfg.Output.Color {
		t.Error("color should default to true")
	}
}

func TestLoadConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfgDir := filepath.Join(dir, ".bikemerge")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "files:\n  output: merged.csv\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Files.Output != "merged.csv" {
		t.Errorf("config file not applied, output = %q", cfg.Files.Output)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Files.Recent != DefaultRecent {
		t.Errorf("default recent lost, got %q", cfg.Files.Recent)
	}
}
