// Package combine provides the CLI command that runs the merge pipeline.
package combine

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/klytics/bikemerge/internal/bikedata"
	"github.com/klytics/bikemerge/internal/combine"
	"github.com/klytics/bikemerge/internal/config"
	"github.com/klytics/bikemerge/internal/extract"
	"github.com/klytics/bikemerge/internal/formats/xlsx"
	"github.com/klytics/bikemerge/internal/logging"
	"github.com/klytics/bikemerge/internal/output"
)

// Result is the machine-readable run summary emitted under --json.
type Result struct {
	Success    bool           `json:"success"`
	OutputFile string         `json:"output_file,omitempty"`
	Rows       int            `json:"rows,omitempty"`
	Duration   string         `json:"duration"`
	Summary    output.Summary `json:"summary"`
}

// NewCommand returns the combine subcommand.
func NewCommand() *cobra.Command {
	var (
		recentPath     string
		historicalPath string
		outputPath     string
		mappingPath    string
	)

	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Merge the recent and historical bike-count workbooks",
		Long: `Reads the two bike-volume workbooks, normalizes each into the
Date/Year/Month/Route/Count shape, merges them, drops duplicate
(Date, Route) observations, sorts chronologically, and writes the
combined dataset. A missing input file is skipped with a warning; the
run fails only when neither input exists or the datasets cannot be
combined.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			jsonFlag, _ := cmd.Flags().GetBool("json")
			verbose, _ := cmd.Flags().GetBool("verbose")
			log := logging.New(verbose)

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("could not load configuration: %w", err)
			}
			if !cmd.Flags().Changed("recent") {
				recentPath = cfg.Files.Recent
			}
			if !cmd.Flags().Changed("historical") {
				historicalPath = cfg.Files.Historical
			}
			if !cmd.Flags().Changed("output") {
				outputPath = cfg.Files.Output
			}

			mapping := extract.DefaultMapping()
			if mappingPath != "" {
				mapping, err = extract.LoadMapping(mappingPath)
				if err != nil {
					return err
				}
			}

			recentPath = checkInput(log, "recent", recentPath)
			historicalPath = checkInput(log, "historical", historicalPath)
			if recentPath == "" && historicalPath == "" {
				return errors.New("no input files found")
			}

			var recent, historical *bikedata.Dataset
			if recentPath != "" {
				log.Info("processing recent data", "file", recentPath)
				recent = loadDataset(log, recentPath, mapping, extract.Recent)
			}
			if historicalPath != "" {
				log.Info("processing historical data", "file", historicalPath)
				historical = loadDataset(log, historicalPath, mapping, extract.Historical)
			}

			combined := combine.New(log.With("component", "combiner")).Combine(recent, historical)
			if combined == nil {
				return errors.New("failed to create combined dataset")
			}

			if err := writeDataset(outputPath, combined); err != nil {
				return err
			}
			log.Info("combined data saved", "file", outputPath)

			summary := output.Summarize(combined)
			if jsonFlag {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(Result{
					Success:    true,
					OutputFile: outputPath,
					Rows:       combined.Len(),
					Duration:   time.Since(start).String(),
					Summary:    summary,
				})
			}

			summary.Render(os.Stdout)
			return nil
		},
	}

	cmd.Flags().StringVar(&recentPath, "recent", config.DefaultRecent, "Path to the recent bike data workbook")
	cmd.Flags().StringVar(&historicalPath, "historical", config.DefaultHistorical, "Path to the historical bike data workbook")
	cmd.Flags().StringVar(&outputPath, "output", config.DefaultOutput, "Path for the combined dataset (.csv, or .xlsx for a workbook)")
	cmd.Flags().StringVar(&mappingPath, "mapping", "", "YAML file overriding the column-name mapping")

	return cmd
}

// checkInput downgrades a missing input file to absent (empty path) with a
// warning rather than failing the run.
func checkInput(log *slog.Logger, name, path string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		log.Warn(name+" data file not found", "file", path)
		return ""
	}
	return path
}

type normalizer func(*slog.Logger, *xlsx.Sheet, extract.Mapping) *bikedata.Dataset

// loadDataset reads a workbook and normalizes its data sheet. Any failure
// downgrades the dataset to absent; the combiner decides whether the run
// can continue.
func loadDataset(log *slog.Logger, path string, m extract.Mapping, normalize normalizer) *bikedata.Dataset {
	wb, err := xlsx.ReadFile(path)
	if err != nil {
		log.Error("error reading workbook", "file", path, "error", err)
		return nil
	}
	return normalize(log.With("component", "extract"), wb.DataSheet(), m)
}

func writeDataset(path string, ds *bikedata.Dataset) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return xlsx.WriteSheet(path, "Combined", output.Rows(ds))
	}
	return output.WriteCSV(path, ds)
}
