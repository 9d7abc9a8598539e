// Package doctor provides the "bikemerge doctor" command for checking the
// run environment.
package doctor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/klytics/bikemerge/internal/config"
)

// Check represents a single health check result.
type Check struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "warning", "error"
	Message string `json:"message"`
}

// NewCommand creates the "doctor" command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and input files",
		Long:  "Run diagnostic checks to verify the configuration and the default input workbooks before a merge.",
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := runChecks()

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(checks)
			}

			green := color.New(color.FgGreen).SprintFunc()
			yellow := color.New(color.FgYellow).SprintFunc()
			red := color.New(color.FgRed).SprintFunc()

			fmt.Println("bikemerge doctor")
			fmt.Println("================")
			fmt.Println()

			okCount, warnCount, errCount := 0, 0, 0
			for _, c := range checks {
				var icon string
				switch c.Status {
				case "ok":
					icon = green("✓")
					okCount++
				case "warning":
					icon = yellow("!")
					warnCount++
				case "error":
					icon = red("✗")
					errCount++
				}
				fmt.Printf("  %s %s: %s\n", icon, c.Name, c.Message)
			}

			fmt.Println()
			fmt.Printf("  %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

			if errCount > 0 {
				return fmt.Errorf("%d check(s) failed", errCount)
			}
			return nil
		},
	}
}

func runChecks() []Check {
	var checks []Check

	configDir := config.Dir()
	if info, err := os.Stat(configDir); err == nil && info.IsDir() {
		checks = append(checks, Check{"Config Directory", "ok", configDir})
	} else {
		checks = append(checks, Check{"Config Directory", "warning",
			fmt.Sprintf("%s not found — defaults apply", configDir)})
	}

	cfg, err := config.Load()
	if err != nil {
		checks = append(checks, Check{"Configuration", "error", err.Error()})
		return checks
	}
	checks = append(checks, Check{"Configuration", "ok", "loaded"})

	checks = append(checks, checkInputFile("Recent Workbook", cfg.Files.Recent))
	checks = append(checks, checkInputFile("Historical Workbook", cfg.Files.Historical))

	// At least one input must exist for a merge to run at all.
	if checks[len(checks)-1].Status != "ok" && checks[len(checks)-2].Status != "ok" {
		checks = append(checks, Check{"Inputs", "error", "neither input workbook exists — a merge would fail"})
	} else {
		checks = append(checks, Check{"Inputs", "ok", "at least one input workbook present"})
	}

	outDir := filepath.Dir(cfg.Files.Output)
	if f, err := os.CreateTemp(outDir, ".bikemerge-doctor-*"); err == nil {
		f.Close()
		os.Remove(f.Name())
		checks = append(checks, Check{"Output Directory", "ok", outDir + " is writable"})
	} else {
		checks = append(checks, Check{"Output Directory", "error",
			fmt.Sprintf("cannot write to %s: %v", outDir, err)})
	}

	return checks
}

func checkInputFile(name, path string) Check {
	if _, err := os.Stat(path); err != nil {
		return Check{name, "warning", fmt.Sprintf("%s not found — this input will be skipped", path)}
	}
	return Check{name, "ok", path}
}
