// Package inspect provides a command for examining workbook structure
// before running a merge.
package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/klytics/bikemerge/internal/formats/xlsx"
)

const previewRows = 5

// NewCommand returns the inspect subcommand.
func NewCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "inspect [file.xlsx...]",
		Short: "Show the sheets and structure of bike-count workbooks",
		Long:  "Prints each workbook's sheets, their dimensions, and a preview of the leading rows, so the column layout can be checked before combining.",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			paths := args
			if all {
				matches, err := filepath.Glob("*.xlsx")
				if err != nil {
					return err
				}
				paths = append(paths, matches...)
			}
			if len(paths) == 0 {
				return fmt.Errorf("no workbooks to inspect — pass a file or use --all")
			}

			if jsonFlag {
				return inspectJSON(paths)
			}
			for _, path := range paths {
				if err := inspectPretty(path); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Inspect every .xlsx file in the current directory")

	return cmd
}

func inspectJSON(paths []string) error {
	type sheetInfo struct {
		Name    string `json:"name"`
		Rows    int    `json:"rows"`
		Columns int    `json:"columns"`
	}
	type fileInfo struct {
		File   string      `json:"file"`
		Sheets []sheetInfo `json:"sheets"`
	}

	var out []fileInfo
	for _, path := range paths {
		wb, err := xlsx.ReadFile(path)
		if err != nil {
			return err
		}
		info := fileInfo{File: path}
		for _, s := range wb.Sheets {
			info.Sheets = append(info.Sheets, sheetInfo{
				Name:    s.Name,
				Rows:    s.RowCount(),
				Columns: len(s.Headers()),
			})
		}
		out = append(out, info)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func inspectPretty(path string) error {
	wb, err := xlsx.ReadFile(path)
	if err != nil {
		return err
	}

	headerStyle := color.New(color.Bold, color.FgCyan)
	dim := color.New(color.FgHiBlack)

	headerStyle.Printf("File: %s\n", path)
	for _, sheet := range wb.Sheets {
		fmt.Printf("  Sheet: %s (%d rows, %d columns)\n", sheet.Name, sheet.RowCount(), len(sheet.Headers()))

		if len(sheet.Rows) == 0 {
			dim.Println("    (empty)")
			continue
		}

		limit := previewRows
		if len(sheet.Rows) < limit {
			limit = len(sheet.Rows)
		}
		widths := columnWidths(sheet.Rows[:limit])
		for i := 0; i < limit; i++ {
			printRow(sheet.Rows[i], widths, i == 0)
		}
		if len(sheet.Rows) > limit {
			dim.Printf("    ... %d more rows\n", len(sheet.Rows)-limit)
		}
	}
	fmt.Println()
	return nil
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for j, cell := range row {
			for len(widths) <= j {
				widths = append(widths, 3)
			}
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}
	for i := range widths {
		if widths[i] > 40 {
			widths[i] = 40
		}
	}
	return widths
}

func printRow(row []string, widths []int, header bool) {
	bold := color.New(color.Bold)
	fmt.Print("    ")
	for j := range widths {
		if j > 0 {
			fmt.Print("| ")
		}
		cell := ""
		if j < len(row) {
			cell = row[j]
		}
		if len(cell) > widths[j] {
			cell = cell[:widths[j]-1] + "~"
		}
		padded := cell + strings.Repeat(" ", widths[j]-len(cell)+1)
		if header {
			bold.Print(padded)
		} else {
			fmt.Print(padded)
		}
	}
	fmt.Println()
}
