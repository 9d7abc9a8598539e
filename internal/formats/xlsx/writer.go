package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteSheet creates a new single-sheet .xlsx file from row data. Used when
// the combined dataset is written back out as a workbook instead of CSV.
func WriteSheet(path, name string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if name == "" {
		name = "Sheet1"
	}
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return fmt.Errorf("could not rename sheet: %w", err)
	}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("invalid cell coordinates: %w", err)
			}
			if err := f.SetCellValue(name, cellName, cell); err != nil {
				return fmt.Errorf("could not set cell %s: %w", cellName, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("could not save %s: %w", path, err)
	}

	return nil
}
