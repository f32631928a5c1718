package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"hideout-tracker/internal/catalog"
)

// XLSX writes one station's craft table as a single-sheet workbook named
// after the station.
func XLSX(w io.Writer, stationName string, crafts []catalog.Craft) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := stationName
	if sheet == "" {
		sheet = "Crafts"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	if err := setRow(f, sheet, 1, columns); err != nil {
		return err
	}
	for i, c := range crafts {
		if err := setRow(f, sheet, i+2, row(c)); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, n int, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, v := range cells {
		values[i] = v
	}
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return fmt.Errorf("row %d: %w", n, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", n, err)
	}
	return nil
}
