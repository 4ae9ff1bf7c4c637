package sink

import (
	"os"
	"path/filepath"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
	"github.com/xuri/excelize/v2"

	"stat-scanner/src/pkg/record"
)

// WriteXLSX exports records to a single-sheet workbook with a header row.
func WriteXLSX(records []record.Record, outputPath string) (e *xerr.Error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()
	sheet := f.GetSheetName(0)

	for i, h := range Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range records {
		rowNumber := i + 2
		for col, value := range Row(r) {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNumber)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	err := os.MkdirAll(filepath.Dir(outputPath), 0o755)
	if err != nil {
		e = xerr.NewError(err, "create workbook output directory", outputPath)
		return e
	}

	err = f.SaveAs(outputPath)
	if err != nil {
		e = xerr.NewError(err, "save workbook", outputPath)
		return e
	}

	tl.Log(tl.Notice1, palette.GreenBold, "Workbook saved to '%s' (%d rows)", outputPath, len(records))
	return nil
}
