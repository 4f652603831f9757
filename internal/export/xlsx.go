// Package export serializes shaped report tables to their destination file.
package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"domainreport/internal/report"
)

// Excel caps sheet names at 31 characters.
const maxSheetNameLen = 31

var sheetNameReplacer = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

// SanitizeSheetName makes a table label usable as an Excel sheet name.
func SanitizeSheetName(label string) string {
	name := sheetNameReplacer.Replace(strings.TrimSpace(label))
	if name == "" {
		name = "Sheet"
	}
	if len(name) > maxSheetNameLen {
		name = name[:maxSheetNameLen]
	}
	return name
}

// WriteXLSX writes each table to its own sheet of one workbook, with a header
// row and column widths sized to the content.
func WriteXLSX(path string, tables []report.Table, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("export.xlsx.close_error", "file", path, "error", err)
		}
	}()

	for i, table := range tables {
		sheet := SanitizeSheetName(table.Label)
		if i == 0 {
			// reuse the workbook's default sheet
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("rename sheet %s: %w", sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("create sheet %s: %w", sheet, err)
			}
		}
		if err := writeSheet(f, sheet, table); err != nil {
			return err
		}
	}
	if len(tables) > 0 {
		index, _ := f.GetSheetIndex(SanitizeSheetName(tables[0].Label))
		f.SetActiveSheet(index)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write %s: %w", path, err)
	}

	totalRows := 0
	for _, t := range tables {
		totalRows += len(t.Rows)
	}
	logger.Info("export.xlsx.ok",
		"file", path,
		"sheets", len(tables),
		"rows", totalRows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func writeSheet(f *excelize.File, sheet string, table report.Table) error {
	for i, header := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("sheet %s header cell: %w", sheet, err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("sheet %s header: %w", sheet, err)
		}
	}

	for r, row := range table.Rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("sheet %s cell: %w", sheet, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("sheet %s row %d: %w", sheet, r+1, err)
			}
		}
	}

	// Widen each column to its longest value plus a little padding.
	for i, header := range table.Columns {
		width := len(header)
		for _, row := range table.Rows {
			if i < len(row) && len(row[i]) > width {
				width = len(row[i])
			}
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("sheet %s column name: %w", sheet, err)
		}
		if err := f.SetColWidth(sheet, name, name, float64(width+2)); err != nil {
			return fmt.Errorf("sheet %s column width: %w", sheet, err)
		}
	}
	return nil
}
