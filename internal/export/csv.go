package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"domainreport/internal/common"
	"domainreport/internal/report"
)

// WriteCSV serializes a single table to a comma-delimited file. A delimited
// destination cannot hold a multi-sheet report; that is rejected before any
// file is created.
func WriteCSV(path string, tables []report.Table, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if len(tables) != 1 {
		return common.NewAppError("FORMAT_MISMATCH",
			fmt.Sprintf("delimited output %s holds exactly one table, report has %d", path, len(tables)),
			common.ErrFormatMismatch)
	}
	table := tables[0]

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("export.csv.close_error", "file", path, "error", err)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(table.Columns); err != nil {
		return fmt.Errorf("write header to %s: %w", path, err)
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	logger.Info("export.csv.ok", "file", path, "rows", len(table.Rows))
	return nil
}
