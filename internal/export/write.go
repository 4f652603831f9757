package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"domainreport/internal/common"
	"domainreport/internal/report"
)

// Write dispatches on the destination extension: .csv gets the delimited
// writer, .xlsx/.xls the spreadsheet writer.
func Write(path string, tables []report.Table, logger *slog.Logger) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return WriteCSV(path, tables, logger)
	case ".xlsx", ".xls":
		return WriteXLSX(path, tables, logger)
	default:
		return common.NewAppError("CONFIG_ERROR",
			fmt.Sprintf("output file %s is not supported (only Excel and CSV are supported)", path),
			common.ErrConfiguration)
	}
}
