package export

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"domainreport/internal/common"
	"domainreport/internal/report"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleTable(label string) report.Table {
	return report.Table{
		Label:   label,
		Columns: []string{"Transcript_ID", "start", "end"},
		Rows: [][]string{
			{"ENST00000288602", "457", "717"},
			{"ENST00000275493", "", ""},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, WriteCSV(path, []report.Table{sampleTable("Domains")}, discardLogger()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Transcript_ID,start,end", lines[0])
	assert.Equal(t, "ENST00000288602,457,717", lines[1])
	assert.Equal(t, "ENST00000275493,,", lines[2])
}

func TestWriteCSVRejectsMultipleTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	tables := []report.Table{sampleTable("T1"), sampleTable("T2")}

	err := WriteCSV(path, tables, discardLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrFormatMismatch))

	// nothing was written
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteXLSXMultiSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	tables := []report.Table{sampleTable("ENST00000288602"), sampleTable("ENST00000275493")}

	require.NoError(t, WriteXLSX(path, tables, discardLogger()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"ENST00000288602", "ENST00000275493"}, f.GetSheetList())

	header, err := f.GetCellValue("ENST00000288602", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Transcript_ID", header)

	cell, err := f.GetCellValue("ENST00000288602", "B2")
	require.NoError(t, err)
	assert.Equal(t, "457", cell)
}

func TestSanitizeSheetName(t *testing.T) {
	assert.Equal(t, "ENST00000288602", SanitizeSheetName("ENST00000288602"))
	assert.Equal(t, "a_b_c", SanitizeSheetName("a:b/c"))
	assert.Equal(t, "Sheet", SanitizeSheetName("  "))
	long := strings.Repeat("x", 40)
	assert.Len(t, SanitizeSheetName(long), 31)
}

func TestWriteDispatch(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Write(filepath.Join(dir, "out.csv"), []report.Table{sampleTable("Domains")}, discardLogger()))
	require.NoError(t, Write(filepath.Join(dir, "out.xlsx"), []report.Table{sampleTable("Domains")}, discardLogger()))

	err := Write(filepath.Join(dir, "out.json"), []report.Table{sampleTable("Domains")}, discardLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConfiguration))
}
