package report

import (
	"fmt"
	"strings"

	"domainreport/constants"
	"domainreport/internal/common"
)

// Table is one shaped output table. Rows are positional against Columns.
type Table struct {
	Label   string
	Columns []string
	Rows    [][]string
}

// ColumnFlags toggles the optional ID columns. Enabled columns always appear
// in the fixed relative order UniProt_ID, Gene_ID, Gene_name, Protein_ID,
// UniProt_URL, immediately after the transcript column.
type ColumnFlags struct {
	UniProtID  bool
	GeneID     bool
	GeneName   bool
	ProteinID  bool
	UniProtURL bool
}

// columns returns the enabled optional column labels in the fixed order.
func (f ColumnFlags) columns() []string {
	var cols []string
	if f.UniProtID {
		cols = append(cols, constants.LabelUniProtID)
	}
	if f.GeneID {
		cols = append(cols, constants.LabelGeneID)
	}
	if f.GeneName {
		cols = append(cols, constants.LabelGeneName)
	}
	if f.ProteinID {
		cols = append(cols, constants.LabelProteinID)
	}
	if f.UniProtURL {
		cols = append(cols, constants.LabelUniProtURL)
	}
	return cols
}

// values returns the record fields matching columns(), in the same order.
func (f ColumnFlags) values(r TranscriptRecord) []string {
	var vals []string
	if f.UniProtID {
		vals = append(vals, r.UniProtID)
	}
	if f.GeneID {
		vals = append(vals, r.GeneID)
	}
	if f.GeneName {
		vals = append(vals, r.GeneName)
	}
	if f.ProteinID {
		vals = append(vals, r.ProteinID)
	}
	if f.UniProtURL {
		vals = append(vals, r.UniProtURL)
	}
	return vals
}

// Shape turns the collected per-transcript records into the output tables of
// the selected layout. It never mutates its input; every row is freshly built.
func Shape(format constants.ReportFormat, transcripts []TranscriptDomains, flags ColumnFlags) ([]Table, error) {
	switch format {
	case constants.FormatBasic:
		return []Table{shapeBasic(transcripts, flags)}, nil
	case constants.FormatCompact:
		return []Table{shapeCompact(transcripts, flags)}, nil
	case constants.FormatExpanded:
		return shapeExpanded(transcripts, flags), nil
	default:
		return nil, common.NewAppError("CONFIG_ERROR",
			fmt.Sprintf("output format %q is not supported (supported: %s)",
				format, strings.Join(constants.Formats(), ", ")),
			common.ErrConfiguration)
	}
}

// attributeColumns is the union of domain attribute names across the whole
// collection, in first-seen order. Transcripts whose domains lack an attribute
// get a blank cell in that column.
func attributeColumns(transcripts []TranscriptDomains) []string {
	var cols []string
	seen := make(map[string]struct{})
	for _, t := range transcripts {
		for _, d := range t.Domains {
			for _, attr := range d {
				if _, ok := seen[attr.Name]; ok {
					continue
				}
				seen[attr.Name] = struct{}{}
				cols = append(cols, attr.Name)
			}
		}
	}
	return cols
}

// domainRows builds the basic-layout rows of one transcript: one row per
// domain, or a single row with blank domain cells when there are none, so the
// transcript is never silently missing from the report.
func domainRows(t TranscriptDomains, flags ColumnFlags, attrCols []string) [][]string {
	prefix := append([]string{t.Record.TranscriptID}, flags.values(t.Record)...)

	if len(t.Domains) == 0 {
		row := make([]string, len(prefix), len(prefix)+len(attrCols))
		copy(row, prefix)
		for range attrCols {
			row = append(row, "")
		}
		return [][]string{row}
	}

	rows := make([][]string, 0, len(t.Domains))
	for _, d := range t.Domains {
		row := make([]string, len(prefix), len(prefix)+len(attrCols))
		copy(row, prefix)
		for _, col := range attrCols {
			value, _ := d.Get(col)
			row = append(row, value)
		}
		rows = append(rows, row)
	}
	return rows
}

func shapeBasic(transcripts []TranscriptDomains, flags ColumnFlags) Table {
	attrCols := attributeColumns(transcripts)
	columns := append([]string{constants.LabelTranscriptID}, flags.columns()...)
	columns = append(columns, attrCols...)

	var rows [][]string
	for _, t := range transcripts {
		rows = append(rows, domainRows(t, flags, attrCols)...)
	}
	return Table{Label: constants.AggregateSheetName, Columns: columns, Rows: rows}
}

func shapeCompact(transcripts []TranscriptDomains, flags ColumnFlags) Table {
	columns := append([]string{constants.LabelTranscriptID}, flags.columns()...)
	columns = append(columns, constants.LabelDomains)

	rows := make([][]string, 0, len(transcripts))
	for _, t := range transcripts {
		serialized := make([]string, len(t.Domains))
		for i, d := range t.Domains {
			serialized[i] = d.String()
		}
		row := append([]string{t.Record.TranscriptID}, flags.values(t.Record)...)
		row = append(row, strings.Join(serialized, "|"))
		rows = append(rows, row)
	}
	return Table{Label: constants.AggregateSheetName, Columns: columns, Rows: rows}
}

// shapeExpanded partitions the basic-layout rows into one table per
// transcript, in first-seen transcript order. The transcript column moves into
// the table label.
func shapeExpanded(transcripts []TranscriptDomains, flags ColumnFlags) []Table {
	attrCols := attributeColumns(transcripts)
	columns := append(flags.columns(), attrCols...)

	tables := make([]Table, 0, len(transcripts))
	for _, t := range transcripts {
		rows := domainRows(t, flags, attrCols)
		for i := range rows {
			rows[i] = rows[i][1:]
		}
		tables = append(tables, Table{Label: t.Record.TranscriptID, Columns: columns, Rows: rows})
	}
	return tables
}
