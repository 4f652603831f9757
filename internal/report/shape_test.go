package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domainreport/constants"
	"domainreport/internal/common"
)

func domain(pairs ...string) DomainRecord {
	var d DomainRecord
	for i := 0; i+1 < len(pairs); i += 2 {
		d = append(d, Attribute{Name: pairs[i], Value: pairs[i+1]})
	}
	return d
}

var allFlags = ColumnFlags{UniProtID: true, GeneID: true, GeneName: true, ProteinID: true, UniProtURL: true}

func sampleTranscripts() []TranscriptDomains {
	return []TranscriptDomains{
		{
			Record: TranscriptRecord{TranscriptID: "T1", GeneID: "G1", ProteinID: "P1", UniProtID: "U1", UniProtURL: "https://example.org/U1"},
			Domains: []DomainRecord{
				domain("start", "1", "end", "10", "type", "Pfam"),
				domain("start", "20", "end", "44", "type", "Smart"),
			},
		},
		{
			Record: TranscriptRecord{TranscriptID: "T2", GeneID: "G2", UniProtID: "U2"},
		},
		{
			Record: TranscriptRecord{TranscriptID: "T3", GeneID: "G3", UniProtID: "U3"},
			Domains: []DomainRecord{
				domain("start", "5", "end", "9", "type", "Pfam"),
			},
		},
	}
}

func TestShapeBasicRowCount(t *testing.T) {
	tables, err := Shape(constants.FormatBasic, sampleTranscripts(), allFlags)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	// sum over transcripts of max(1, domain count): 2 + 1 + 1
	assert.Len(t, tables[0].Rows, 4)
	assert.Equal(t, constants.LabelDomains, tables[0].Label)
}

func TestShapeBasicSingleDomainScenario(t *testing.T) {
	transcripts := []TranscriptDomains{{
		Record: TranscriptRecord{
			TranscriptID: "T1",
			GeneID:       "G1",
			ProteinID:    "P1",
			UniProtID:    "U1",
			UniProtURL:   "https://www.uniprot.org/uniprotkb/U1/entry",
		},
		Domains: []DomainRecord{domain("start", "1", "end", "10", "type", "Pfam")},
	}}

	tables, err := Shape(constants.FormatBasic, transcripts, allFlags)
	require.NoError(t, err)
	require.Len(t, tables, 1)

	assert.Equal(t, []string{
		"Transcript_ID", "UniProt_ID", "Gene_ID", "Gene_name", "Protein_ID", "UniProt_URL",
		"start", "end", "type",
	}, tables[0].Columns)
	require.Len(t, tables[0].Rows, 1)
	assert.Equal(t, []string{
		"T1", "U1", "G1", "", "P1", "https://www.uniprot.org/uniprotkb/U1/entry",
		"1", "10", "Pfam",
	}, tables[0].Rows[0])
}

func TestShapeBasicZeroDomainsKeepsTranscript(t *testing.T) {
	transcripts := []TranscriptDomains{{Record: TranscriptRecord{TranscriptID: "T2"}}}

	tables, err := Shape(constants.FormatBasic, transcripts, ColumnFlags{})
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Transcript_ID"}, tables[0].Columns)
	require.Len(t, tables[0].Rows, 1)
	assert.Equal(t, []string{"T2"}, tables[0].Rows[0])
}

func TestShapeBasicBlanksDomainColumnsForEmptyTranscript(t *testing.T) {
	tables, err := Shape(constants.FormatBasic, sampleTranscripts(), ColumnFlags{})
	require.NoError(t, err)
	require.Len(t, tables, 1)

	// T2 has no domains but still gets one row with blank attribute cells.
	var t2row []string
	for _, row := range tables[0].Rows {
		if row[0] == "T2" {
			t2row = append([]string{}, row...)
		}
	}
	assert.Equal(t, []string{"T2", "", "", ""}, t2row)
}

func TestShapeBasicColumnUnionFirstSeenOrder(t *testing.T) {
	transcripts := []TranscriptDomains{
		{
			Record:  TranscriptRecord{TranscriptID: "T1"},
			Domains: []DomainRecord{domain("start", "1", "end", "2")},
		},
		{
			Record:  TranscriptRecord{TranscriptID: "T2"},
			Domains: []DomainRecord{domain("description", "kinase", "start", "3")},
		},
	}

	tables, err := Shape(constants.FormatBasic, transcripts, ColumnFlags{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Transcript_ID", "start", "end", "description"}, tables[0].Columns)
	assert.Equal(t, []string{"T1", "1", "2", ""}, tables[0].Rows[0])
	assert.Equal(t, []string{"T2", "3", "", "kinase"}, tables[0].Rows[1])
}

func TestShapeCompactOneRowPerTranscript(t *testing.T) {
	transcripts := sampleTranscripts()
	tables, err := Shape(constants.FormatCompact, transcripts, allFlags)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Len(t, tables[0].Rows, len(transcripts))
	assert.Equal(t, []string{
		"Transcript_ID", "UniProt_ID", "Gene_ID", "Gene_name", "Protein_ID", "UniProt_URL", "Domains",
	}, tables[0].Columns)
}

func TestShapeCompactDomainsRoundTrip(t *testing.T) {
	transcripts := sampleTranscripts()
	tables, err := Shape(constants.FormatCompact, transcripts, ColumnFlags{})
	require.NoError(t, err)

	for i, row := range tables[0].Rows {
		serialized := row[len(row)-1]
		want := transcripts[i].Domains
		if serialized == "" {
			assert.Empty(t, want)
			continue
		}
		pieces := strings.Split(serialized, "|")
		require.Len(t, pieces, len(want))
		for j, piece := range pieces {
			var got DomainRecord
			for _, pair := range strings.Split(piece, ",") {
				name, value, ok := strings.Cut(pair, ":")
				require.True(t, ok)
				got = append(got, Attribute{Name: name, Value: value})
			}
			assert.Equal(t, want[j], got)
		}
	}
}

func TestShapeExpandedOneTablePerTranscript(t *testing.T) {
	transcripts := sampleTranscripts()

	tables, err := Shape(constants.FormatExpanded, transcripts, allFlags)
	require.NoError(t, err)
	require.Len(t, tables, len(transcripts))

	for i, table := range tables {
		assert.Equal(t, transcripts[i].Record.TranscriptID, table.Label)
		assert.NotContains(t, table.Columns, constants.LabelTranscriptID)
	}
}

func TestShapeExpandedRowsMatchBasicMinusTranscriptColumn(t *testing.T) {
	transcripts := sampleTranscripts()

	basic, err := Shape(constants.FormatBasic, transcripts, allFlags)
	require.NoError(t, err)
	expanded, err := Shape(constants.FormatExpanded, transcripts, allFlags)
	require.NoError(t, err)

	var flattened [][]string
	for _, table := range expanded {
		assert.Equal(t, basic[0].Columns[1:], table.Columns)
		flattened = append(flattened, table.Rows...)
	}

	require.Len(t, flattened, len(basic[0].Rows))
	for i, row := range basic[0].Rows {
		assert.Equal(t, row[1:], flattened[i])
	}
}

func TestShapeIdempotent(t *testing.T) {
	transcripts := sampleTranscripts()
	for _, format := range []constants.ReportFormat{constants.FormatBasic, constants.FormatCompact, constants.FormatExpanded} {
		first, err := Shape(format, transcripts, allFlags)
		require.NoError(t, err)
		second, err := Shape(format, transcripts, allFlags)
		require.NoError(t, err)
		assert.Equal(t, first, second, "format %s", format)
	}
}

func TestShapeColumnOrderInvariant(t *testing.T) {
	fixedOrder := []string{
		constants.LabelUniProtID,
		constants.LabelGeneID,
		constants.LabelGeneName,
		constants.LabelProteinID,
		constants.LabelUniProtURL,
	}

	for mask := 0; mask < 32; mask++ {
		flags := ColumnFlags{
			UniProtID:  mask&1 != 0,
			GeneID:     mask&2 != 0,
			GeneName:   mask&4 != 0,
			ProteinID:  mask&8 != 0,
			UniProtURL: mask&16 != 0,
		}

		tables, err := Shape(constants.FormatBasic, sampleTranscripts(), flags)
		require.NoError(t, err)
		columns := tables[0].Columns
		require.Equal(t, constants.LabelTranscriptID, columns[0])

		// collect the optional ID columns that made it in, in table order
		var present []string
		for _, col := range columns[1:] {
			for _, label := range fixedOrder {
				if col == label {
					present = append(present, col)
				}
			}
		}

		var want []string
		enabled := []bool{flags.UniProtID, flags.GeneID, flags.GeneName, flags.ProteinID, flags.UniProtURL}
		for i, on := range enabled {
			if on {
				want = append(want, fixedOrder[i])
			}
		}
		assert.Equal(t, want, present, "mask %d", mask)
	}
}

func TestShapeEmptyCollection(t *testing.T) {
	basic, err := Shape(constants.FormatBasic, nil, allFlags)
	require.NoError(t, err)
	require.Len(t, basic, 1)
	assert.Empty(t, basic[0].Rows)

	compact, err := Shape(constants.FormatCompact, nil, allFlags)
	require.NoError(t, err)
	require.Len(t, compact, 1)
	assert.Empty(t, compact[0].Rows)

	expanded, err := Shape(constants.FormatExpanded, nil, allFlags)
	require.NoError(t, err)
	assert.Empty(t, expanded)
}

func TestShapeUnknownFormat(t *testing.T) {
	_, err := Shape(constants.ReportFormat("fancy"), sampleTranscripts(), allFlags)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConfiguration))
}
