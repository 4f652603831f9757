package constants

import "fmt"

// Column header labels used across every report layout. These exact strings
// appear in the output file, so treat them as part of the tool's contract.
const (
	LabelTranscriptID = "Transcript_ID"
	LabelUniProtID    = "UniProt_ID"
	LabelGeneID       = "Gene_ID"
	LabelGeneName     = "Gene_name"
	LabelProteinID    = "Protein_ID"
	LabelUniProtURL   = "UniProt_URL"
	LabelDomains      = "Domains"
)

// AggregateSheetName is the sheet label used when all transcripts share a
// single sheet (basic and compact layouts).
const AggregateSheetName = LabelDomains

// TranscriptIDMarker identifies transcript ID lines in plain-text input.
const TranscriptIDMarker = "ENST"

// UniProtEntryURL returns the UniProtKB entry page URL for an accession.
func UniProtEntryURL(accession string) string {
	return fmt.Sprintf("https://www.uniprot.org/uniprotkb/%s/entry", accession)
}
