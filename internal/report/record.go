// Package report assembles per-transcript lookup results and shapes them into
// the output tables.
package report

import (
	"log/slog"
	"strings"
)

// Attribute is one named value of a domain record.
type Attribute struct {
	Name  string
	Value string
}

// DomainRecord is one annotated protein domain as an ordered list of
// attributes. The attribute set is whatever the annotation source returned;
// nothing here fixes its schema.
type DomainRecord []Attribute

// Get returns the value of a named attribute.
func (d DomainRecord) Get(name string) (string, bool) {
	for _, attr := range d {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// String serializes the record as comma-joined name:value pairs, the inner
// level of the compact layout's Domains column.
func (d DomainRecord) String() string {
	pairs := make([]string, len(d))
	for i, attr := range d {
		pairs[i] = attr.Name + ":" + attr.Value
	}
	return strings.Join(pairs, ",")
}

// TranscriptRecord holds the cross-referenced identifiers of one transcript.
// Optional fields stay "" when the corresponding column is not requested or
// the upstream lookup had no answer. Immutable once built.
type TranscriptRecord struct {
	TranscriptID string
	GeneID       string
	GeneName     string
	ProteinID    string
	UniProtID    string
	UniProtURL   string
}

// TranscriptDomains pairs a transcript's identifiers with its domain records.
// Domains may be empty; such transcripts still appear in the report.
type TranscriptDomains struct {
	Record  TranscriptRecord
	Domains []DomainRecord
}

// RowBuilder merges resolved identifiers and domain records into
// per-transcript report input.
type RowBuilder struct {
	features []string
	log      *slog.Logger
}

// NewRowBuilder returns a builder. The feature list only feeds the
// no-domains diagnostic.
func NewRowBuilder(features []string, logger *slog.Logger) *RowBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &RowBuilder{features: features, log: logger}
}

// Build assembles the per-transcript record. A transcript with zero domains is
// kept (its domain fields will be blank in the report) and logged.
func (b *RowBuilder) Build(record TranscriptRecord, domains []DomainRecord) TranscriptDomains {
	if len(domains) == 0 {
		b.log.Warn("report.no_domains",
			"transcript_id", record.TranscriptID,
			"uniprot_id", record.UniProtID,
			"features", strings.Join(b.features, ","),
		)
	}
	return TranscriptDomains{Record: record, Domains: domains}
}
