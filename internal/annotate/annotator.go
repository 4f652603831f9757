// Package annotate retrieves and filters protein domain records.
package annotate

import (
	"context"
	"log/slog"
	"strings"

	"domainreport/internal/report"
	"domainreport/internal/uniprot"
)

// Annotator fetches protein features for a UniProt accession and keeps the
// ones matching the configured feature-type allow-list.
type Annotator struct {
	client   *uniprot.Client
	features []string
	log      *slog.Logger
}

// NewAnnotator returns an annotator restricted to the given feature types.
func NewAnnotator(client *uniprot.Client, features []string, logger *slog.Logger) *Annotator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Annotator{client: client, features: features, log: logger}
}

// Domains returns the matching domain records of an accession in source
// order. A blank accession (unresolved cross-reference) yields no records.
func (a *Annotator) Domains(ctx context.Context, accession string) ([]report.DomainRecord, error) {
	if accession == "" {
		return nil, nil
	}

	features, err := a.client.Features(ctx, accession, a.features)
	if err != nil {
		return nil, err
	}

	var domains []report.DomainRecord
	for _, f := range features {
		if !a.allowed(f.Type) {
			continue
		}
		domains = append(domains, flatten(f))
	}
	a.log.Debug("annotate.domains", "accession", accession, "matched", len(domains), "returned", len(features))
	return domains, nil
}

// allowed applies the allow-list client-side as well; the server-side types
// parameter is an optimization, not the contract.
func (a *Annotator) allowed(featureType string) bool {
	for _, want := range a.features {
		if strings.EqualFold(want, featureType) {
			return true
		}
	}
	return false
}

// flatten turns one API feature into an ordered attribute list. The fixed
// leading attributes keep basic-layout columns deterministic across runs.
func flatten(f uniprot.Feature) report.DomainRecord {
	return report.DomainRecord{
		{Name: "type", Value: f.Type},
		{Name: "category", Value: f.Category},
		{Name: "description", Value: f.Description},
		{Name: "begin", Value: f.Begin},
		{Name: "end", Value: f.End},
	}
}
