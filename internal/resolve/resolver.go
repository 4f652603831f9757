// Package resolve cross-references transcript identifiers against the
// annotation services.
package resolve

import (
	"context"
	"log/slog"

	"domainreport/constants"
	"domainreport/internal/config"
	"domainreport/internal/ensembl"
	"domainreport/internal/report"
	"domainreport/internal/uniprot"
)

// Resolver produces the identifier bundle of a transcript, honoring the
// configured ID-column toggles.
type Resolver struct {
	ensembl *ensembl.Client
	uniprot *uniprot.Client
	flags   config.IDsConfig
	log     *slog.Logger
}

// NewResolver wires the annotation clients. Fields whose toggle is off are
// never looked up and stay blank.
func NewResolver(ensemblClient *ensembl.Client, uniprotClient *uniprot.Client, flags config.IDsConfig, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{ensembl: ensemblClient, uniprot: uniprotClient, flags: flags, log: logger}
}

// Resolve fills a TranscriptRecord for one transcript. A failed lookup is a
// gap, not a failure: the affected field stays blank, a warning is logged, and
// the run continues. The UniProt accession is always resolved since the domain
// fetch depends on it.
func (r *Resolver) Resolve(ctx context.Context, transcriptID string) report.TranscriptRecord {
	record := report.TranscriptRecord{TranscriptID: transcriptID}

	if r.flags.ShowGeneID || r.flags.ShowGeneName {
		geneID, err := r.ensembl.TranscriptParent(ctx, transcriptID)
		if err != nil {
			r.log.Warn("resolve.gene_id.miss", "transcript_id", transcriptID, "error", err)
			geneID = ""
		}
		if r.flags.ShowGeneID {
			record.GeneID = geneID
		}
		if r.flags.ShowGeneName && geneID != "" {
			name, err := r.ensembl.GeneSymbol(ctx, geneID)
			if err != nil {
				r.log.Warn("resolve.gene_name.miss", "transcript_id", transcriptID, "gene_id", geneID, "error", err)
				name = ""
			}
			record.GeneName = name
		}
	}

	if r.flags.ShowProteinID {
		proteinID, err := r.ensembl.ProteinID(ctx, transcriptID)
		if err != nil {
			r.log.Warn("resolve.protein_id.miss", "transcript_id", transcriptID, "error", err)
			proteinID = ""
		}
		record.ProteinID = proteinID
	}

	accession, err := r.uniprot.Accession(ctx, transcriptID)
	if err != nil {
		r.log.Warn("resolve.uniprot_id.miss", "transcript_id", transcriptID, "error", err)
		accession = ""
	}
	record.UniProtID = accession
	if r.flags.ShowUniProtURL && accession != "" {
		record.UniProtURL = constants.UniProtEntryURL(accession)
	}

	return record
}
