package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"domainreport/internal/annotate"
	"domainreport/internal/config"
	"domainreport/internal/ensembl"
	"domainreport/internal/export"
	"domainreport/internal/input"
	"domainreport/internal/report"
	"domainreport/internal/resolve"
	"domainreport/internal/uniprot"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		cfgPath = flag.String("config", "config/config.toml", "path to the TOML configuration file")
		debug   = flag.Bool("debug", false, "enable debug logging (overrides the config's debug.enable)")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *debug || cfg.Debug.Enable {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Debug("config.loaded",
		"path", cfg.Path(),
		"assembly", cfg.Assembly.Version,
		"format", cfg.Output.Format,
		"output", cfg.Output.File,
		"features", cfg.Domains.UniProtFeatures,
	)

	ctx := context.Background()

	transcripts, err := input.Load(cfg, logger)
	if err != nil {
		logger.Error("failed to load transcripts", "error", err)
		os.Exit(1)
	}
	logger.Debug("input.transcripts", "ids", transcripts)

	ensemblClient, err := ensembl.NewClient(cfg.Assembly.Version, logger)
	if err != nil {
		logger.Error("failed to build ensembl client", "error", err)
		os.Exit(1)
	}
	uniprotClient := uniprot.NewClient(logger)

	resolver := resolve.NewResolver(ensemblClient, uniprotClient, cfg.IDs, logger)
	annotator := annotate.NewAnnotator(uniprotClient, cfg.Domains.UniProtFeatures, logger)
	builder := report.NewRowBuilder(cfg.Domains.UniProtFeatures, logger)

	collected := make([]report.TranscriptDomains, 0, len(transcripts))
	for _, transcriptID := range transcripts {
		record := resolver.Resolve(ctx, transcriptID)
		logger.Debug("resolve.ids", "transcript_id", transcriptID, "uniprot_id", record.UniProtID,
			"gene_id", record.GeneID, "gene_name", record.GeneName, "protein_id", record.ProteinID)

		domains, err := annotator.Domains(ctx, record.UniProtID)
		if err != nil {
			logger.Warn("annotate.domains.miss", "transcript_id", transcriptID,
				"uniprot_id", record.UniProtID, "error", err)
			domains = nil
		}
		collected = append(collected, builder.Build(record, domains))
	}

	format, _ := cfg.Format()
	flags := report.ColumnFlags{
		UniProtID:  cfg.IDs.ShowUniProtID,
		GeneID:     cfg.IDs.ShowGeneID,
		GeneName:   cfg.IDs.ShowGeneName,
		ProteinID:  cfg.IDs.ShowProteinID,
		UniProtURL: cfg.IDs.ShowUniProtURL,
	}
	tables, err := report.Shape(format, collected, flags)
	if err != nil {
		logger.Error("failed to shape report", "error", err)
		os.Exit(1)
	}
	for _, t := range tables {
		logger.Debug("report.table", "sheet", t.Label, "columns", t.Columns, "rows", len(t.Rows))
	}

	if err := export.Write(cfg.Output.File, tables, logger); err != nil {
		logger.Error("failed to write report", "file", cfg.Output.File, "error", err)
		os.Exit(1)
	}

	logger.Info("domainreport.ok",
		"transcripts", len(transcripts),
		"tables", len(tables),
		"format", string(format),
		"file", cfg.Output.File,
	)
}
