// Package input loads the transcript ID list the pipeline runs over.
package input

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"domainreport/constants"
	"domainreport/internal/config"
)

// Load reads the configured transcript file (.txt or .csv) and returns the
// transcript IDs in file order, version suffixes stripped.
func Load(cfg *config.Config, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		transcripts []string
		err         error
	)
	switch ext := strings.ToLower(filepath.Ext(cfg.Transcript.File)); ext {
	case ".txt":
		transcripts, err = loadText(cfg.Transcript.File)
	case ".csv":
		transcripts, err = loadCSV(cfg.Transcript.File, cfg.Transcript.CSVSep, cfg.Transcript.CSVColumn)
	default:
		return nil, fmt.Errorf("input file %s format not supported", cfg.Transcript.File)
	}
	if err != nil {
		return nil, err
	}

	for i, t := range transcripts {
		transcripts[i] = StripVersion(t)
	}
	logger.Info("input.transcripts.loaded", "file", cfg.Transcript.File, "count", len(transcripts))
	return transcripts, nil
}

// StripVersion removes a trailing version suffix, e.g. ENST00000288602.11
// becomes ENST00000288602.
func StripVersion(id string) string {
	base, _, _ := strings.Cut(id, ".")
	return base
}

// loadText keeps the lines that carry a transcript ID marker and drops
// everything else (headers, blank lines, comments).
func loadText(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var transcripts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.Contains(line, constants.TranscriptIDMarker) {
			transcripts = append(transcripts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript file %s: %w", path, err)
	}
	return transcripts, nil
}

// loadCSV pulls the named column from a delimited file, removing duplicates
// while keeping first-occurrence order.
func loadCSV(path, sep, column string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	if sep != "" {
		reader.Comma = rune(sep[0])
	}
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read transcript file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("transcript file %s is empty", path)
	}

	colIdx := -1
	for i, name := range records[0] {
		if strings.TrimSpace(name) == column {
			colIdx = i
			break
		}
	}
	if colIdx == -1 {
		return nil, fmt.Errorf("column %q not found in transcript file %s", column, path)
	}

	seen := make(map[string]struct{})
	var transcripts []string
	for _, row := range records[1:] {
		if colIdx >= len(row) {
			continue
		}
		id := strings.TrimSpace(row[colIdx])
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		transcripts = append(transcripts, id)
	}
	return transcripts, nil
}
