// Package ensembl wraps the Ensembl REST lookup endpoints used to
// cross-reference transcript identifiers.
package ensembl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"domainreport/constants"
	"domainreport/internal/rest"
)

// Client talks to the Ensembl REST server for one genome assembly.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// NewClient returns a client bound to the REST server of the given assembly.
func NewClient(assembly string, logger *slog.Logger) (*Client, error) {
	baseURL, ok := constants.AssemblyURLs[assembly]
	if !ok {
		return nil, fmt.Errorf("assembly %q is not supported (supported: %s)",
			assembly, strings.Join(constants.Assemblies(), ", "))
	}
	return NewClientWithBaseURL(baseURL, logger), nil
}

// NewClientWithBaseURL returns a client against an explicit server URL.
func NewClientWithBaseURL(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: rest.DefaultTimeout},
		log:     logger,
	}
}

// lookupResult is the subset of /lookup/id fields this tool reads.
type lookupResult struct {
	ID          string `json:"id"`
	Parent      string `json:"Parent"`
	DisplayName string `json:"display_name"`
	Translation *struct {
		ID      string `json:"id"`
		Version int    `json:"version"`
	} `json:"Translation"`
}

func (c *Client) lookupID(ctx context.Context, id string) (*lookupResult, error) {
	var result lookupResult
	url := fmt.Sprintf("%s/lookup/id/%s?content-type=application/json", c.baseURL, id)
	if err := rest.GetJSON(ctx, c.http, url, &result, c.log); err != nil {
		return nil, fmt.Errorf("ensembl lookup %s: %w", id, err)
	}
	return &result, nil
}

// TranscriptParent returns the gene ID (ENSG) containing the transcript, or
// "" when the lookup carries no parent.
func (c *Client) TranscriptParent(ctx context.Context, transcriptID string) (string, error) {
	result, err := c.lookupID(ctx, transcriptID)
	if err != nil {
		return "", err
	}
	return result.Parent, nil
}

// GeneSymbol returns the display name of a gene ID (e.g. ENSG00000121879
// resolves to PIK3CA), or "" when the gene carries no display name.
func (c *Client) GeneSymbol(ctx context.Context, geneID string) (string, error) {
	result, err := c.lookupID(ctx, geneID)
	if err != nil {
		return "", err
	}
	return result.DisplayName, nil
}

// ProteinID returns the translation (ENSP) ID of a protein-coding transcript,
// without its version suffix, or "" for non-coding transcripts.
func (c *Client) ProteinID(ctx context.Context, transcriptID string) (string, error) {
	result, err := c.lookupID(ctx, transcriptID)
	if err != nil {
		return "", err
	}
	if result.Translation == nil {
		return "", nil
	}
	return result.Translation.ID, nil
}
