// Package uniprot wraps the EBI Proteins API for accession mapping and
// protein feature retrieval.
package uniprot

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"domainreport/internal/rest"
)

// DefaultBaseURL is the public EBI Proteins API endpoint.
const DefaultBaseURL = "https://www.ebi.ac.uk/proteins/api"

// Client talks to the EBI Proteins API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// NewClient returns a client against the public Proteins API.
func NewClient(logger *slog.Logger) *Client {
	return NewClientWithBaseURL(DefaultBaseURL, logger)
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

// Feature is one annotated protein region as returned by the Proteins API.
// Begin and End arrive as strings because the API reports unknown ends as "~".
type Feature struct {
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Begin       string `json:"begin"`
	End         string `json:"end"`
}

// Accession maps an Ensembl identifier to its UniProtKB accession, or "" when
// the cross-reference is unknown.
func (c *Client) Accession(ctx context.Context, ensemblID string) (string, error) {
	var entries []struct {
		Accession string `json:"accession"`
	}
	endpoint := fmt.Sprintf("%s/proteins/Ensembl:%s", c.baseURL, url.PathEscape(ensemblID))
	if err := rest.GetJSON(ctx, c.http, endpoint, &entries, c.log); err != nil {
		return "", fmt.Errorf("uniprot accession for %s: %w", ensemblID, err)
	}
	if len(entries) == 0 {
		return "", nil
	}
	return entries[0].Accession, nil
}

// Features returns the protein features of an accession, optionally restricted
// server-side to the given feature types.
func (c *Client) Features(ctx context.Context, accession string, types []string) ([]Feature, error) {
	var result struct {
		Accession string    `json:"accession"`
		Features  []Feature `json:"features"`
	}
	endpoint := fmt.Sprintf("%s/features/%s", c.baseURL, url.PathEscape(accession))
	if len(types) > 0 {
		endpoint += "?types=" + url.QueryEscape(strings.Join(types, ","))
	}
	if err := rest.GetJSON(ctx, c.http, endpoint, &result, c.log); err != nil {
		return nil, fmt.Errorf("uniprot features for %s: %w", accession, err)
	}
	return result.Features, nil
}
