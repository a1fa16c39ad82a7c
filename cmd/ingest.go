package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/akorhonen/librarian/internal/config"
	"github.com/akorhonen/librarian/internal/extract"
	"github.com/akorhonen/librarian/internal/httpx"
	"github.com/akorhonen/librarian/internal/ingest"
	"github.com/akorhonen/librarian/internal/library"
	"github.com/akorhonen/librarian/internal/ratelimit"
	"github.com/akorhonen/librarian/internal/source"
)

// stdin is a variable so tests can feed batch input without a terminal.
var stdin io.Reader = os.Stdin

// Run executes the batch ingestion pipeline.
func (c *IngestCmd) Run() error {
	apiKey := c.APIKey
	if apiKey == "" {
		apiKey = config.GoogleBooksAPIKey
	}

	caps := extract.Probe()
	caps.LogMissing()

	requests, err := c.loadRequests()
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		slog.Info("Batch input contains no requests")
		return nil
	}

	store, err := library.Open(config.DBFile)
	if err != nil {
		return fmt.Errorf("failed to open library database: %w", err)
	}
	defer func() { _ = store.Close() }()

	client := httpx.New()
	pipeline := extract.NewPipeline(caps)
	registry := source.DefaultRegistry(client, pipeline, apiKey)
	limiter := ratelimit.New("ingest", 1)

	coordinator := ingest.NewCoordinator(registry, store, limiter)
	summary := coordinator.Run(context.Background(), requests)

	slog.Info("Batch complete",
		"stored", summary.Stored,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)

	if count, err := store.Count(); err == nil {
		slog.Info("Library size", "books", count)
	}

	return nil
}

// loadRequests reads the batch document from --input or stdin.
func (c *IngestCmd) loadRequests() ([]ingest.Request, error) {
	if c.Input == "" {
		return ingest.ParseRequests(stdin, ingest.FormatJSON)
	}

	f, err := os.Open(c.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch input: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ingest.ParseRequests(f, ingest.FormatForPath(c.Input))
}
