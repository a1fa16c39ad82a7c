package ingest

import (
	"context"
	"log/slog"
	"strings"

	"github.com/akorhonen/librarian/internal/errors"
	"github.com/akorhonen/librarian/internal/library"
	"github.com/akorhonen/librarian/internal/ratelimit"
	"github.com/akorhonen/librarian/internal/source"
)

// Resolver maps a URL to the downloader responsible for it.
type Resolver interface {
	Resolve(rawURL string) (source.Downloader, source.Identity, bool)
}

// Store is the slice of the record store the coordinator needs.
type Store interface {
	Exists(identity source.Identity) (bool, error)
	Upsert(rec library.Record) error
}

// Summary counts per-item outcomes of a batch run.
type Summary struct {
	Stored  int
	Skipped int
	Failed  int
}

// Coordinator processes requests strictly in input order, one at a time.
// Every request is best-effort: no single failure aborts the batch.
type Coordinator struct {
	resolver Resolver
	store    Store
	limiter  *ratelimit.Limiter
}

// NewCoordinator creates a Coordinator. limiter paces store attempts to stay
// polite to remote hosts; pass nil to disable pacing (tests).
func NewCoordinator(resolver Resolver, store Store, limiter *ratelimit.Limiter) *Coordinator {
	return &Coordinator{resolver: resolver, store: store, limiter: limiter}
}

// Run drives every request through resolve, exists-check, fetch, and store.
// Requests that resolve to nothing are dropped silently; already-stored
// identities perform no network calls at all.
func (c *Coordinator) Run(ctx context.Context, requests []Request) Summary {
	var summary Summary
	total := len(requests)

	for i, req := range requests {
		if req.URL == "" || req.Title == "" {
			slog.Debug("Dropping request with missing url or title", "item", i+1)
			continue
		}

		downloader, identity, ok := c.resolver.Resolve(req.URL)
		if !ok {
			slog.Debug("No known source for URL", "url", req.URL)
			continue
		}

		exists, err := c.store.Exists(identity)
		if err != nil {
			slog.Warn("Existence check failed", "id", identity.ID, "error", err)
			summary.Failed++
			continue
		}
		if exists {
			slog.Info("Skipping, already in database", "id", identity.ID, "source", string(identity.Kind))
			summary.Skipped++
			continue
		}

		slog.Info("Progress", "item", i+1, "total", total)
		slog.Info("Downloading", "id", identity.ID, "source", string(identity.Kind))

		if c.storeOne(ctx, downloader, identity, req) {
			summary.Stored++
		} else {
			summary.Failed++
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				slog.Warn("Pacing interrupted, stopping batch", "error", err)
				return summary
			}
		}
	}

	return summary
}

// storeOne fetches and persists a single request, reporting success.
func (c *Coordinator) storeOne(ctx context.Context, downloader source.Downloader, identity source.Identity, req Request) bool {
	text, sourceURL, err := downloader.Fetch(ctx, identity.ID)
	if err != nil {
		if errors.IsContentRejected(err) {
			slog.Warn("Content rejected", "id", identity.ID, "reason", err.Error())
		} else {
			slog.Warn("Fetch failed", "id", identity.ID, "error", err)
		}
		return false
	}
	if strings.TrimSpace(text) == "" {
		slog.Warn("No text to store", "id", identity.ID)
		return false
	}

	rec := library.Record{
		Identity:  identity,
		Title:     req.Title,
		Author:    req.Author,
		Category:  req.Category,
		SourceURL: sourceURL,
		Content:   text,
	}
	if err := c.store.Upsert(rec); err != nil {
		slog.Warn("Failed to store", "id", identity.ID, "error", err)
		return false
	}

	slog.Info("Stored successfully", "id", identity.ID)
	return true
}
