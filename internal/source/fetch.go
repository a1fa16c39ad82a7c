package source

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/akorhonen/librarian/internal/errors"
	"github.com/akorhonen/librarian/internal/httpx"
)

// HTTPClient is the slice of the shared HTTP client the downloaders need.
type HTTPClient interface {
	Get(ctx context.Context, rawURL string, timeout time.Duration) (*httpx.Response, error)
	GetJSON(ctx context.Context, rawURL string, v any) error
}

// fetchFirstText issues a GET to each candidate URL in order and returns the
// first 200 response with a non-empty trimmed body. Failed candidates are
// logged and skipped; exhausting the list is a content rejection.
func fetchFirstText(ctx context.Context, client HTTPClient, candidates []string) (string, string, error) {
	for _, u := range candidates {
		resp, err := client.Get(ctx, u, httpx.TextTimeout)
		if err != nil {
			slog.Warn("Failed to fetch", "url", u, "error", err)
			continue
		}
		if !resp.OK() {
			slog.Warn("Unexpected status", "url", u, "status", resp.StatusCode)
			continue
		}
		text := string(resp.Body)
		if strings.TrimSpace(text) == "" {
			slog.Warn("Empty body", "url", u)
			continue
		}
		return text, u, nil
	}
	return "", "", errors.NewContentRejected("no readable text at any candidate URL")
}
