package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/akorhonen/librarian/internal/errors"
	"github.com/akorhonen/librarian/internal/httpx"
)

var googleBooksBaseURL = "https://www.googleapis.com/books/v1"

// minPDFSize rejects tiny downloads, which are almost always CAPTCHA or
// error pages rather than books.
const minPDFSize = 50000

// googleBooksIDPatterns covers the recognized Google Books URL shapes, tried
// in order: edition path, bare id= query parameter, /books?id= form.
var googleBooksIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/books/edition/[^/]+/([^?/]+)`),
	regexp.MustCompile(`\bid=([^&]+)`),
	regexp.MustCompile(`/books\?id=([^&]+)`),
}

// GoogleBooks resolves volume IDs through the volumes metadata API and
// downloads the PDF scan when one is offered.
type GoogleBooks struct {
	client    HTTPClient
	extractor PDFTextExtractor
	apiKey    string
}

// NewGoogleBooks creates the Google Books downloader. apiKey may be empty;
// the volumes API serves unauthenticated requests at a lower quota.
func NewGoogleBooks(client HTTPClient, extractor PDFTextExtractor, apiKey string) *GoogleBooks {
	return &GoogleBooks{client: client, extractor: extractor, apiKey: apiKey}
}

func (g *GoogleBooks) Kind() Kind {
	return KindGoogleBooks
}

func (g *GoogleBooks) Matches(rawURL string) bool {
	return strings.Contains(rawURL, "books.google.")
}

func (g *GoogleBooks) ExtractID(rawURL string) (string, bool) {
	for _, pattern := range googleBooksIDPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// volumeMetadata is the slice of the volumes API response we care about.
type volumeMetadata struct {
	AccessInfo struct {
		PDF struct {
			IsAvailable  bool   `json:"isAvailable"`
			DownloadLink string `json:"downloadLink"`
		} `json:"pdf"`
	} `json:"accessInfo"`
}

func (g *GoogleBooks) Fetch(ctx context.Context, id string) (string, string, error) {
	metaURL := fmt.Sprintf("%s/volumes/%s", googleBooksBaseURL, url.PathEscape(id))
	if g.apiKey != "" {
		metaURL += "?key=" + url.QueryEscape(g.apiKey)
	}

	var meta volumeMetadata
	if err := g.client.GetJSON(ctx, metaURL, &meta); err != nil {
		return "", "", fmt.Errorf("volume metadata fetch failed for %s: %w", id, err)
	}

	if !meta.AccessInfo.PDF.IsAvailable {
		return "", "", errors.NewContentRejected("no downloadable PDF for volume %s", id)
	}
	downloadURL := meta.AccessInfo.PDF.DownloadLink
	if downloadURL == "" {
		return "", "", errors.NewContentRejected("PDF marked available but no download link for volume %s", id)
	}

	resp, err := g.client.Get(ctx, downloadURL, httpx.PDFTimeout)
	if err != nil {
		return "", "", fmt.Errorf("PDF download failed for volume %s: %w", id, err)
	}
	slog.Info("Google PDF response", "volume", id, "status", resp.StatusCode, "bytes", len(resp.Body))

	if !resp.OK() || len(resp.Body) < minPDFSize {
		return "", "", errors.NewContentRejected("likely CAPTCHA or error page for volume %s", id)
	}

	text, ok := g.extractor.Text(ctx, resp.Body)
	if !ok {
		return "", "", errors.NewContentRejected("no text extracted from PDF for volume %s", id)
	}

	return text, downloadURL, nil
}
