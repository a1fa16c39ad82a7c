package source

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// gutenbergBaseURL is a variable so tests can point it at a local server.
var gutenbergBaseURL = "https://www.gutenberg.org"

// Gutenberg serves plain UTF-8 text from a handful of well-known mirror
// paths; no API involved.
type Gutenberg struct {
	client HTTPClient
}

// NewGutenberg creates the Project Gutenberg downloader.
func NewGutenberg(client HTTPClient) *Gutenberg {
	return &Gutenberg{client: client}
}

func (g *Gutenberg) Kind() Kind {
	return KindGutenberg
}

func (g *Gutenberg) Matches(rawURL string) bool {
	return strings.Contains(rawURL, "gutenberg.org")
}

// ExtractID takes the integer following /ebooks/, up to an optional query
// string. Anything non-numeric means the URL names no single ebook.
func (g *Gutenberg) ExtractID(rawURL string) (string, bool) {
	_, rest, found := strings.Cut(rawURL, "/ebooks/")
	if !found {
		return "", false
	}
	id, _, _ := strings.Cut(rest, "?")
	if _, err := strconv.Atoi(id); err != nil {
		return "", false
	}
	return id, true
}

func (g *Gutenberg) Fetch(ctx context.Context, id string) (string, string, error) {
	candidates := []string{
		fmt.Sprintf("%s/files/%s/%s-0.txt", gutenbergBaseURL, id, id),
		fmt.Sprintf("%s/files/%s/%s.txt", gutenbergBaseURL, id, id),
		fmt.Sprintf("%s/ebooks/%s.txt.utf-8", gutenbergBaseURL, id),
	}
	return fetchFirstText(ctx, g.client, candidates)
}
