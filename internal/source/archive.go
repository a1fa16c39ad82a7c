package source

import (
	"context"
	"fmt"
	"strings"
)

var archiveBaseURL = "https://archive.org"

// InternetArchive serves OCR'd plain text alongside each scanned item.
type InternetArchive struct {
	client HTTPClient
}

// NewInternetArchive creates the Internet Archive downloader.
func NewInternetArchive(client HTTPClient) *InternetArchive {
	return &InternetArchive{client: client}
}

func (a *InternetArchive) Kind() Kind {
	return KindInternetArchive
}

func (a *InternetArchive) Matches(rawURL string) bool {
	return strings.Contains(rawURL, "archive.org")
}

// ExtractID takes the path segment following /details/.
func (a *InternetArchive) ExtractID(rawURL string) (string, bool) {
	_, rest, found := strings.Cut(rawURL, "/details/")
	if !found {
		return "", false
	}
	id, _, _ := strings.Cut(rest, "/")
	if id == "" {
		return "", false
	}
	return id, true
}

func (a *InternetArchive) Fetch(ctx context.Context, id string) (string, string, error) {
	candidates := []string{
		fmt.Sprintf("%s/download/%s/%s_djvu.txt", archiveBaseURL, id, id),
		fmt.Sprintf("%s/download/%s/%s.txt", archiveBaseURL, id, id),
	}
	return fetchFirstText(ctx, a.client, candidates)
}
