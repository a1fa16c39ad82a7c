// Package source resolves book URLs to the known content sources and fetches
// the full text of a work from whichever source claimed the URL.
package source

import "context"

// Kind enumerates the content sources a URL can belong to.
type Kind string

const (
	KindGutenberg       Kind = "gutenberg"
	KindInternetArchive Kind = "internet_archive"
	KindGoogleBooks     Kind = "google_books"
)

// Column returns the books table column that stores identifiers of this kind.
func (k Kind) Column() string {
	switch k {
	case KindGutenberg:
		return "gutenberg_id"
	case KindInternetArchive:
		return "ia_title_id"
	case KindGoogleBooks:
		return "gb_title_id"
	}
	return ""
}

// Identity names a single work within one source: the (kind, identifier)
// pair that keys the record store.
type Identity struct {
	Kind Kind
	ID   string
}

// PDFTextExtractor converts PDF bytes into plain text. The boolean is false
// when no text could be extracted.
type PDFTextExtractor interface {
	Text(ctx context.Context, data []byte) (string, bool)
}

// Downloader is implemented once per source kind.
type Downloader interface {
	Kind() Kind

	// Matches reports whether rawURL belongs to this source's domain.
	Matches(rawURL string) bool

	// ExtractID pulls the source-specific identifier out of rawURL.
	// A matched domain with an unparseable identifier yields false.
	ExtractID(rawURL string) (string, bool)

	// Fetch retrieves the full text for id, returning the text and the URL
	// it was actually downloaded from.
	Fetch(ctx context.Context, id string) (text string, sourceURL string, err error)
}

// Registry holds the downloaders in a fixed registration order. When a URL
// could plausibly match more than one source, the first registered downloader
// wins; this tie-break is deliberate, not an iteration accident.
type Registry struct {
	downloaders []Downloader
}

// NewRegistry creates a Registry that consults downloaders in the given order.
func NewRegistry(downloaders ...Downloader) *Registry {
	return &Registry{downloaders: downloaders}
}

// DefaultRegistry wires up the three known sources against the shared client.
func DefaultRegistry(client HTTPClient, extractor PDFTextExtractor, apiKey string) *Registry {
	return NewRegistry(
		NewGutenberg(client),
		NewInternetArchive(client),
		NewGoogleBooks(client, extractor, apiKey),
	)
}

// Resolve finds the downloader responsible for rawURL and extracts its
// identity. A URL matching no source, or matching a source whose identifier
// cannot be parsed, resolves to nothing; callers skip such requests.
func (r *Registry) Resolve(rawURL string) (Downloader, Identity, bool) {
	for _, d := range r.downloaders {
		if !d.Matches(rawURL) {
			continue
		}
		id, ok := d.ExtractID(rawURL)
		if !ok {
			return nil, Identity{}, false
		}
		return d, Identity{Kind: d.Kind(), ID: id}, true
	}
	return nil, Identity{}, false
}
