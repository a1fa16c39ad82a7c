package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akorhonen/librarian/internal/errors"
	"github.com/akorhonen/librarian/internal/httpx"
	"github.com/stretchr/testify/require"
)

func pointAtServer(t *testing.T, base *string, server *httptest.Server) {
	t.Helper()
	orig := *base
	*base = server.URL
	t.Cleanup(func() {
		*base = orig
		server.Close()
	})
}

func TestGutenbergFetchFirstCandidateWins(t *testing.T) {
	var requested []string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.Path)
		if r.URL.Path == "/files/1342/1342-0.txt" {
			_, _ = w.Write([]byte("It is a truth universally acknowledged..."))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	pointAtServer(t, &gutenbergBaseURL, httptest.NewServer(mux))

	g := NewGutenberg(httpx.New())
	text, sourceURL, err := g.Fetch(context.Background(), "1342")
	require.NoError(t, err)
	require.Contains(t, text, "universally acknowledged")
	require.Equal(t, gutenbergBaseURL+"/files/1342/1342-0.txt", sourceURL)
	require.Equal(t, []string{"/files/1342/1342-0.txt"}, requested)
}

func TestGutenbergFetchFallsThroughCandidates(t *testing.T) {
	var requested []string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.Path)
		switch r.URL.Path {
		case "/files/84/84-0.txt":
			w.WriteHeader(http.StatusNotFound)
		case "/files/84/84.txt":
			_, _ = w.Write([]byte("   \n")) // whitespace only, treated as empty
		case "/ebooks/84.txt.utf-8":
			_, _ = w.Write([]byte("Frankenstein; or, The Modern Prometheus"))
		}
	})
	pointAtServer(t, &gutenbergBaseURL, httptest.NewServer(mux))

	g := NewGutenberg(httpx.New())
	text, sourceURL, err := g.Fetch(context.Background(), "84")
	require.NoError(t, err)
	require.Contains(t, text, "Frankenstein")
	require.Contains(t, sourceURL, "/ebooks/84.txt.utf-8")
	require.Equal(t, 3, len(requested))
}

func TestGutenbergFetchAllCandidatesFail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	pointAtServer(t, &gutenbergBaseURL, httptest.NewServer(mux))

	g := NewGutenberg(httpx.New())
	_, _, err := g.Fetch(context.Background(), "99999")
	require.Error(t, err)
	require.True(t, errors.IsContentRejected(err))
}
