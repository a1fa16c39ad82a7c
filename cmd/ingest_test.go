package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func stubStdin(t *testing.T, content string) {
	t.Helper()
	orig := stdin
	stdin = strings.NewReader(content)
	t.Cleanup(func() { stdin = orig })
}

func TestLoadRequestsFromStdin(t *testing.T) {
	stubStdin(t, `[{"url": "https://www.gutenberg.org/ebooks/1342", "title": "Pride and Prejudice"}]`)

	cmd := &IngestCmd{}
	requests, err := cmd.loadRequests()
	require.NoError(t, err)
	require.Equal(t, 1, len(requests))
	require.Equal(t, "Pride and Prejudice", requests[0].Title)
}

func TestLoadRequestsFromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"url": "https://archive.org/details/item1", "title": "Item One"}]`), 0o644))

	cmd := &IngestCmd{Input: path}
	requests, err := cmd.loadRequests()
	require.NoError(t, err)
	require.Equal(t, 1, len(requests))
	require.Equal(t, "Item One", requests[0].Title)
}

func TestLoadRequestsFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.yaml")
	content := "- url: https://www.gutenberg.org/ebooks/84\n  title: Frankenstein\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cmd := &IngestCmd{Input: path}
	requests, err := cmd.loadRequests()
	require.NoError(t, err)
	require.Equal(t, 1, len(requests))
	require.Equal(t, "Frankenstein", requests[0].Title)
}

func TestLoadRequestsMissingFile(t *testing.T) {
	cmd := &IngestCmd{Input: filepath.Join(t.TempDir(), "nope.json")}
	_, err := cmd.loadRequests()
	require.Error(t, err)
}
