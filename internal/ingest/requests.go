// Package ingest drives a batch of book requests through resolution, fetch,
// extraction, and storage.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the batch input encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatForPath picks the input format from the file extension; anything
// that is not .yaml/.yml is treated as JSON (the stdin default).
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Request is one book reference from the batch input.
type Request struct {
	URL      string
	Title    string
	Author   string
	Category string
}

// ParseRequests decodes a batch document: an array of objects with
// case-insensitive keys. Author and category default when absent; requests
// missing url or title are kept here and dropped by the coordinator, so the
// progress numbering matches the input.
func ParseRequests(r io.Reader, format Format) ([]Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}

	var items []map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("failed to parse YAML batch input: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("failed to parse JSON batch input: %w", err)
		}
	}

	requests := make([]Request, 0, len(items))
	for _, item := range items {
		lower := make(map[string]string, len(item))
		for k, v := range item {
			s, ok := v.(string)
			if !ok {
				if v == nil {
					continue
				}
				s = fmt.Sprint(v)
			}
			lower[strings.ToLower(k)] = s
		}

		req := Request{
			URL:      lower["url"],
			Title:    lower["title"],
			Author:   lower["author"],
			Category: lower["category"],
		}
		if req.Author == "" {
			req.Author = "Unknown"
		}
		if req.Category == "" {
			req.Category = "Uncategorized"
		}
		requests = append(requests, req)
	}

	return requests, nil
}
