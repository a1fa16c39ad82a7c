// Package extract turns fetched PDF payloads into plain text, falling back
// to an external OCR pass when the PDF carries no embedded text layer.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Structural extracts the embedded text layer from a PDF without
// rasterizing. Pages that fail to decode are skipped; a PDF with no usable
// text layer yields an empty string, not an error.
func Structural(data []byte) (text string, err error) {
	// The parser panics on some malformed files; treat that as a normal
	// extraction failure so the OCR fallback gets its turn.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
