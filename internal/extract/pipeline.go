package extract

import (
	"context"
	"log/slog"
	"strings"
)

// Pipeline is the two-stage text extraction chain: structural extraction
// first, OCR only when that yields nothing and the toolchain is present.
type Pipeline struct {
	caps       Capabilities
	structural func([]byte) (string, error)
	convert    func(context.Context, []byte) ([]byte, error)
}

// NewPipeline creates a Pipeline bound to the probed host capabilities.
func NewPipeline(caps Capabilities) *Pipeline {
	return &Pipeline{
		caps:       caps,
		structural: Structural,
		convert:    runOCR,
	}
}

// Text converts PDF bytes into plain text. The boolean is false when neither
// stage produced any text; that is a per-item outcome, never an error.
func (p *Pipeline) Text(ctx context.Context, data []byte) (string, bool) {
	text, err := p.structural(data)
	if err != nil {
		slog.Warn("Structural extraction failed", "error", err)
	}
	if strings.TrimSpace(text) != "" {
		return text, true
	}

	if !p.caps.OCRAvailable() {
		slog.Info("No embedded text and OCR toolchain unavailable, skipping OCR")
		return "", false
	}

	converted, err := p.convert(ctx, data)
	if err != nil {
		slog.Warn("OCR conversion failed", "error", err)
		return "", false
	}

	text, err = p.structural(converted)
	if err != nil {
		slog.Warn("Extraction of OCR output failed", "error", err)
		return "", false
	}
	if strings.TrimSpace(text) == "" {
		slog.Warn("OCR produced no text")
		return "", false
	}

	return text, true
}
