package cmd

import (
	"log/slog"

	"github.com/akorhonen/librarian/internal/extract"
)

// Run reports which external OCR tools are installed. The pipeline works
// without them, but scanned PDFs with no text layer will yield nothing.
func (d *DoctorCmd) Run() error {
	caps := extract.Probe()

	slog.Info("OCR toolchain",
		"ocrmypdf", caps.OCRMyPDF,
		"tesseract", caps.Tesseract,
		"ghostscript", caps.Ghostscript,
	)

	if caps.OCRAvailable() {
		slog.Info("OCR fallback available")
	} else {
		slog.Warn("OCR fallback unavailable; PDFs without embedded text will not be extracted")
	}

	return nil
}
