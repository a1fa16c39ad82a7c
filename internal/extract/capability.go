package extract

import (
	"log/slog"
	"os/exec"
)

// lookPath is a seam for tests.
var lookPath = exec.LookPath

// Capabilities records which external OCR tools are present on the host.
type Capabilities struct {
	OCRMyPDF    bool
	Tesseract   bool
	Ghostscript bool
}

// Probe checks the host for the OCR toolchain. The result is computed once
// at startup and carried through the pipeline; OCR is never attempted when
// any piece is missing.
func Probe() Capabilities {
	caps := Capabilities{}

	if _, err := lookPath("ocrmypdf"); err == nil {
		caps.OCRMyPDF = true
	}
	if _, err := lookPath("tesseract"); err == nil {
		caps.Tesseract = true
	}
	// Windows installs ghostscript as gswin64c.
	for _, name := range []string{"gs", "gswin64c"} {
		if _, err := lookPath(name); err == nil {
			caps.Ghostscript = true
			break
		}
	}

	return caps
}

// OCRAvailable reports whether the full OCR fallback chain can run.
func (c Capabilities) OCRAvailable() bool {
	return c.OCRMyPDF && c.Tesseract && c.Ghostscript
}

// LogMissing warns once for each missing optional tool. Text extraction
// still works without them, but the OCR fallback is disabled.
func (c Capabilities) LogMissing() {
	if c.OCRAvailable() {
		return
	}
	if !c.OCRMyPDF {
		slog.Warn("ocrmypdf not found, OCR fallback unavailable")
	}
	if !c.Tesseract {
		slog.Warn("tesseract not found, OCR fallback unavailable")
	}
	if !c.Ghostscript {
		slog.Warn("ghostscript not found, OCR fallback unavailable")
	}
}
