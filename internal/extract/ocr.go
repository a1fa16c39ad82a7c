package extract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// runOCR pipes the original PDF through ocrmypdf, forcing a fresh OCR text
// layer on every page, and returns the rewritten PDF. Variable so tests can
// substitute a fake converter.
var runOCR = func(ctx context.Context, data []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "ocrmypdf", "--force-ocr", "-l", "eng", "-", "-")
	cmd.Stdin = bytes.NewReader(data)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ocrmypdf failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}
