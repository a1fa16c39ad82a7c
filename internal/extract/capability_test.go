package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func stubLookPath(t *testing.T, present map[string]bool) {
	t.Helper()
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func(name string) (string, error) {
		if present[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestProbeAllPresent(t *testing.T) {
	stubLookPath(t, map[string]bool{"ocrmypdf": true, "tesseract": true, "gs": true})

	caps := Probe()
	require.True(t, caps.OCRAvailable())
}

func TestProbeWindowsGhostscript(t *testing.T) {
	stubLookPath(t, map[string]bool{"ocrmypdf": true, "tesseract": true, "gswin64c": true})

	caps := Probe()
	require.True(t, caps.Ghostscript)
	require.True(t, caps.OCRAvailable())
}

func TestProbeMissingTesseract(t *testing.T) {
	stubLookPath(t, map[string]bool{"ocrmypdf": true, "gs": true})

	caps := Probe()
	require.False(t, caps.Tesseract)
	require.False(t, caps.OCRAvailable())
}
