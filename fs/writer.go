// Package fs provides filesystem-backed artifact storage: sanitized
// human-readable layouts for materialization and hashed layouts for
// offline bundles.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/siteatlas"
)

// Ensure Writer implements siteatlas.ArtifactWriter at compile time.
var _ siteatlas.ArtifactWriter = (*Writer)(nil)

// Sanitize makes a name safe for use as a file or directory name:
// every character that is not a letter, digit, space, underscore, or
// hyphen becomes an underscore, and surrounding whitespace is trimmed.
// An empty result falls back to a single underscore so the name can
// still anchor a path element.
func Sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	s := strings.TrimSpace(b.String())
	if s == "" {
		return "_"
	}
	return s
}

// Writer materializes artifacts under sanitized names.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// EnsureDir creates a directory for the sanitized name under parent.
func (w *Writer) EnsureDir(parent, name string) (string, error) {
	dir := filepath.Join(parent, Sanitize(name))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", siteatlas.Errorf(siteatlas.EINTERNAL, "creating directory %q: %v", dir, err)
	}
	return dir, nil
}

// WritePageContent writes content as one JSON artifact named after the
// sanitized title inside dir.
func (w *Writer) WritePageContent(dir, title string, content *siteatlas.PageContent) (string, error) {
	data, err := json.Marshal(content)
	if err != nil {
		return "", siteatlas.Errorf(siteatlas.EINTERNAL, "marshaling page content for %q: %v", title, err)
	}

	path := filepath.Join(dir, Sanitize(title)+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", siteatlas.Errorf(siteatlas.EINTERNAL, "writing artifact %q: %v", path, err)
	}
	return path, nil
}

// WriteFile writes raw bytes to name inside dir. The name is used
// verbatim; callers pass names that are already safe (e.g. hashed asset
// names).
func (w *Writer) WriteFile(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", siteatlas.Errorf(siteatlas.EINTERNAL, "writing file %q: %v", path, err)
	}
	return path, nil
}
