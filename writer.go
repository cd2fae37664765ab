package siteatlas

// ArtifactWriter persists classified page content and raw assets to
// storage. Implementations own filesystem-safe naming; callers pass
// logical (unsanitized) names.
type ArtifactWriter interface {
	// EnsureDir creates a directory for the sanitized name under parent
	// and returns its path.
	EnsureDir(parent, name string) (string, error)

	// WritePageContent writes content as one JSON artifact named after
	// the sanitized title inside dir, returning the artifact path.
	WritePageContent(dir, title string, content *PageContent) (string, error)

	// WriteFile writes raw bytes to name inside dir, returning the file
	// path. The name is used verbatim; it must already be safe.
	WriteFile(dir, name string, data []byte) (string, error)
}
