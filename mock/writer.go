package mock

import "github.com/fwojciec/siteatlas"

var _ siteatlas.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter is a mock implementation of siteatlas.ArtifactWriter.
type ArtifactWriter struct {
	EnsureDirFn        func(parent, name string) (string, error)
	WritePageContentFn func(dir, title string, content *siteatlas.PageContent) (string, error)
	WriteFileFn        func(dir, name string, data []byte) (string, error)
}

func (w *ArtifactWriter) EnsureDir(parent, name string) (string, error) {
	return w.EnsureDirFn(parent, name)
}

func (w *ArtifactWriter) WritePageContent(dir, title string, content *siteatlas.PageContent) (string, error) {
	return w.WritePageContentFn(dir, title, content)
}

func (w *ArtifactWriter) WriteFile(dir, name string, data []byte) (string, error) {
	return w.WriteFileFn(dir, name, data)
}
