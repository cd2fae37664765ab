package siteatlas

// Converter transforms HTML content into Markdown. Offline bundles use it
// to write human-readable companions next to captured article markup.
type Converter interface {
	Convert(html string) (string, error)
}
