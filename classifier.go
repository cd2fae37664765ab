package siteatlas

// Classifier walks one page's content container and emits an ordered
// sequence of typed content elements. Classification is a pure function of
// the supplied markup and selector: no hidden state, no network access.
type Classifier interface {
	// Classify locates the single container element by CSS selector and
	// classifies its direct children in document order. It fails with an
	// ENOTFOUND error if the selector matches nothing in the page, which
	// is distinct from a successful but empty result.
	Classify(markup, containerSelector string) (*PageContent, error)

	// ContainerMarkup returns the pretty-printed markup of the container
	// element itself, for capture steps that keep the raw page content.
	ContainerMarkup(markup, containerSelector string) (string, error)
}
