package mock

import "github.com/fwojciec/siteatlas"

var _ siteatlas.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of siteatlas.Classifier.
type Classifier struct {
	ClassifyFn        func(markup, containerSelector string) (*siteatlas.PageContent, error)
	ContainerMarkupFn func(markup, containerSelector string) (string, error)
}

func (c *Classifier) Classify(markup, containerSelector string) (*siteatlas.PageContent, error) {
	return c.ClassifyFn(markup, containerSelector)
}

func (c *Classifier) ContainerMarkup(markup, containerSelector string) (string, error) {
	if c.ContainerMarkupFn == nil {
		return markup, nil
	}
	return c.ContainerMarkupFn(markup, containerSelector)
}
