package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/siteatlas"
)

// Ensure LoggingClassifier implements siteatlas.Classifier.
var _ siteatlas.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging.
type LoggingClassifier struct {
	next   siteatlas.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next siteatlas.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the operation.
func (c *LoggingClassifier) Classify(markup, containerSelector string) (content *siteatlas.PageContent, err error) {
	defer func(begin time.Time) {
		elements := 0
		if content != nil {
			elements = len(content.Elements)
		}
		c.logger.Debug("classify",
			"selector", containerSelector,
			"elements", elements,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Classify(markup, containerSelector)
}

// ContainerMarkup delegates to the wrapped classifier.
func (c *LoggingClassifier) ContainerMarkup(markup, containerSelector string) (string, error) {
	return c.next.ContainerMarkup(markup, containerSelector)
}
