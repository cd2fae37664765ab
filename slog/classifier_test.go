package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/siteatlas"
	"github.com/fwojciec/siteatlas/mock"
	saslog "github.com/fwojciec/siteatlas/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingClassifier_Classify(t *testing.T) {
	t.Parallel()

	t.Run("logs selector and element count at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Classifier{
			ClassifyFn: func(_, _ string) (*siteatlas.PageContent, error) {
				return &siteatlas.PageContent{
					Elements: []siteatlas.ContentElement{
						{Type: siteatlas.ElementParagraph, Content: "a"},
						{Type: siteatlas.ElementParagraph, Content: "b"},
					},
				}, nil
			},
		}

		c := saslog.NewLoggingClassifier(inner, logger)
		content, err := c.Classify("<html></html>", "div.page_text")

		require.NoError(t, err)
		assert.Len(t, content.Elements, 2)
		output := buf.String()
		assert.Contains(t, output, "classify")
		assert.Contains(t, output, "selector=div.page_text")
		assert.Contains(t, output, "elements=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Classifier{
			ClassifyFn: func(_, selector string) (*siteatlas.PageContent, error) {
				return nil, siteatlas.Errorf(siteatlas.ENOTFOUND, "container with selector %q not found", selector)
			},
		}

		c := saslog.NewLoggingClassifier(inner, logger)
		_, err := c.Classify("<html></html>", "div.page_text")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "not found")
	})
}

func TestLoggingClassifier_ContainerMarkup(t *testing.T) {
	t.Parallel()

	inner := &mock.Classifier{
		ContainerMarkupFn: func(_, _ string) (string, error) {
			return "<div>captured</div>", nil
		},
	}

	c := saslog.NewLoggingClassifier(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	markup, err := c.ContainerMarkup("<html></html>", "div.page_text")

	require.NoError(t, err)
	assert.Equal(t, "<div>captured</div>", markup)
}
