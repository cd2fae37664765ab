package siteatlas_test

import (
	"testing"

	"github.com/fwojciec/siteatlas"
	"github.com/stretchr/testify/assert"
)

func TestArticle_Identity(t *testing.T) {
	t.Parallel()

	t.Run("equal title and URL are the same entity", func(t *testing.T) {
		t.Parallel()

		a := &siteatlas.Article{Title: "Intro", URL: "https://example.com/1"}
		b := &siteatlas.Article{Title: "Intro", URL: "https://example.com/1"}

		assert.True(t, a.Identity(b))
	})

	t.Run("captured markup does not affect identity", func(t *testing.T) {
		t.Parallel()

		a := &siteatlas.Article{Title: "Intro", URL: "https://example.com/1"}
		b := &siteatlas.Article{Title: "Intro", URL: "https://example.com/1", HTML: "<p>hi</p>"}

		assert.True(t, a.Identity(b))
	})

	t.Run("different URL is a different entity", func(t *testing.T) {
		t.Parallel()

		a := &siteatlas.Article{Title: "Intro", URL: "https://example.com/1"}
		b := &siteatlas.Article{Title: "Intro", URL: "https://example.com/2"}

		assert.False(t, a.Identity(b))
	})

	t.Run("different title is a different entity", func(t *testing.T) {
		t.Parallel()

		a := &siteatlas.Article{Title: "Intro", URL: "https://example.com/1"}
		b := &siteatlas.Article{Title: "Overview", URL: "https://example.com/1"}

		assert.False(t, a.Identity(b))
	})
}

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		a := &siteatlas.Article{Title: "Intro", URL: "https://example.com/1"}
		assert.NoError(t, a.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		a := &siteatlas.Article{URL: "https://example.com/1"}
		assert.Equal(t, siteatlas.EINVALID, siteatlas.ErrorCode(a.Validate()))
	})

	t.Run("missing URL", func(t *testing.T) {
		t.Parallel()

		a := &siteatlas.Article{Title: "Intro"}
		assert.Equal(t, siteatlas.EINVALID, siteatlas.ErrorCode(a.Validate()))
	})
}
