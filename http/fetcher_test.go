package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/siteatlas"
	sahttp "github.com/fwojciec/siteatlas/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		f := sahttp.NewFetcher()
		defer f.Close()

		markup, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>hello</body></html>", markup)
	})

	t.Run("non-OK status is unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		f := sahttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		assert.Equal(t, siteatlas.EUNAVAILABLE, siteatlas.ErrorCode(err))
		assert.Contains(t, siteatlas.ErrorMessage(err), srv.URL)
	})

	t.Run("unreachable server is unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		srv.Close() // immediately, so the address refuses connections

		f := sahttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		assert.Equal(t, siteatlas.EUNAVAILABLE, siteatlas.ErrorCode(err))
	})

	t.Run("invalid URL is invalid", func(t *testing.T) {
		t.Parallel()

		f := sahttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), "://bad")
		assert.Equal(t, siteatlas.EINVALID, siteatlas.ErrorCode(err))
	})

	t.Run("timeout option bounds slow responses", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		}))
		defer srv.Close()

		f := sahttp.NewFetcher(sahttp.WithTimeout(20 * time.Millisecond))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		assert.Equal(t, siteatlas.EUNAVAILABLE, siteatlas.ErrorCode(err))
	})

	t.Run("context cancellation aborts the request", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		f := sahttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(ctx, srv.URL)
		assert.Equal(t, siteatlas.EUNAVAILABLE, siteatlas.ErrorCode(err))
	})
}

func TestFetcher_Download(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte{0xFF, 0xD8, 0xFF}) // JPEG magic bytes
	}))
	defer srv.Close()

	f := sahttp.NewFetcher()
	defer f.Close()

	data, err := f.Download(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, data)
}
