package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/siteatlas"
	main "github.com/fwojciec/siteatlas/cmd/siteatlas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSiteMapFile(t *testing.T, s *siteatlas.SiteMap) string {
	t.Helper()

	data, err := siteatlas.MarshalSiteMap(s)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "sitemap.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func nestedSiteMap() *siteatlas.SiteMap {
	return &siteatlas.SiteMap{
		RootURL: "https://example.com",
		Categories: []*siteatlas.Category{
			{
				Name: "Docs",
				URL:  "https://example.com/docs",
				Subcategories: []*siteatlas.Category{
					{Name: "Changelog", URL: "https://example.com/changelog"},
				},
			},
		},
	}
}

func TestNormalizeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the normalized site map", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}}

		cmd := &main.NormalizeCmd{Sitemap: writeSiteMapFile(t, nestedSiteMap())}
		require.NoError(t, cmd.Run(deps))

		normalized, err := siteatlas.UnmarshalSiteMap(stdout.Bytes())
		require.NoError(t, err)
		docs := normalized.Categories[0]
		assert.Empty(t, docs.Subcategories)
		require.Len(t, docs.Articles, 1)
		assert.Equal(t, "Changelog", docs.Articles[0].Title)
	})

	t.Run("writes to the output file", func(t *testing.T) {
		t.Parallel()

		output := filepath.Join(t.TempDir(), "normalized.json")
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

		cmd := &main.NormalizeCmd{Sitemap: writeSiteMapFile(t, nestedSiteMap()), Output: output}
		require.NoError(t, cmd.Run(deps))

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		_, err = siteatlas.UnmarshalSiteMap(data)
		assert.NoError(t, err)
	})

	t.Run("missing site map file", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		cmd := &main.NormalizeCmd{Sitemap: filepath.Join(t.TempDir(), "missing.json")}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "cannot read site map")
	})
}

func TestFindCmd_Run(t *testing.T) {
	t.Parallel()

	siteMap := &siteatlas.SiteMap{
		RootURL: "https://example.com",
		Categories: []*siteatlas.Category{
			{
				Name: "Docs",
				URL:  "https://example.com/docs/7",
				Articles: []*siteatlas.Article{
					{Title: "Intro", URL: "https://example.com/articles/12"},
				},
			},
		},
	}

	t.Run("finds an article by URL suffix", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}}

		cmd := &main.FindCmd{Sitemap: writeSiteMapFile(t, siteMap), ID: 12}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "article")
		assert.Contains(t, stdout.String(), "Intro")
		assert.Contains(t, stdout.String(), "https://example.com/articles/12")
	})

	t.Run("finds a category by URL suffix", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}}

		cmd := &main.FindCmd{Sitemap: writeSiteMapFile(t, siteMap), ID: 7}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "category")
		assert.Contains(t, stdout.String(), "Docs")
	})

	t.Run("no match is not found", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		cmd := &main.FindCmd{Sitemap: writeSiteMapFile(t, siteMap), ID: 999}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, siteatlas.ENOTFOUND, siteatlas.ErrorCode(err))
		assert.Contains(t, stderr.String(), "999")
	})
}
