package fs

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/siteatlas"
	"github.com/google/uuid"
)

// ManifestArticle maps one article's logical identity to its hashed file.
type ManifestArticle struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	File  string `json:"file"`
}

// ManifestEntry maps one category's logical name to its hashed directory,
// recursively.
type ManifestEntry struct {
	Name          string            `json:"name"`
	URL           string            `json:"url"`
	Path          string            `json:"path"`
	Articles      []ManifestArticle `json:"articles"`
	Subcategories []ManifestEntry   `json:"subcategories"`
}

// Manifest describes a packaged bundle: which logical names live behind
// which hashed paths.
type Manifest struct {
	ID         string          `json:"id"`
	RootURL    string          `json:"root_url"`
	Categories []ManifestEntry `json:"categories"`
}

// Packager mirrors a site map into nested directories using hashed names
// per category and per article. Hashed names sidestep filesystem-unsafe
// characters and length limits coming from arbitrary site content; the
// manifest.json written at the bundle root maps logical names back to the
// hashed layout.
type Packager struct {
	// Converter, when set, writes a Markdown companion next to each
	// article that carries captured markup.
	Converter siteatlas.Converter

	// Logger receives companion-conversion diagnostics.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Package mirrors the site map under dir and writes manifest.json at its
// root.
func (p *Packager) Package(siteMap *siteatlas.SiteMap, dir string) (*Manifest, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, siteatlas.Errorf(siteatlas.EINTERNAL, "creating bundle root %q: %v", dir, err)
	}

	manifest := &Manifest{
		ID:      uuid.New().String(),
		RootURL: siteMap.RootURL,
	}

	for _, category := range siteMap.Categories {
		entry, err := p.packageCategory(category, dir, "")
		if err != nil {
			return nil, err
		}
		manifest.Categories = append(manifest.Categories, entry)
	}

	data, err := json.MarshalIndent(manifest, "", "    ")
	if err != nil {
		return nil, siteatlas.Errorf(siteatlas.EINTERNAL, "marshaling manifest: %v", err)
	}
	manifestPath := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return nil, siteatlas.Errorf(siteatlas.EINTERNAL, "writing manifest %q: %v", manifestPath, err)
	}

	return manifest, nil
}

func (p *Packager) packageCategory(category *siteatlas.Category, parentDir, parentRel string) (ManifestEntry, error) {
	hashed := HashName(category.URL)
	rel := filepath.ToSlash(filepath.Join(parentRel, hashed))
	dir := filepath.Join(parentDir, hashed)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ManifestEntry{}, siteatlas.Errorf(siteatlas.EINTERNAL, "creating category directory %q: %v", dir, err)
	}

	entry := ManifestEntry{
		Name: category.Name,
		URL:  category.URL,
		Path: rel,
	}

	for _, article := range category.Articles {
		file, err := p.packageArticle(article, dir)
		if err != nil {
			return ManifestEntry{}, err
		}
		entry.Articles = append(entry.Articles, ManifestArticle{
			Title: article.Title,
			URL:   article.URL,
			File:  filepath.ToSlash(filepath.Join(rel, file)),
		})
	}

	for _, subcategory := range category.Subcategories {
		sub, err := p.packageCategory(subcategory, dir, rel)
		if err != nil {
			return ManifestEntry{}, err
		}
		entry.Subcategories = append(entry.Subcategories, sub)
	}

	return entry, nil
}

// packageArticle writes the article as JSON under its hashed name and
// returns the file name. A Markdown companion is written when a converter
// is configured and the article carries captured markup; companion
// failures are logged, not fatal.
func (p *Packager) packageArticle(article *siteatlas.Article, dir string) (string, error) {
	hashed := HashName(article.URL)
	file := hashed + ".json"

	data, err := json.Marshal(article)
	if err != nil {
		return "", siteatlas.Errorf(siteatlas.EINTERNAL, "marshaling article %q: %v", article.URL, err)
	}
	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", siteatlas.Errorf(siteatlas.EINTERNAL, "writing article %q: %v", path, err)
	}

	if p.Converter != nil && article.HTML != "" {
		markdown, err := p.Converter.Convert(article.HTML)
		if err != nil {
			p.logger().Warn("markdown companion skipped", "url", article.URL, "err", err)
		} else {
			mdPath := filepath.Join(dir, hashed+".md")
			if err := os.WriteFile(mdPath, []byte(markdown), 0644); err != nil {
				p.logger().Warn("markdown companion skipped", "url", article.URL, "err", err)
			}
		}
	}

	return file, nil
}

// Archive writes the whole bundle directory into a single zip file.
func (p *Packager) Archive(dir, zipPath string) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return siteatlas.Errorf(siteatlas.EINTERNAL, "creating archive %q: %v", zipPath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		return siteatlas.Errorf(siteatlas.EINTERNAL, "archiving %q: %v", dir, err)
	}

	return nil
}

// HashName returns the 16-hex-character xxhash of a URL, used as a
// filesystem-safe directory or file name.
func HashName(url string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(url))
}

func (p *Packager) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
