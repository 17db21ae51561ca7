package site

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"github.com/marcovoc/awesomepages/files"
	"github.com/marcovoc/awesomepages/internal/fileutil"
	"github.com/marcovoc/awesomepages/internal/pathutil"
)

// writeOutput writes data to the site-relative rel, creating parent
// directories. Paths that resolve outside siteDir or to a symlink are refused.
func writeOutput(siteDir, rel string, data []byte) error {
	dest, err := outputPath(siteDir, rel)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(dest, data); err != nil {
		return fmt.Errorf("site: %w", err)
	}
	return nil
}

func outputPath(siteDir, rel string) (string, error) {
	dest, err := pathutil.OutputPath(siteDir, rel)
	if err != nil {
		return "", fmt.Errorf("site: %w", err)
	}
	return dest, nil
}

// copyStatic copies the static files to the site, at most limit at a time.
// The first failure cancels the remaining copies.
func copyStatic(ctx context.Context, siteDir string, static []*files.File, limit int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, f := range static {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return copyFile(siteDir, f)
		})
	}
	return g.Wait()
}

func copyFile(siteDir string, f *files.File) error {
	dest, err := outputPath(siteDir, f.DestPath)
	if err != nil {
		return err
	}
	if err := fileutil.CopyFile(dest, f.AbsSrcPath); err != nil {
		return fmt.Errorf("site: copying %s: %w", f.SrcPath, err)
	}
	return nil
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// sitemap returns sitemap.xml for the pages, with locations below siteURL.
func sitemap(siteURL string, pages []*files.File) ([]byte, error) {
	base := strings.TrimSuffix(siteURL, "/") + "/"
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range pages {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + p.URL})
	}
	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("site: sitemap: %w", err)
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type searchIndex struct {
	Config searchConfig `json:"config"`
	Docs   []searchDoc  `json:"docs"`
}

type searchConfig struct {
	Lang []string `json:"lang"`
}

type searchDoc struct {
	Location string `json:"location"`
	Title    string `json:"title"`
	Text     string `json:"text"`
}

func searchIndexJSON(docs []searchDoc) ([]byte, error) {
	if docs == nil {
		docs = []searchDoc{}
	}
	data, err := json.Marshal(searchIndex{Config: searchConfig{Lang: []string{"en"}}, Docs: docs})
	if err != nil {
		return nil, fmt.Errorf("site: search index: %w", err)
	}
	return data, nil
}
