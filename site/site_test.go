package site

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/marcovoc/awesomepages/config"
	"github.com/marcovoc/awesomepages/files"
	"github.com/marcovoc/awesomepages/internal/testutil"
	"github.com/marcovoc/awesomepages/nav"
	"github.com/marcovoc/awesomepages/pageserrors"
	"github.com/marcovoc/awesomepages/plugin"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func readSite(t *testing.T, cfgPath, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(filepath.Dir(cfgPath), "site", filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func navPages(n *nav.Navigation) []string {
	var out []string
	nav.Walk(n.Items, func(it *nav.Item) {
		if it.Kind == nav.KindPage {
			out = append(out, it.File.SrcPath)
		}
	})
	return out
}

func TestBuildRestEntry(t *testing.T) {
	cfgPath := testutil.NewSite(t, `
nav:
  - a.md
  - "..."
  - b.md
`, map[string]string{
		"a.md": "# Alpha\n\nFirst.\n",
		"b.md": "# Beta\n",
		"c.md": "# Gamma\n",
		"d.md": "no heading here\n",
	})

	res, err := BuildFile(context.Background(), cfgPath)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.md", "c.md", "d.md", "b.md"}, navPages(res.Navigation))
	assert.ElementsMatch(t, []string{"a.html", "b.html", "c.html", "d.html"}, res.Pages)
	assert.Empty(t, res.Warnings)

	page := readSite(t, cfgPath, "a.html")
	assert.Contains(t, page, `<h1 id="alpha">Alpha</h1>`)
	assert.Contains(t, page, "<title>Alpha - Test</title>")
	assert.Contains(t, page, `<a href="a.html" class="active">Alpha</a>`)
	assert.Contains(t, page, `<a href="d.html">D</a>`, "pages without a heading are titled after their file")
}

func TestBuildConditionalPage(t *testing.T) {
	docs := map[string]string{
		"index.md":  "# Home\n",
		"secret.md": "# Secret\n",
		".pages":    "nav:\n  - index.md\n  - secret.md:\n      if: ONLY_IF_ENV=prod\n",
	}

	t.Run("excluded", func(t *testing.T) {
		cfgPath := testutil.NewSite(t, "", docs)
		res, err := BuildFile(context.Background(), cfgPath,
			WithPluginOptions(plugin.WithEnv(map[string]string{})))
		require.NoError(t, err)

		assert.Equal(t, []string{"secret.md"}, res.DeletedFiles)
		assert.Equal(t, []string{"index.md"}, navPages(res.Navigation))
		assert.NoFileExists(t, filepath.Join(filepath.Dir(cfgPath), "site", "secret.html"))
		assert.Len(t, res.Warnings.ByCategory(plugin.WarnPageExcluded), 1)
	})

	t.Run("included", func(t *testing.T) {
		cfgPath := testutil.NewSite(t, "", docs)
		res, err := BuildFile(context.Background(), cfgPath,
			WithPluginOptions(plugin.WithEnv(map[string]string{"ONLY_IF_ENV": "prod"})))
		require.NoError(t, err)

		assert.Empty(t, res.DeletedFiles)
		assert.Equal(t, []string{"index.md", "secret.md"}, navPages(res.Navigation))
		assert.FileExists(t, filepath.Join(filepath.Dir(cfgPath), "site", "secret.html"))
	})

	listed := map[string]string{
		"index.md":  "# Home\n",
		"secret.md": "# Secret\n",
		"other.md":  "# Other\n",
		".pages":    "nav:\n  - secret.md:\n      if: ONLY_IF_ENV=prod\n",
	}
	for _, tt := range []struct {
		name string
		nav  string
		want []string
	}{
		{"listed next to a rest entry", "nav:\n  - index.md\n  - secret.md\n  - \"...\"\n", []string{"index.md", "other.md"}},
		{"listed without a rest entry", "nav:\n  - index.md\n  - secret.md\n  - other.md\n", []string{"index.md", "other.md"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := testutil.NewSite(t, tt.nav, listed)
			res, err := BuildFile(context.Background(), cfgPath,
				WithPluginOptions(plugin.WithStrict(true), plugin.WithEnv(map[string]string{})))
			require.NoError(t, err)

			assert.Equal(t, []string{"secret.md"}, res.DeletedFiles)
			assert.Equal(t, tt.want, navPages(res.Navigation))
			assert.NoFileExists(t, filepath.Join(filepath.Dir(cfgPath), "site", "secret.html"))
			assert.Empty(t, res.Warnings.ByCategory(plugin.WarnNavEntry))
			nav.Walk(res.Navigation.Items, func(it *nav.Item) {
				assert.NotEqual(t, "secret.md", it.URL)
			})
		})
	}
}

func TestBuildPrunesUnreferencedAssets(t *testing.T) {
	cfgPath := testutil.NewSite(t, "site_url: https://docs.example.com/\n", map[string]string{
		".pages":                 "filter_not_referenced: false\n",
		"index.md":               "# Home\n\nSee the [guide](guide/index.md#setup).\n",
		"logo.png":               "png",
		"guide/.pages":           "filter_not_referenced: true\n",
		"guide/index.md":         "# Guide\n\n![diagram](diagram.png)\n\n[home](../index.md)\n",
		"guide/diagram.png":      "png",
		"guide/extra/unused.png": "png",
		"guide/notes.txt":        "txt",
	})

	res, err := BuildFile(context.Background(), cfgPath)
	require.NoError(t, err)

	siteDir := filepath.Join(filepath.Dir(cfgPath), "site")
	assert.Equal(t, []string{
		"guide/diagram.png",
		"guide/index.html",
		"index.html",
		"logo.png",
		"search/search_index.json",
		"sitemap.xml",
		"sitemap.xml.gz",
	}, testutil.ListTree(t, siteDir))
	assert.ElementsMatch(t, []string{
		filepath.Join(siteDir, "guide", "extra", "unused.png"),
		filepath.Join(siteDir, "guide", "notes.txt"),
	}, res.PrunedFiles)
	assert.NoDirExists(t, filepath.Join(siteDir, "guide", "extra"))

	index := readSite(t, cfgPath, "index.html")
	assert.Contains(t, index, `<a href="guide/index.html#setup">guide</a>`)
	guide := readSite(t, cfgPath, "guide/index.html")
	assert.Contains(t, guide, `<a href="../index.html">home</a>`)
	assert.Contains(t, readSite(t, cfgPath, "sitemap.xml"), "<loc>https://docs.example.com/guide/index.html</loc>")
}

func TestBuildFlaggedRootKeepsGeneratorOutputs(t *testing.T) {
	cfgPath := testutil.NewSite(t, "", map[string]string{
		".pages":   "filter_not_referenced: true\n",
		"index.md": "# Home\n",
		"old.css":  "css",
	})

	res, err := BuildFile(context.Background(), cfgPath)
	require.NoError(t, err)

	siteDir := filepath.Join(filepath.Dir(cfgPath), "site")
	assert.Equal(t, []string{filepath.Join(siteDir, "old.css")}, res.PrunedFiles)
	assert.Equal(t, []string{
		"index.html",
		"search/search_index.json",
		"sitemap.xml",
		"sitemap.xml.gz",
	}, testutil.ListTree(t, siteDir))
}

type recordingNavHook struct {
	name  string
	calls *[]string
}

func (h recordingNavHook) Name() string { return h.name }

func (h recordingNavHook) OnNav(n *nav.Navigation, _ *files.Files) (*nav.Navigation, error) {
	*h.calls = append(*h.calls, h.name+":"+n.Items[len(n.Items)-1].Title)
	return n, nil
}

func TestBuildCollaborators(t *testing.T) {
	cfgPath := testutil.NewSite(t, `
plugins:
  - search
  - before
  - awesome-pages:
      strict: false
`, map[string]string{
		"index.md":   "# Home\n",
		"sub/.pages": "title: Renamed\n",
		"sub/a.md":   "# A\n",
	})

	var calls []string
	res, err := BuildFile(context.Background(), cfgPath, WithCollaborators(
		recordingNavHook{name: "after", calls: &calls},
		recordingNavHook{name: "before", calls: &calls},
	))
	require.NoError(t, err)

	// "before" sees the navigation ahead of the metadata, "after" once it is applied.
	assert.Equal(t, []string{"before:Sub", "after:Renamed"}, calls)
	warnings := res.Warnings.ByCategory(plugin.WarnNavPluginOrder)
	require.Len(t, warnings, 1)
	assert.Equal(t, "before", warnings[0].Source)
	assert.Equal(t, "Renamed", res.Navigation.Items[1].Title)
}

func TestBuildErrors(t *testing.T) {
	t.Run("duplicate rest item", func(t *testing.T) {
		cfgPath := testutil.NewSite(t, "nav:\n  - \"...\"\n  - \"... | flat\"\n", map[string]string{"a.md": "a"})
		_, err := BuildFile(context.Background(), cfgPath)
		assert.True(t, errors.Is(err, pageserrors.ErrDuplicateRestItem))
	})

	t.Run("malformed metadata", func(t *testing.T) {
		cfgPath := testutil.NewSite(t, "", map[string]string{"a.md": "a", ".pages": "nav: {"})
		_, err := BuildFile(context.Background(), cfgPath)
		assert.True(t, errors.Is(err, pageserrors.ErrMeta))
	})

	t.Run("malformed metadata tolerated", func(t *testing.T) {
		cfgPath := testutil.NewSite(t, "", map[string]string{"a.md": "a", ".pages": "nav: {"})
		res, err := BuildFile(context.Background(), cfgPath, WithPluginOptions(plugin.WithStrict(false)))
		require.NoError(t, err)
		assert.Len(t, res.Warnings.ByCategory(plugin.WarnMeta), 1)
	})

	t.Run("invalid concurrency", func(t *testing.T) {
		cfgPath := testutil.NewSite(t, "", map[string]string{"a.md": "a"})
		_, err := BuildFile(context.Background(), cfgPath, WithConcurrency(0))
		assert.True(t, errors.Is(err, pageserrors.ErrConfig))
	})

	t.Run("missing configuration", func(t *testing.T) {
		_, err := BuildFile(context.Background(), filepath.Join(t.TempDir(), "mkdocs.yml"))
		assert.True(t, errors.Is(err, pageserrors.ErrConfig))
	})

	t.Run("canceled", func(t *testing.T) {
		cfgPath := testutil.NewSite(t, "", map[string]string{"a.md": "a"})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := BuildFile(ctx, cfgPath)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBuildRemovesStaleOutput(t *testing.T) {
	cfgPath := testutil.NewSite(t, "", map[string]string{"a.md": "# A\n"})
	siteDir := filepath.Join(filepath.Dir(cfgPath), "site")
	testutil.WriteTree(t, siteDir, map[string]string{"stale.html": "old"})

	_, err := BuildFile(context.Background(), cfgPath)
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(siteDir, "stale.html"))
	assert.FileExists(t, filepath.Join(siteDir, "a.html"))
}

func TestNavigationWritesNothing(t *testing.T) {
	cfgPath := testutil.NewSite(t, "nav:\n  - b.md\n  - \"...\"\n", map[string]string{
		"a.md": "# A\n",
		"b.md": "# B\n",
	})
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	n, warnings, err := Navigation(context.Background(), cfg)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"b.md", "a.md"}, navPages(n))
	assert.NoDirExists(t, cfg.SiteDir)
}
