package nav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestTitleFromName(t *testing.T) {
	tests := []struct {
		name   string
		isFile bool
		want   string
	}{
		{"getting-started.md", true, "Getting started"},
		{"api_reference", false, "Api reference"},
		{"FAQ.md", true, "FAQ"},
		{"Release-Notes.md", true, "Release Notes"},
		{"changelog", false, "Changelog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleFromName(tt.name, tt.isFile))
		})
	}
}

func TestPageTitle(t *testing.T) {
	fs := makeFiles("index.md", "guides/README.md", "setup.md")
	assert.Equal(t, "Home", PageTitle(fs.Get("index.md")))
	assert.Equal(t, "README", PageTitle(fs.Get("guides/README.md")))

	f := fs.Get("setup.md")
	f.Title = "Installing things"
	assert.Equal(t, "Installing things", PageTitle(f))
}

func TestBuildDefault(t *testing.T) {
	fs := makeFiles("index.md", "a.md", "logo.png", "guides/index.md", "guides/deep/x.md", "api/y.md")
	n := BuildDefault(fs)

	require.Len(t, n.Items, 4)
	assert.Equal(t, "Home", n.Items[0].Title)
	assert.Equal(t, "A", n.Items[1].Title)

	guides := n.Items[2]
	assert.Equal(t, KindSection, guides.Kind)
	assert.Equal(t, "guides", guides.Dir)
	require.Len(t, guides.Children, 2)
	assert.Equal(t, "guides/deep", guides.Children[1].Dir)

	assert.Equal(t, "api", n.Items[3].Dir)
	assert.Len(t, n.Pages(), 5, "static files are not pages")
	assert.Len(t, n.Sections(), 3)
}

func TestFromConfig(t *testing.T) {
	fs := makeFiles("index.md", "a.md", "img/logo.png", "guides/g.md")

	var cfg ConfigNode
	require.NoError(t, yaml.Unmarshal([]byte(`
- index.md
- Intro: a.md
- Logo: img/logo.png
- Guides:
    - guides/g.md
    - External: https://example.com
- gone.md
`), &cfg))

	draft, unresolved, err := FromConfig(&cfg, fs)
	require.NoError(t, err)
	assert.Equal(t, []string{"gone.md"}, unresolved)

	require.Len(t, draft.Items, 5)
	assert.Equal(t, "Home", draft.Items[0].Title)
	assert.Equal(t, "Intro", draft.Items[1].Title)
	assert.Equal(t, KindPage, draft.Items[1].Kind)

	logo := draft.Items[2]
	assert.Equal(t, KindLink, logo.Kind, "non-page files become links")
	assert.Equal(t, "img/logo.png", logo.URL)

	guides := draft.Items[3]
	assert.Equal(t, KindSection, guides.Kind)
	assert.Empty(t, guides.Dir)
	require.Len(t, guides.Children, 2)
	assert.Equal(t, KindLink, guides.Children[1].Kind)

	assert.Equal(t, KindLink, draft.Items[4].Kind)
	assert.Len(t, draft.Pages(), 3)
}

func TestFromConfigNestedListWithoutTitle(t *testing.T) {
	cfg := Sequence(Scalar("a.md"), Sequence(Scalar("b.md")))
	_, _, err := FromConfig(cfg, makeFiles("a.md", "b.md"))
	assert.Error(t, err)
}

func TestFromConfigExcluding(t *testing.T) {
	fs := makeFiles("index.md", "other.md")
	cfg := Sequence(
		Scalar("index.md"),
		Scalar("secret.md"),
		Mapping("Hidden", Scalar("./secret.md")),
		Mapping("Private", Sequence(Scalar("secret.md"), Scalar("other.md"))),
		Scalar("gone.md"),
	)

	draft, unresolved, err := FromConfigExcluding(cfg, fs, map[string]bool{"secret.md": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"gone.md"}, unresolved, "excluded pages are not unresolved")

	require.Len(t, draft.Items, 3)
	assert.Equal(t, "index.md", draft.Items[0].File.SrcPath)
	private := draft.Items[1]
	assert.Equal(t, KindSection, private.Kind)
	require.Len(t, private.Children, 1)
	assert.Equal(t, "other.md", private.Children[0].File.SrcPath)
	assert.Equal(t, KindLink, draft.Items[2].Kind)
}

func TestFilter(t *testing.T) {
	fs := makeFiles("a.md")
	items := []*Item{
		NewPage("A", fs.Get("a.md")),
		NewLink("Secret", "secret.md"),
		NewSection("Group", "", []*Item{NewLink("Secret", "secret.md")}),
	}

	got := Filter(items, func(it *Item) bool { return it.Kind == KindLink && it.URL == "secret.md" })
	require.Len(t, got, 2)
	assert.Equal(t, KindPage, got[0].Kind)
	assert.Equal(t, KindSection, got[1].Kind)
	assert.Empty(t, got[1].Children, "sections stay when emptied")
}

func TestConfigNodeYAML(t *testing.T) {
	var cfg ConfigNode
	require.NoError(t, yaml.Unmarshal([]byte(`
- Zeta: z.md
  Alpha: a.md
- AWESOME_PAGES_REST: /... | flat | api/**
`), &cfg))

	require.Equal(t, ConfigSequence, cfg.Kind)
	require.Len(t, cfg.Items, 2)

	first := cfg.Items[0]
	require.Len(t, first.Pairs, 2)
	assert.Equal(t, "Zeta", first.Pairs[0].Key, "mapping order is kept")
	assert.Equal(t, "Alpha", first.Pairs[1].Key)

	rest, ok := cfg.Items[1].IsPlaceholder()
	require.True(t, ok)
	assert.Equal(t, "... | flat | api/**", rest)

	_, ok = first.IsPlaceholder()
	assert.False(t, ok)

	clone := cfg.Clone()
	clone.Items[0].Pairs[0].Key = "changed"
	assert.Equal(t, "Zeta", cfg.Items[0].Pairs[0].Key)
}

func TestRender(t *testing.T) {
	fs := makeFiles("index.md", "guides/g.md")
	n := BuildDefault(fs)
	n.Items = append(n.Items, NewLink("Repo", "https://example.com/repo"))

	out := Render(n, "site")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "site", lines[0])
	assert.Contains(t, out, "Home (index.md)")
	assert.Contains(t, out, "Guides/")
	assert.Contains(t, out, "G (guides/g.md)")
	assert.Contains(t, out, "Repo -> https://example.com/repo")
}
