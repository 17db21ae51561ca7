package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcovoc/awesomepages/files"
	"github.com/marcovoc/awesomepages/nav"
)

func testFiles(paths ...string) *files.Files {
	fs := files.New()
	for _, p := range paths {
		fs.Add(files.NewFile(p, "/docs", "/site"))
	}
	return fs
}

func TestSourceTitle(t *testing.T) {
	md := newMarkdown()
	f := files.NewFile("a.md", "/docs", "/site")

	tests := []struct {
		name string
		data string
		want string
	}{
		{"atx", "# Getting *started*\n\nbody", "Getting started"},
		{"setext", "Overview\n========\n", "Overview"},
		{"first level one only", "## Sub\n\n# Main\n\n# Second\n", "Main"},
		{"code span", "# The `nav` key\n", "The nav key"},
		{"none", "## Only a subheading\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSource(md, f, []byte(tt.data)).title())
		})
	}
}

func TestPageLink(t *testing.T) {
	fs := testFiles("index.md", "guide/index.md", "guide/setup.md", "guide/img.png", "api/README.md")
	from := fs.Get("guide/setup.md")

	tests := []struct {
		dest string
		want string
		ok   bool
	}{
		{"index.md", "index.html", true},
		{"../index.md", "../index.html", true},
		{"../api/README.md#usage", "../api/index.html#usage", true},
		{"./setup.md", "setup.html", true},
		{"img.png", "", false},
		{"missing.md", "", false},
		{"https://example.com/x.md", "", false},
		{"/index.md", "", false},
		{"#anchor", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.dest, func(t *testing.T) {
			got, ok := pageLink(tt.dest, from, fs)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelativeURL(t *testing.T) {
	assert.Equal(t, "b.html", relativeURL("a.html", "b.html"))
	assert.Equal(t, "../b.html", relativeURL("x/a.html", "b.html"))
	assert.Equal(t, "y/c.png", relativeURL("a.html", "y/c.png"))
	assert.Equal(t, "../../z/index.html", relativeURL("x/y/a.html", "z/index.html"))
}

func TestMenu(t *testing.T) {
	fs := testFiles("index.md", "guide/a.md")
	n := nav.BuildDefault(fs)
	n.Items = append(n.Items, nav.NewLink("Repo", "https://example.com"))

	items := menu(n.Items, fs.Get("guide/a.md"))
	require.Len(t, items, 3)
	assert.Equal(t, menuItem{Title: "Home", URL: "../index.html"}, items[0])
	assert.Equal(t, "Guide", items[1].Title)
	assert.Empty(t, items[1].URL)
	assert.Equal(t, []menuItem{{Title: "A", URL: "a.html", Active: true}}, items[1].Children)
	assert.Equal(t, "https://example.com", items[2].URL)
}

func TestLayout(t *testing.T) {
	var sb strings.Builder
	err := layout.Execute(&sb, pageData{
		SiteName: "Docs & Co",
		Title:    "Intro",
		Menu: []menuItem{
			{Title: "Intro", URL: "index.html", Active: true},
			{Title: "Guide", Children: []menuItem{{Title: "Setup", URL: "guide/setup.html"}}},
		},
		Content: "<p>body</p>",
	})
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "<title>Intro - Docs &amp; Co</title>")
	assert.Contains(t, out, `<li><a href="index.html" class="active">Intro</a></li>`)
	assert.Contains(t, out, `<li><span>Guide</span><ul><li><a href="guide/setup.html">Setup</a></li></ul></li>`)
	assert.Contains(t, out, "<main>\n<p>body</p>\n</main>")
}
