package plugin

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanReferences(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   []string
	}{
		{"none", `<p>plain text</p>`, nil},
		{"image", `<img src="img/a.png" alt="A">`, []string{"img/a.png"}},
		{"anchor single quotes", `<a href='files/report.pdf'>report</a>`, []string{"files/report.pdf"}},
		{"unquoted", `<a href=data.csv>data</a>`, []string{"data.csv"}},
		{"uppercase tag", `<IMG SRC="Logo.PNG">`, []string{"Logo.PNG"}},
		{"quoted bracket", `<img alt="1 > 0" src="x.png">`, []string{"x.png"}},
		{"entities", `<a href="a&amp;b.txt">x</a>`, []string{"a&b.txt"}},
		{"multiline tag", "<img\n  class=\"wide\"\n  src=\"wide.png\"\n>", []string{"wide.png"}},
		{"srcset", `<img src="s.png" srcset="m.png 2x, l.png 3x">`, []string{"s.png", "m.png", "l.png"}},
		{"other tags ignored", `<script src="app.js"></script><link href="style.css">`, nil},
		{"abbr is not a", `<abbr href="nope.txt">x</abbr>`, nil},
		{"stray apostrophe", `<a href=x.pdf title=Bob's>Bob</a>`, []string{"x.pdf"}},
		{"stray apostrophe before quoted tag", `<a href=x.pdf title=Bob's>x</a><img src='y.png'>`, []string{"x.pdf", "y.png"}},
		{"stray double quote", `<img alt=5" src=z.png>`, []string{"z.png"}},
		{"document order", `<a href="1.txt"></a><img src="2.png"><a href="3.txt"></a>`, []string{"1.txt", "2.png", "3.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScanReferences(tt.markup))
		})
	}
}

func TestResolveReference(t *testing.T) {
	site := filepath.FromSlash("/site")
	page := filepath.Join(site, "guide")

	tests := []struct {
		target string
		want   string
		ok     bool
	}{
		{"diagram.png", "/site/guide/diagram.png", true},
		{"./img/a.png", "/site/guide/img/a.png", true},
		{"../logo.png", "/site/logo.png", true},
		{"/assets/x.png", "/site/assets/x.png", true},
		{"img/a%20b.png", "/site/guide/img/a b.png", true},
		{"file.zip?v=2", "/site/guide/file.zip", true},
		{"notes.txt#part", "/site/guide/notes.txt", true},
		{"other.html", "", false},
		{"other.HTML#top", "", false},
		{"#top", "", false},
		{"", "", false},
		{"https://example.com/a.png", "", false},
		{"mailto:me@example.com", "", false},
		{"//cdn.example.com/a.png", "", false},
		{"bad%zzescape.png", "", false},
		{"?only-query", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got, ok := ResolveReference(tt.target, page, site)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, filepath.FromSlash(tt.want), got)
			}
		})
	}
}
