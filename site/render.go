package site

import (
	"bytes"
	"html/template"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"github.com/marcovoc/awesomepages/files"
	"github.com/marcovoc/awesomepages/nav"
)

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
}

// source is a parsed page.
type source struct {
	file *files.File
	data []byte
	doc  ast.Node
}

func parseSource(md goldmark.Markdown, f *files.File, data []byte) *source {
	return &source{file: f, data: data, doc: md.Parser().Parse(text.NewReader(data))}
}

// title returns the text of the first level-one heading, if any.
func (s *source) title() string {
	var title string
	_ = ast.Walk(s.doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = plainText(h, s.data)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

// plainText concatenates the text segments below n.
func plainText(n ast.Node, data []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(data))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// rewriteLinks points links to other Markdown pages at their rendered output.
func (s *source) rewriteLinks(fs *files.Files) {
	_ = ast.Walk(s.doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		link, ok := n.(*ast.Link)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		if u, ok := pageLink(string(link.Destination), s.file, fs); ok {
			link.Destination = []byte(u)
		}
		return ast.WalkContinue, nil
	})
}

func pageLink(dest string, from *files.File, fs *files.Files) (string, bool) {
	if dest == "" || strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "#") || schemePrefix.MatchString(dest) {
		return "", false
	}
	fragment := ""
	if i := strings.IndexByte(dest, '#'); i >= 0 {
		dest, fragment = dest[:i], dest[i:]
	}
	target := fs.Get(path.Join(from.Dir(), dest))
	if target == nil || !target.IsDocumentationPage() {
		return "", false
	}
	return relativeURL(from.DestPath, target.URL) + fragment, true
}

// relativeURL returns the URL of the site-relative to as seen from the page
// written to fromDest.
func relativeURL(fromDest, to string) string {
	rel, err := filepath.Rel(filepath.FromSlash(path.Dir(fromDest)), filepath.FromSlash(to))
	if err != nil {
		return to
	}
	return filepath.ToSlash(rel)
}

// render returns the page body as HTML.
func (s *source) render(md goldmark.Markdown) (string, error) {
	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, s.data, s.doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// menuItem is a navigation entry as seen from one page.
type menuItem struct {
	Title    string
	URL      string
	Active   bool
	Children []menuItem
}

func menu(items []*nav.Item, current *files.File) []menuItem {
	out := make([]menuItem, 0, len(items))
	for _, it := range items {
		switch it.Kind {
		case nav.KindPage:
			out = append(out, menuItem{
				Title:  it.Title,
				URL:    relativeURL(current.DestPath, it.File.URL),
				Active: it.File == current,
			})
		case nav.KindLink:
			out = append(out, menuItem{Title: it.Title, URL: it.URL})
		case nav.KindSection:
			out = append(out, menuItem{Title: it.Title, Children: menu(it.Children, current)})
		case nav.KindPlaceholder:
		}
	}
	return out
}

var layout = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{if .Title}}{{.Title}} - {{end}}{{.SiteName}}</title>
</head>
<body>
<nav>{{template "menu" .Menu}}</nav>
<main>
{{.Content}}
</main>
</body>
</html>
{{define "menu"}}<ul>{{range .}}<li>{{if .URL}}<a href="{{.URL}}"{{if .Active}} class="active"{{end}}>{{.Title}}</a>{{else}}<span>{{.Title}}</span>{{template "menu" .Children}}{{end}}</li>{{end}}</ul>{{end}}
`))

type pageData struct {
	SiteName string
	Title    string
	Menu     []menuItem
	Content  template.HTML
}
