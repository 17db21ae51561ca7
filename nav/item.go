package nav

import (
	"fmt"

	"github.com/marcovoc/awesomepages/files"
)

// Kind discriminates navigation items.
type Kind int

const (
	// KindPage is a documentation page.
	KindPage Kind = iota
	// KindSection groups child items under a title.
	KindSection
	// KindLink points at a URL outside the page set.
	KindLink
	// KindPlaceholder marks where a rest block will be inserted. Placeholders
	// only exist inside a Draft.
	KindPlaceholder
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindSection:
		return "section"
	case KindLink:
		return "link"
	case KindPlaceholder:
		return "placeholder"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Item is a navigation node. Which fields are meaningful depends on Kind.
type Item struct {
	Kind  Kind
	Title string

	// File is the page source (KindPage).
	File *files.File
	// URL is the link target (KindLink).
	URL string
	// Children are the items of a section (KindSection).
	Children []*Item
	// Dir is the slash-separated source directory a section was built from,
	// empty for sections written by hand in the nav configuration.
	Dir string
	// Rest is the rest entry a placeholder stands for (KindPlaceholder).
	Rest string
}

// NewPage returns a page item.
func NewPage(title string, f *files.File) *Item {
	return &Item{Kind: KindPage, Title: title, File: f}
}

// NewSection returns a section item built from the source directory dir.
func NewSection(title, dir string, children []*Item) *Item {
	return &Item{Kind: KindSection, Title: title, Dir: dir, Children: children}
}

// NewLink returns a link item.
func NewLink(title, url string) *Item {
	return &Item{Kind: KindLink, Title: title, URL: url}
}

func newPlaceholder(rest string) *Item {
	return &Item{Kind: KindPlaceholder, Title: RestPlaceholder, Rest: rest}
}

// String describes the item for logs.
func (it *Item) String() string {
	switch it.Kind {
	case KindPage:
		return fmt.Sprintf("Page(title=%q, src=%q)", it.Title, it.File.SrcPath)
	case KindSection:
		return fmt.Sprintf("Section(title=%q, children=%d)", it.Title, len(it.Children))
	case KindLink:
		return fmt.Sprintf("Link(title=%q, url=%q)", it.Title, it.URL)
	case KindPlaceholder:
		return fmt.Sprintf("Placeholder(%q)", it.Rest)
	default:
		return it.Kind.String()
	}
}

// Navigation is a finished navigation tree. It never contains placeholders.
type Navigation struct {
	Items []*Item
}

// Pages returns every page in depth-first order.
func (n *Navigation) Pages() []*Item {
	var out []*Item
	Walk(n.Items, func(it *Item) {
		if it.Kind == KindPage {
			out = append(out, it)
		}
	})
	return out
}

// Sections returns every section in depth-first order.
func (n *Navigation) Sections() []*Item {
	var out []*Item
	Walk(n.Items, func(it *Item) {
		if it.Kind == KindSection {
			out = append(out, it)
		}
	})
	return out
}

// Draft is a navigation tree that may still contain placeholders.
type Draft struct {
	Items []*Item
}

// Pages returns every page of the draft in depth-first order.
func (d *Draft) Pages() []*Item {
	var out []*Item
	Walk(d.Items, func(it *Item) {
		if it.Kind == KindPage {
			out = append(out, it)
		}
	})
	return out
}

// Sections returns every section of the draft in depth-first order.
func (d *Draft) Sections() []*Item {
	var out []*Item
	Walk(d.Items, func(it *Item) {
		if it.Kind == KindSection {
			out = append(out, it)
		}
	})
	return out
}

// Finalize converts a draft without placeholders into a Navigation.
func Finalize(d *Draft) (*Navigation, error) {
	var found *Item
	Walk(d.Items, func(it *Item) {
		if found == nil && it.Kind == KindPlaceholder {
			found = it
		}
	})
	if found != nil {
		return nil, fmt.Errorf("nav: unresolved rest placeholder %q", found.Rest)
	}
	return &Navigation{Items: d.Items}, nil
}

// Walk calls fn for every item in depth-first pre-order.
func Walk(items []*Item, fn func(*Item)) {
	for _, it := range items {
		fn(it)
		if it.Kind == KindSection {
			Walk(it.Children, fn)
		}
	}
}

// Filter returns items without those drop reports, at any depth. Sections
// stay in place even when all their children are dropped.
func Filter(items []*Item, drop func(*Item) bool) []*Item {
	out := make([]*Item, 0, len(items))
	for _, it := range items {
		if drop(it) {
			continue
		}
		if it.Kind == KindSection {
			it.Children = Filter(it.Children, drop)
		}
		out = append(out, it)
	}
	return out
}
