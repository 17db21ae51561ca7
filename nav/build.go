package nav

import (
	"fmt"
	"path"
	"strings"

	"github.com/marcovoc/awesomepages/files"
	"github.com/marcovoc/awesomepages/meta"
)

// BuildDefault builds the unconstrained navigation: one page per
// documentation file in discovery order, nested in one section per directory.
func BuildDefault(fs *files.Files) *Navigation {
	var root []*Item
	sections := make(map[string]*Item)

	// sectionFor returns the section of dir, creating it and its ancestors.
	var sectionFor func(dir string) *Item
	sectionFor = func(dir string) *Item {
		if s, ok := sections[dir]; ok {
			return s
		}
		s := NewSection(TitleFromName(path.Base(dir), false), dir, nil)
		sections[dir] = s
		if parent := path.Dir(dir); parent == "." {
			root = append(root, s)
		} else {
			p := sectionFor(parent)
			p.Children = append(p.Children, s)
		}
		return s
	}

	for _, f := range fs.DocumentationPages() {
		page := NewPage(PageTitle(f), f)
		if dir := f.Dir(); dir == "." {
			root = append(root, page)
		} else {
			s := sectionFor(dir)
			s.Children = append(s.Children, page)
		}
	}

	return &Navigation{Items: root}
}

// FromConfig builds the hand-written navigation from a nav configuration.
// Placeholder mappings become placeholder items. Entries that name neither a
// known file nor a URL become links and are returned as unresolved.
func FromConfig(cfg *ConfigNode, fs *files.Files) (*Draft, []string, error) {
	return FromConfigExcluding(cfg, fs, nil)
}

// FromConfigExcluding is FromConfig for a build that removed the pages in
// excluded, keyed by source path. Entries naming them produce no item and
// are not unresolved.
func FromConfigExcluding(cfg *ConfigNode, fs *files.Files, excluded map[string]bool) (*Draft, []string, error) {
	b := &configBuilder{files: fs, excluded: excluded}
	var items []*Item
	var err error
	switch cfg.Kind {
	case ConfigSequence:
		items, err = b.sequence(cfg)
	default:
		items, err = b.entry(cfg)
	}
	if err != nil {
		return nil, nil, err
	}
	return &Draft{Items: items}, b.unresolved, nil
}

type configBuilder struct {
	files      *files.Files
	excluded   map[string]bool
	unresolved []string
}

func (b *configBuilder) sequence(n *ConfigNode) ([]*Item, error) {
	var items []*Item
	for _, child := range n.Items {
		if child.Kind == ConfigSequence {
			return nil, fmt.Errorf("nav: nested list without a section title")
		}
		got, err := b.entry(child)
		if err != nil {
			return nil, err
		}
		items = append(items, got...)
	}
	return items, nil
}

func (b *configBuilder) entry(n *ConfigNode) ([]*Item, error) {
	switch n.Kind {
	case ConfigScalar:
		return b.leaf("", n.Value), nil
	case ConfigMapping:
		if rest, ok := n.IsPlaceholder(); ok {
			return []*Item{newPlaceholder(rest)}, nil
		}
		var items []*Item
		for _, p := range n.Pairs {
			switch p.Value.Kind {
			case ConfigScalar:
				items = append(items, b.leaf(p.Key, p.Value.Value)...)
			case ConfigSequence:
				children, err := b.sequence(p.Value)
				if err != nil {
					return nil, err
				}
				items = append(items, NewSection(p.Key, "", children))
			case ConfigMapping:
				children, err := b.entry(p.Value)
				if err != nil {
					return nil, err
				}
				items = append(items, NewSection(p.Key, "", children))
			}
		}
		return items, nil
	case ConfigSequence:
		return b.sequence(n)
	}
	return nil, fmt.Errorf("nav: unsupported configuration node")
}

func (b *configBuilder) leaf(title, value string) []*Item {
	src := strings.TrimPrefix(path.Clean(strings.TrimSpace(value)), "./")
	if f := b.files.Get(src); f != nil {
		if f.IsDocumentationPage() {
			if title == "" {
				title = PageTitle(f)
			}
			return []*Item{NewPage(title, f)}
		}
		if title == "" {
			title = f.Name()
		}
		return []*Item{NewLink(title, f.URL)}
	}
	if b.excluded[src] {
		return nil
	}
	if !meta.IsLink(value) {
		b.unresolved = append(b.unresolved, value)
	}
	if title == "" {
		title = value
	}
	return []*Item{NewLink(title, value)}
}
