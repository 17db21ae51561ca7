package nav

import (
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/marcovoc/awesomepages/files"
	"github.com/marcovoc/awesomepages/meta"
	"github.com/marcovoc/awesomepages/pageserrors"
)

// MetaSource loads the metadata of an absolute directory path; nil means the
// directory has none.
type MetaSource interface {
	Load(dir string) (*meta.DirectoryMeta, error)
}

// ArrangeOptions configures Arrange.
type ArrangeOptions struct {
	// Meta loads directory metadata.
	Meta MetaSource
	// DocsDir is the absolute docs directory section directories are relative to.
	DocsDir string
	// Files is the current file set; entries naming a file that exists but is
	// placed elsewhere are skipped silently.
	Files *files.Files
	// CollapseSinglePages is the site-wide default for collapsing.
	CollapseSinglePages bool
	// Strict turns unresolvable metadata entries into errors.
	Strict bool
	// Skip holds hand-written sections; they keep their children's order and title.
	Skip map[*Item]bool
	// ArrangeRoot applies the docs directory's own metadata to the top level.
	ArrangeRoot bool
	// Warn receives the anomalies tolerated outside strict mode.
	Warn func(err *pageserrors.NavEntryError)
}

// Arrange applies directory metadata to every section built from a
// directory: titles, ordering, nav lists, hiding and single-child collapsing.
// The tree is rearranged in place and returned.
func Arrange(n *Navigation, opts ArrangeOptions) (*Navigation, error) {
	a := &arranger{opts: opts, aliases: make(map[*Item]string)}

	var rootMeta *meta.DirectoryMeta
	collapse := opts.CollapseSinglePages
	if opts.ArrangeRoot {
		m, err := a.load(".")
		if err != nil {
			return nil, err
		}
		rootMeta = m
		if m != nil && m.CollapseSinglePages != nil {
			collapse = *m.CollapseSinglePages
		}
	}

	items, err := a.items(n.Items, ".", rootMeta, collapse)
	if err != nil {
		return nil, err
	}
	n.Items = items
	return n, nil
}

type arranger struct {
	opts ArrangeOptions
	// aliases keeps the directory name of collapsed sections for their
	// remaining child, so the parent's nav list can still reference it.
	aliases map[*Item]string
}

func (a *arranger) load(dir string) (*meta.DirectoryMeta, error) {
	if a.opts.Meta == nil {
		return nil, nil
	}
	return a.opts.Meta.Load(filepath.Join(a.opts.DocsDir, filepath.FromSlash(dir)))
}

func (a *arranger) items(items []*Item, dir string, m *meta.DirectoryMeta, collapse bool) ([]*Item, error) {
	out := make([]*Item, 0, len(items))
	for _, it := range items {
		if it.Kind != KindSection {
			out = append(out, it)
			continue
		}
		s, keep, err := a.section(it, collapse)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, s)
		}
	}

	if m == nil {
		return out, nil
	}
	out = orderItems(out, m.Order)
	return a.applyNav(out, dir, m)
}

func (a *arranger) section(s *Item, inherited bool) (*Item, bool, error) {
	if a.opts.Skip[s] || s.Dir == "" {
		children, err := a.items(s.Children, "", nil, inherited)
		if err != nil {
			return nil, false, err
		}
		s.Children = children
		return s, true, nil
	}

	m, err := a.load(s.Dir)
	if err != nil {
		return nil, false, err
	}
	if m != nil && m.Hide {
		return nil, false, nil
	}

	collapseSingle := inherited
	if m != nil && m.CollapseSinglePages != nil {
		collapseSingle = *m.CollapseSinglePages
	}

	children, err := a.items(s.Children, s.Dir, m, collapseSingle)
	if err != nil {
		return nil, false, err
	}
	s.Children = children
	if len(children) == 0 {
		return nil, false, nil
	}
	if m != nil && m.Title != "" {
		s.Title = m.Title
	}

	collapse := collapseSingle
	if m != nil && m.Collapse != nil {
		collapse = *m.Collapse
	}
	if collapse && len(children) == 1 {
		a.aliases[children[0]] = path.Base(s.Dir)
		return children[0], true, nil
	}
	return s, true, nil
}

// applyNav reorders items after the directory's nav list. Items the list
// neither names nor captures with a rest entry are dropped.
func (a *arranger) applyNav(items []*Item, dir string, m *meta.DirectoryMeta) ([]*Item, error) {
	if !m.HasNav() {
		return items, nil
	}

	byName := make(map[string]*Item, len(items))
	for _, it := range items {
		if name := itemName(it); name != "" {
			byName[name] = it
		}
		if alias, ok := a.aliases[it]; ok {
			byName[alias] = it
		}
	}

	// Named entries claim their items first so rest entries only see the
	// items the list does not mention.
	used := make(map[*Item]bool, len(items))
	for _, e := range m.Nav {
		switch e.Kind {
		case meta.EntryName, meta.EntryTitled, meta.EntryCondition:
			if it, ok := byName[e.Name]; ok {
				used[it] = true
			}
		}
	}

	out := make([]*Item, 0, len(items))
	for _, e := range m.Nav {
		switch e.Kind {
		case meta.EntryName, meta.EntryTitled, meta.EntryCondition:
			it, ok := byName[e.Name]
			if !ok {
				if err := a.missing(e, dir, m); err != nil {
					return nil, err
				}
				continue
			}
			if e.Title != "" {
				it.Title = e.Title
			}
			out = append(out, it)
		case meta.EntryLink:
			out = append(out, NewLink(e.Title, e.URL))
		case meta.EntryRest:
			for _, it := range items {
				if used[it] || !e.Rest.Matches(itemPath(it)) {
					continue
				}
				used[it] = true
				if e.Rest.Flat && it.Kind == KindSection {
					out = append(out, flatten(it.Children)...)
				} else {
					out = append(out, it)
				}
			}
		}
	}
	return out, nil
}

func (a *arranger) missing(e meta.NavEntry, dir string, m *meta.DirectoryMeta) error {
	if e.Kind == meta.EntryCondition {
		return nil
	}
	if a.exists(path.Join(dir, e.Name)) {
		return nil
	}
	err := &pageserrors.NavEntryError{Entry: e.Name, Source: m.Path}
	if a.opts.Strict {
		return err
	}
	if a.opts.Warn != nil {
		a.opts.Warn(err)
	}
	return nil
}

// exists reports whether srcPath names a file or a directory of the file set.
func (a *arranger) exists(srcPath string) bool {
	if a.opts.Files == nil {
		return false
	}
	if a.opts.Files.Contains(srcPath) {
		return true
	}
	prefix := srcPath + "/"
	for _, f := range a.opts.Files.All() {
		if strings.HasPrefix(f.SrcPath, prefix) {
			return true
		}
	}
	return false
}

// itemName is the name a nav list uses to reference it.
func itemName(it *Item) string {
	switch it.Kind {
	case KindPage:
		return it.File.Name()
	case KindSection:
		if it.Dir != "" {
			return path.Base(it.Dir)
		}
	}
	return ""
}

// itemPath is the docs-relative path rest patterns are matched against.
func itemPath(it *Item) string {
	switch it.Kind {
	case KindPage:
		return it.File.SrcPath
	case KindSection:
		return it.Dir
	case KindLink:
		return it.URL
	}
	return ""
}

func flatten(items []*Item) []*Item {
	var out []*Item
	for _, it := range items {
		if it.Kind == KindSection {
			out = append(out, flatten(it.Children)...)
		} else {
			out = append(out, it)
		}
	}
	return out
}

func orderItems(items []*Item, order string) []*Item {
	if order != meta.OrderAsc && order != meta.OrderDesc {
		return items
	}
	key := func(it *Item) string {
		if name := itemName(it); name != "" {
			return strings.ToLower(name)
		}
		return strings.ToLower(it.Title)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if order == meta.OrderDesc {
			return key(items[i]) > key(items[j])
		}
		return key(items[i]) < key(items[j])
	})
	return items
}
