package meta

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/marcovoc/awesomepages/internal/envcond"
	"github.com/marcovoc/awesomepages/pageserrors"
)

// DefaultFilename is the name of the per-directory metadata file.
const DefaultFilename = ".pages"

// Order values accepted by the "order" key.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// EntryKind discriminates the entries of a metadata nav list.
type EntryKind int

const (
	// EntryName references a page or subdirectory by file name.
	EntryName EntryKind = iota
	// EntryTitled references a page or subdirectory and overrides its title.
	EntryTitled
	// EntryLink is an external link.
	EntryLink
	// EntryRest collects the remaining children matching a pattern.
	EntryRest
	// EntryCondition references a page that is only shown when a condition holds.
	EntryCondition
)

// NavEntry is one entry of a directory's nav list.
type NavEntry struct {
	Kind EntryKind
	// Name is the referenced file or directory name (EntryName, EntryTitled, EntryCondition).
	Name string
	// Title overrides the displayed title; for EntryLink it is the link text.
	Title string
	// URL is the link target (EntryLink).
	URL string
	// Rest is the parsed rest item (EntryRest).
	Rest *RestItem
	// Condition is the visibility expression (EntryCondition).
	Condition *envcond.Condition
}

// DirectoryMeta is the decoded content of a directory's metadata file.
type DirectoryMeta struct {
	// Path is the metadata file the values were read from.
	Path string

	Title string
	Nav   []NavEntry
	Order string
	Hide  bool

	// Collapse collapses this directory's section when it has a single child.
	Collapse *bool
	// CollapseSinglePages is inherited by subdirectories.
	CollapseSinglePages *bool
	// FilterNotReferenced flags the directory for unreferenced asset pruning.
	FilterNotReferenced bool
}

type rawMeta struct {
	Title               string    `yaml:"title"`
	Nav                 yaml.Node `yaml:"nav"`
	Arrange             yaml.Node `yaml:"arrange"`
	Order               string    `yaml:"order"`
	Hide                bool      `yaml:"hide"`
	Collapse            *bool     `yaml:"collapse"`
	CollapseSinglePages *bool     `yaml:"collapse_single_pages"`
	FilterNotReferenced bool      `yaml:"filter_not_referenced"`
}

// Parse decodes metadata from YAML. path is only used in error messages.
func Parse(data []byte, path string) (*DirectoryMeta, error) {
	var raw rawMeta
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &pageserrors.MetaError{Path: path, Cause: err}
	}

	m := &DirectoryMeta{
		Path:                path,
		Title:               raw.Title,
		Order:               strings.ToLower(strings.TrimSpace(raw.Order)),
		Hide:                raw.Hide,
		Collapse:            raw.Collapse,
		CollapseSinglePages: raw.CollapseSinglePages,
		FilterNotReferenced: raw.FilterNotReferenced,
	}

	switch m.Order {
	case "", OrderAsc, OrderDesc:
	default:
		return nil, &pageserrors.MetaError{Path: path, Message: fmt.Sprintf("order must be %q or %q, got %q", OrderAsc, OrderDesc, raw.Order)}
	}

	navNode := &raw.Nav
	if navNode.Kind == 0 {
		navNode = &raw.Arrange
	}
	if navNode.Kind != 0 {
		entries, err := parseNav(navNode)
		if err != nil {
			return nil, &pageserrors.MetaError{Path: path, Message: "invalid nav", Cause: err}
		}
		m.Nav = entries
	}

	return m, nil
}

// TryLoadFrom reads and parses the metadata file at path. A missing or
// unreadable file yields (nil, nil); only malformed content is an error.
func TryLoadFrom(path string) (*DirectoryMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil
	}
	return Parse(data, path)
}

// HasNav reports whether the metadata declares an explicit nav list.
func (m *DirectoryMeta) HasNav() bool {
	return m != nil && m.Nav != nil
}

// ConditionFor returns the visibility condition declared for filename,
// compared case-insensitively, or nil when none is declared.
func (m *DirectoryMeta) ConditionFor(filename string) *NavEntry {
	if m == nil {
		return nil
	}
	for i := range m.Nav {
		e := &m.Nav[i]
		if e.Kind == EntryCondition && strings.EqualFold(e.Name, filename) {
			return e
		}
	}
	return nil
}

func parseNav(node *yaml.Node) ([]NavEntry, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: nav must be a list", node.Line)
	}

	entries := make([]NavEntry, 0, len(node.Content))
	for _, item := range node.Content {
		entry, err := parseEntry(item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseEntry(node *yaml.Node) (NavEntry, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if IsRest(node.Value) {
			rest, err := ParseRestItem(node.Value)
			if err != nil {
				return NavEntry{}, err
			}
			return NavEntry{Kind: EntryRest, Rest: rest}, nil
		}
		return NavEntry{Kind: EntryName, Name: node.Value}, nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return NavEntry{}, fmt.Errorf("line %d: nav entry must have exactly one key", node.Line)
		}
		key, value := node.Content[0].Value, node.Content[1]
		switch value.Kind {
		case yaml.ScalarNode:
			if IsLink(value.Value) {
				return NavEntry{Kind: EntryLink, Title: key, URL: value.Value}, nil
			}
			return NavEntry{Kind: EntryTitled, Title: key, Name: value.Value}, nil
		case yaml.MappingNode:
			return parseCondition(key, value)
		}
		return NavEntry{}, fmt.Errorf("line %d: unsupported value for nav entry %q", value.Line, key)
	}

	return NavEntry{}, fmt.Errorf("line %d: unsupported nav entry", node.Line)
}

func parseCondition(name string, node *yaml.Node) (NavEntry, error) {
	var opts struct {
		If    string `yaml:"if"`
		Title string `yaml:"title"`
	}
	if err := node.Decode(&opts); err != nil {
		return NavEntry{}, fmt.Errorf("line %d: %w", node.Line, err)
	}
	if strings.TrimSpace(opts.If) == "" {
		return NavEntry{}, fmt.Errorf("line %d: entry %q needs an \"if\" condition", node.Line, name)
	}
	cond, err := envcond.Parse(opts.If)
	if err != nil {
		return NavEntry{}, fmt.Errorf("line %d: %w", node.Line, err)
	}
	return NavEntry{Kind: EntryCondition, Name: name, Title: opts.Title, Condition: cond}, nil
}

// IsLink reports whether s is an external or site-absolute URL rather than a
// docs-relative file name.
func IsLink(s string) bool {
	return strings.Contains(s, "://") || strings.HasPrefix(s, "/") ||
		strings.HasPrefix(s, "mailto:") || strings.HasPrefix(s, "#")
}
