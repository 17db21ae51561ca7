package meta

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PatternType selects how a rest item's pattern is matched.
type PatternType string

const (
	// PatternGlob matches with doublestar glob semantics; "**" crosses
	// directories. A pattern with no slash that starts with "*" matches in
	// any directory, so "*.md" also matches "sub/nested.md".
	PatternGlob PatternType = "glob"
	// PatternRegex matches with an unanchored regular expression search.
	PatternRegex PatternType = "regex"
)

// restSyntax recognizes "...", "... | flat", "... | <pattern>", "... | glob=<pattern>",
// "... | regex=<pattern>" and "... | flat | <pattern>".
var restSyntax = regexp.MustCompile(`^\.{3}\s*(?:\|\s*(flat)\s*)?(?:\|\s*(?:(regex|glob)=)?(.*))?$`)

// RestItem is a wildcard navigation entry that expands to every page matching
// its pattern that is not placed anywhere else.
//
// Two rest items are the same item when their patterns are equal; flatness
// does not take part in identity.
type RestItem struct {
	// Value is the entry as written, e.g. "... | flat | guides/**".
	Value string
	// Pattern is the pattern text; empty matches every page.
	Pattern string
	// PatternType is the pattern syntax.
	PatternType PatternType
	// Flat inserts matches without their enclosing sections.
	Flat bool

	re   *regexp.Regexp
	glob string
}

// IsRest reports whether s uses the rest entry syntax.
func IsRest(s string) bool {
	return restSyntax.MatchString(strings.TrimSpace(s))
}

// ParseRestItem parses a rest entry. Invalid glob or regex patterns are errors.
func ParseRestItem(value string) (*RestItem, error) {
	value = strings.TrimSpace(value)
	m := restSyntax.FindStringSubmatch(value)
	if m == nil {
		return nil, fmt.Errorf("meta: %q is not a rest entry", value)
	}

	item := &RestItem{
		Value:       value,
		Flat:        m[1] != "",
		PatternType: PatternGlob,
		Pattern:     strings.TrimSpace(m[3]),
	}
	if m[2] != "" {
		item.PatternType = PatternType(m[2])
	}

	switch item.PatternType {
	case PatternRegex:
		re, err := regexp.Compile(item.Pattern)
		if err != nil {
			return nil, fmt.Errorf("meta: rest entry %q: invalid regex: %w", value, err)
		}
		item.re = re
	case PatternGlob:
		if item.Pattern != "" && !doublestar.ValidatePattern(item.Pattern) {
			return nil, fmt.Errorf("meta: rest entry %q: invalid glob pattern", value)
		}
		item.glob = item.Pattern
		if strings.HasPrefix(item.Pattern, "*") && !strings.Contains(item.Pattern, "/") {
			item.glob = "**/" + item.Pattern
		}
	}

	return item, nil
}

// Key is the identity of the item; equal keys mean duplicate items.
func (r *RestItem) Key() string {
	return string(r.PatternType) + ":" + r.Pattern
}

// Equal reports whether r and other have the same pattern.
func (r *RestItem) Equal(other *RestItem) bool {
	return other != nil && r.Key() == other.Key()
}

// Matches reports whether the slash-separated, docs-relative path matches.
func (r *RestItem) Matches(path string) bool {
	if r.Pattern == "" {
		return true
	}
	if r.re != nil {
		return r.re.MatchString(path)
	}
	ok, err := doublestar.Match(r.glob, path)
	return err == nil && ok
}

// String returns the entry as written.
func (r *RestItem) String() string {
	return r.Value
}
