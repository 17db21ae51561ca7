// Package cliutil provides output helpers for the command-line tool.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteList writes heading and one indented line per item. Nothing is
// written for an empty list.
func WriteList[T fmt.Stringer](w io.Writer, heading string, items []T) {
	if len(items) == 0 {
		return
	}
	Writef(w, "%s (%d):\n", heading, len(items))
	for _, it := range items {
		Writef(w, "  - %s\n", it)
	}
}

// Strings adapts plain strings to WriteList.
type Strings []string

// Items returns the strings as list items.
func (s Strings) Items() []Item {
	out := make([]Item, len(s))
	for i, v := range s {
		out[i] = Item(v)
	}
	return out
}

// Item is a list item printed as is.
type Item string

// String implements fmt.Stringer.
func (i Item) String() string { return string(i) }
