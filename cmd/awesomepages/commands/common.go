// Package commands provides CLI command handlers for awesomepages.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.yaml.in/yaml/v4"
	"golang.org/x/term"

	"github.com/marcovoc/awesomepages/config"
	"github.com/marcovoc/awesomepages/internal/severity"
	"github.com/marcovoc/awesomepages/nav"
	"github.com/marcovoc/awesomepages/plugin"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data in the specified format (json or yaml).
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	_, err = fmt.Fprintln(w, string(bytes))
	return err
}

// newLogger returns the logger for the -v and -q flags: debug when verbose,
// errors only when quiet, warnings otherwise. Records sent to a file or pipe
// are JSON lines.
func newLogger(w io.Writer, verbose, quiet bool) plugin.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	if redirected(w) {
		return plugin.NewSlogAdapter(slog.New(slog.NewJSONHandler(w, opts)))
	}
	return plugin.NewSlogAdapter(slog.New(slog.NewTextHandler(w, opts)))
}

// redirected reports whether w is an open file other than a terminal.
func redirected(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && !term.IsTerminal(int(f.Fd()))
}

// loadConfig loads the configuration file, defaulting to ./mkdocs.yml.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultFilename
	}
	return config.Load(path)
}

// NavEntry is the structured form of a navigation item.
type NavEntry struct {
	Title    string     `json:"title" yaml:"title"`
	Kind     string     `json:"kind" yaml:"kind"`
	Page     string     `json:"page,omitempty" yaml:"page,omitempty"`
	URL      string     `json:"url,omitempty" yaml:"url,omitempty"`
	Children []NavEntry `json:"children,omitempty" yaml:"children,omitempty"`
}

// NavEntries converts navigation items to their structured form.
func NavEntries(items []*nav.Item) []NavEntry {
	out := make([]NavEntry, 0, len(items))
	for _, it := range items {
		e := NavEntry{Title: it.Title, Kind: it.Kind.String()}
		switch it.Kind {
		case nav.KindPage:
			e.Page = it.File.SrcPath
			e.URL = it.File.URL
		case nav.KindLink:
			e.URL = it.URL
		case nav.KindSection:
			e.Children = NavEntries(it.Children)
		case nav.KindPlaceholder:
		}
		out = append(out, e)
	}
	return out
}

// NavReport is the structured output of the nav command.
type NavReport struct {
	Nav      []NavEntry     `json:"nav" yaml:"nav"`
	Warnings []WarningEntry `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// WarningEntry is the structured form of a build warning.
type WarningEntry struct {
	Category string            `json:"category" yaml:"category"`
	Severity severity.Severity `json:"severity" yaml:"severity"`
	Source   string            `json:"source,omitempty" yaml:"source,omitempty"`
	Message  string            `json:"message" yaml:"message"`
}

// WarningEntries converts build warnings to their structured form.
func WarningEntries(ws plugin.BuildWarnings) []WarningEntry {
	out := make([]WarningEntry, 0, len(ws))
	for _, w := range ws {
		out = append(out, WarningEntry{
			Category: string(w.Category),
			Severity: w.Severity,
			Source:   w.Source,
			Message:  w.Message,
		})
	}
	return out
}
