package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/marcovoc/awesomepages/internal/pathutil"
	"github.com/marcovoc/awesomepages/nav"
	"github.com/marcovoc/awesomepages/pageserrors"
)

// DefaultFilename is the configuration file looked up when none is given.
const DefaultFilename = "mkdocs.yml"

// Default directories, relative to the configuration file.
const (
	DefaultDocsDir = "docs"
	DefaultSiteDir = "site"
)

// Config is a site configuration.
type Config struct {
	// Path is the configuration file the values were read from, empty when
	// parsed from bytes.
	Path string

	SiteName string
	SiteURL  string

	// DocsDir and SiteDir are absolute.
	DocsDir string
	SiteDir string

	// Nav is the hand-written navigation, nil when the site uses the
	// navigation derived from the docs directory.
	Nav *nav.ConfigNode

	// Plugins lists the enabled plugins in configuration order.
	Plugins []PluginEntry

	// ExcludeDocs holds gitignore-style patterns of docs files to skip.
	ExcludeDocs []string
}

// PluginEntry is one element of the plugins list.
type PluginEntry struct {
	Name    string
	options *yaml.Node
}

// Decode decodes the plugin's options into v. A plugin listed without
// options leaves v untouched.
func (p PluginEntry) Decode(v any) error {
	if p.options == nil {
		return nil
	}
	if err := p.options.Decode(v); err != nil {
		return &pageserrors.ConfigError{Option: "plugins." + p.Name, Cause: err}
	}
	return nil
}

// Plugin returns the entry of the named plugin.
func (c *Config) Plugin(name string) (PluginEntry, bool) {
	for _, p := range c.Plugins {
		if p.Name == name {
			return p, true
		}
	}
	return PluginEntry{}, false
}

type rawConfig struct {
	SiteName    string          `yaml:"site_name"`
	SiteURL     string          `yaml:"site_url"`
	DocsDir     string          `yaml:"docs_dir"`
	SiteDir     string          `yaml:"site_dir"`
	Nav         *nav.ConfigNode `yaml:"nav"`
	Plugins     []yaml.Node     `yaml:"plugins"`
	ExcludeDocs string          `yaml:"exclude_docs"`
}

// Load reads and parses the configuration file at path. Relative
// directories are resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &pageserrors.ConfigError{Option: "config_file", Value: path, Cause: err}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolving %s: %w", path, err)
	}
	return Parse(data, abs)
}

// Parse decodes a configuration. path names the file for error messages and
// anchors relative directories; when empty, the working directory is used.
func Parse(data []byte, path string) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &pageserrors.ConfigError{Option: "config_file", Value: path, Cause: err}
	}

	if strings.TrimSpace(raw.SiteName) == "" {
		return nil, &pageserrors.ConfigError{Option: "site_name", Message: "is required"}
	}

	base := "."
	if path != "" {
		base = filepath.Dir(path)
	}
	docsDir, err := resolveDir(base, raw.DocsDir, DefaultDocsDir)
	if err != nil {
		return nil, err
	}
	siteDir, err := resolveDir(base, raw.SiteDir, DefaultSiteDir)
	if err != nil {
		return nil, err
	}
	if docsDir == siteDir {
		return nil, &pageserrors.ConfigError{Option: "site_dir", Value: raw.SiteDir, Message: "must differ from docs_dir"}
	}
	if pathutil.Within(siteDir, docsDir) {
		return nil, &pageserrors.ConfigError{Option: "docs_dir", Value: raw.DocsDir, Message: "must not be inside site_dir"}
	}
	if pathutil.Within(docsDir, siteDir) {
		return nil, &pageserrors.ConfigError{Option: "site_dir", Value: raw.SiteDir, Message: "must not be inside docs_dir"}
	}

	plugins, err := parsePlugins(raw.Plugins)
	if err != nil {
		return nil, err
	}

	return &Config{
		Path:        path,
		SiteName:    raw.SiteName,
		SiteURL:     raw.SiteURL,
		DocsDir:     docsDir,
		SiteDir:     siteDir,
		Nav:         raw.Nav,
		Plugins:     plugins,
		ExcludeDocs: excludeLines(raw.ExcludeDocs),
	}, nil
}

func resolveDir(base, dir, fallback string) (string, error) {
	if dir == "" {
		dir = fallback
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(base, dir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("config: resolving %s: %w", dir, err)
	}
	return abs, nil
}

// parsePlugins accepts both the bare name form and the single-key mapping
// form carrying options.
func parsePlugins(nodes []yaml.Node) ([]PluginEntry, error) {
	var out []PluginEntry
	for i := range nodes {
		n := &nodes[i]
		switch n.Kind {
		case yaml.ScalarNode:
			out = append(out, PluginEntry{Name: n.Value})
		case yaml.MappingNode:
			for j := 0; j+1 < len(n.Content); j += 2 {
				out = append(out, PluginEntry{Name: n.Content[j].Value, options: n.Content[j+1]})
			}
		default:
			return nil, &pageserrors.ConfigError{
				Option:  "plugins",
				Message: fmt.Sprintf("line %d: expected a plugin name or a mapping", n.Line),
			}
		}
	}
	return out, nil
}

func excludeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
