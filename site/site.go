package site

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/marcovoc/awesomepages/config"
	"github.com/marcovoc/awesomepages/files"
	"github.com/marcovoc/awesomepages/nav"
	"github.com/marcovoc/awesomepages/plugin"
)

// Result describes a finished build.
type Result struct {
	// Navigation is the navigation the pages were rendered with.
	Navigation *nav.Navigation
	// Pages are the site-relative paths of the rendered pages.
	Pages []string
	// StaticFiles are the site-relative paths of the copied static files.
	StaticFiles []string
	// DeletedFiles are the pages removed by their visibility condition.
	DeletedFiles []string
	// PrunedFiles are the absolute paths of the unreferenced files deleted
	// after the build.
	PrunedFiles []string
	// Warnings are the non-fatal issues the plugin recorded.
	Warnings plugin.BuildWarnings
	// Duration is the wall time of the build.
	Duration time.Duration
}

// listedPlugin is a plugin named in the configuration that this host does
// not implement. It has no hooks.
type listedPlugin string

func (p listedPlugin) Name() string { return string(p) }

// BuildFile loads the configuration at path and builds the site.
func BuildFile(ctx context.Context, path string, opts ...Option) (*Result, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return Build(ctx, cfg, opts...)
}

// Build renders the documentation of cfg into its site directory, running
// the awesome-pages hooks at the points a site generator would. The site
// directory is emptied first.
func Build(ctx context.Context, cfg *config.Config, opts ...Option) (*Result, error) {
	start := time.Now()
	bc, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("site: invalid options: %w", err)
	}
	b, err := prepare(ctx, cfg, bc)
	if err != nil {
		bc.metrics.observe(nil, err)
		return nil, err
	}
	res, err := b.run(ctx, cfg, start)
	bc.metrics.observe(res, err)
	return res, err
}

func (b *build) run(ctx context.Context, cfg *config.Config, start time.Time) (*Result, error) {
	s, p, fs, n := b.state, b.plugin, b.files, b.nav

	if err := os.RemoveAll(cfg.SiteDir); err != nil {
		return nil, fmt.Errorf("site: cleaning %s: %w", cfg.SiteDir, err)
	}

	result := &Result{Navigation: n}
	var docs []searchDoc
	for _, src := range b.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		src.rewriteLinks(fs)
		body, err := src.render(b.md)
		if err != nil {
			return nil, fmt.Errorf("site: rendering %s: %w", src.file.SrcPath, err)
		}
		if body, err = p.OnPageContent(s, body, src.file); err != nil {
			return nil, err
		}
		if err := writePage(cfg, n, src.file, body); err != nil {
			return nil, err
		}
		result.Pages = append(result.Pages, src.file.DestPath)
		docs = append(docs, searchDoc{
			Location: src.file.URL,
			Title:    nav.PageTitle(src.file),
			Text:     plainText(src.doc, src.data),
		})
		b.logger.Debug("page written", "page", src.file.SrcPath, "dest", src.file.DestPath)
	}

	static := fs.StaticFiles()
	if err := copyStatic(ctx, cfg.SiteDir, static, b.concurrency); err != nil {
		return nil, err
	}
	for _, f := range static {
		result.StaticFiles = append(result.StaticFiles, f.DestPath)
	}

	if err := writeIndexes(cfg, fs.DocumentationPages(), docs); err != nil {
		return nil, err
	}

	if err := p.OnPostBuild(s); err != nil {
		return nil, err
	}

	result.DeletedFiles = s.DeletedFiles()
	result.PrunedFiles = s.PrunedFiles()
	result.Warnings = s.Warnings()
	result.Duration = time.Since(start)
	b.logger.Info("site built", "pages", len(result.Pages), "static", len(result.StaticFiles),
		"pruned", len(result.PrunedFiles), "duration", result.Duration)
	return result, nil
}

// Navigation runs a build up to the navigation hooks and returns the
// navigation the pages would be rendered with. Nothing is written.
func Navigation(ctx context.Context, cfg *config.Config, opts ...Option) (*nav.Navigation, plugin.BuildWarnings, error) {
	bc, err := applyOptions(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("site: invalid options: %w", err)
	}
	b, err := prepare(ctx, cfg, bc)
	if err != nil {
		return nil, nil, err
	}
	return b.nav, b.state.Warnings(), nil
}

// build is a build whose navigation is final.
type build struct {
	*buildConfig
	plugin  *plugin.Plugin
	state   *plugin.BuildState
	files   *files.Files
	md      goldmark.Markdown
	sources []*source
	nav     *nav.Navigation
}

func prepare(ctx context.Context, cfg *config.Config, bc *buildConfig) (*build, error) {
	fromConfig, err := plugin.OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	pluginOpts := append(fromConfig, plugin.WithLogger(bc.logger))
	pluginOpts = append(pluginOpts, bc.pluginOptions...)
	p, err := plugin.New(pluginOpts...)
	if err != nil {
		return nil, err
	}
	plugins := orderPlugins(cfg, p, bc.collaborators)

	s, err := p.OnConfig(cfg, plugins)
	if err != nil {
		return nil, err
	}

	fs, err := files.Discover(cfg.DocsDir, cfg.SiteDir, cfg.ExcludeDocs)
	if err != nil {
		return nil, err
	}
	if fs, err = p.OnFiles(s, fs); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := &build{buildConfig: bc, plugin: p, state: s, files: fs, md: newMarkdown()}
	for _, f := range fs.DocumentationPages() {
		data, err := os.ReadFile(f.AbsSrcPath)
		if err != nil {
			return nil, fmt.Errorf("site: reading %s: %w", f.SrcPath, err)
		}
		src := parseSource(b.md, f, data)
		f.Title = src.title()
		b.sources = append(b.sources, src)
	}

	n, err := hostNavigation(cfg, fs, bc.logger)
	if err != nil {
		return nil, err
	}
	for _, c := range plugins {
		switch hook := c.(type) {
		case *plugin.Plugin:
			n, err = hook.OnNav(s, n, fs)
		case plugin.NavHook:
			n, err = hook.OnNav(n, fs)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
	}
	b.nav = n
	return b, nil
}

// orderPlugins lists the plugins in configuration order. The awesome-pages
// plugin and the collaborators not named by the configuration come last.
func orderPlugins(cfg *config.Config, p *plugin.Plugin, collaborators []plugin.Collaborator) []plugin.Collaborator {
	byName := make(map[string]plugin.Collaborator, len(collaborators))
	for _, c := range collaborators {
		byName[c.Name()] = c
	}

	var out []plugin.Collaborator
	placed := make(map[string]bool)
	for _, entry := range cfg.Plugins {
		if placed[entry.Name] {
			continue
		}
		placed[entry.Name] = true
		switch {
		case entry.Name == plugin.Name:
			out = append(out, p)
		case byName[entry.Name] != nil:
			out = append(out, byName[entry.Name])
		default:
			out = append(out, listedPlugin(entry.Name))
		}
	}
	for _, c := range collaborators {
		if !placed[c.Name()] {
			placed[c.Name()] = true
			out = append(out, c)
		}
	}
	if !placed[plugin.Name] {
		out = append(out, p)
	}
	return out
}

// hostNavigation builds the navigation the generator itself would: the
// configured tree when the configuration still has one, otherwise one
// section per directory.
func hostNavigation(cfg *config.Config, fs *files.Files, logger plugin.Logger) (*nav.Navigation, error) {
	if cfg.Nav == nil {
		return nav.BuildDefault(fs), nil
	}
	draft, unresolved, err := nav.FromConfig(cfg.Nav, fs)
	if err != nil {
		return nil, fmt.Errorf("site: %w", err)
	}
	for _, entry := range unresolved {
		logger.Warn("nav entry does not point to a page", "entry", entry)
	}
	n, err := nav.Finalize(draft)
	if err != nil {
		return nil, fmt.Errorf("site: %w", err)
	}
	return n, nil
}

func writePage(cfg *config.Config, n *nav.Navigation, f *files.File, body string) error {
	var sb strings.Builder
	err := layout.Execute(&sb, pageData{
		SiteName: cfg.SiteName,
		Title:    nav.PageTitle(f),
		Menu:     menu(n.Items, f),
		Content:  template.HTML(body),
	})
	if err != nil {
		return fmt.Errorf("site: layout for %s: %w", f.SrcPath, err)
	}
	return writeOutput(cfg.SiteDir, f.DestPath, []byte(sb.String()))
}

func writeIndexes(cfg *config.Config, pages []*files.File, docs []searchDoc) error {
	sm, err := sitemap(cfg.SiteURL, pages)
	if err != nil {
		return err
	}
	if err := writeOutput(cfg.SiteDir, "sitemap.xml", sm); err != nil {
		return err
	}
	gz, err := gzipBytes(sm)
	if err != nil {
		return fmt.Errorf("site: sitemap: %w", err)
	}
	if err := writeOutput(cfg.SiteDir, "sitemap.xml.gz", gz); err != nil {
		return err
	}

	index, err := searchIndexJSON(docs)
	if err != nil {
		return err
	}
	return writeOutput(cfg.SiteDir, "search/search_index.json", index)
}
