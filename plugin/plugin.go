package plugin

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/marcovoc/awesomepages/config"
	"github.com/marcovoc/awesomepages/files"
	"github.com/marcovoc/awesomepages/internal/envcond"
	"github.com/marcovoc/awesomepages/meta"
	"github.com/marcovoc/awesomepages/nav"
	"github.com/marcovoc/awesomepages/pageserrors"
)

// Name is the name the plugin is listed under in the site configuration.
const Name = "awesome-pages"

// Plugin customizes the site navigation from per-directory metadata files
// and prunes assets that no rendered page references.
type Plugin struct {
	cfg *pluginConfig
}

// New creates a Plugin.
//
// Example:
//
//	p, err := plugin.New(
//	    plugin.WithStrict(false),
//	    plugin.WithLogger(plugin.NewSlogAdapter(slog.Default())),
//	)
func New(opts ...Option) (*Plugin, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("plugin: invalid options: %w", err)
	}
	return &Plugin{cfg: cfg}, nil
}

// Name implements Collaborator.
func (p *Plugin) Name() string {
	return Name
}

// OnConfig starts a build. It warns about navigation-hooking plugins listed
// before this one, then replaces the rest entries of the hand-written
// navigation by placeholders. When rest entries are found, cfg.Nav is
// cleared so the host builds the full navigation from the docs directory;
// the hand-written tree is kept in the returned state.
func (p *Plugin) OnConfig(cfg *config.Config, plugins []Collaborator) (*BuildState, error) {
	env := p.cfg.env
	if env == nil {
		env = envcond.Environ()
	}
	s := &BuildState{
		phase:      PhaseConfig,
		configPath: cfg.Path,
		docsDir:    cfg.DocsDir,
		siteDir:    cfg.SiteDir,
		strict:     p.cfg.strict,
		env:        env,
		logger:     p.cfg.logger,
		restItems:  meta.NewRestItemList(),
		meta:       meta.NewLoader(p.cfg.filename),
		metaWarned: make(map[string]bool),
		folderSet:  make(map[string]bool),
		referenced: make(map[string]bool),
	}

	checkPluginOrder(s, plugins)

	if cfg.Nav == nil {
		return s, nil
	}
	s.explicit = true

	withPlaceholders, registry, err := LocateRest(cfg.Nav, s.configSource())
	if err != nil {
		return nil, err
	}
	if registry.Len() > 0 {
		s.navConfig = withPlaceholders
		s.restItems = registry
		cfg.Nav = nil
		for _, item := range registry.Items() {
			s.logger.Debug("rest item registered", "pattern", item.Value)
		}
	}
	return s, nil
}

// configSource names the configuration file in messages.
func (s *BuildState) configSource() string {
	if s.configPath == "" {
		return config.DefaultFilename
	}
	return s.configPath
}

// OnFiles removes the pages whose visibility condition is false and flags
// the output directories whose metadata requests pruning. It must run
// before the navigation is assembled.
func (p *Plugin) OnFiles(s *BuildState, fs *files.Files) (*files.Files, error) {
	if err := s.enter(PhaseFiles, "OnFiles"); err != nil {
		return nil, err
	}

	source := metaSource{s}
	var excluded []*files.File
	for _, f := range fs.DocumentationPages() {
		m, err := source.Load(filepath.Dir(f.AbsSrcPath))
		if err != nil {
			return nil, err
		}
		if m == nil {
			continue
		}
		if m.FilterNotReferenced {
			s.addFolderToClean(filepath.Dir(f.AbsDestPath))
		}
		entry := m.ConditionFor(f.Name())
		if entry == nil || entry.Condition.Eval(s.env) {
			continue
		}
		excluded = append(excluded, f)
		s.addWarning(NewPageExcludedWarning(f, entry.Condition.String(), entry.Condition.Explain(s.env)))
	}

	for _, f := range excluded {
		fs.Remove(f)
		s.deleted = append(s.deleted, f.SrcPath)
	}
	return fs, nil
}

// OnNav finishes the navigation. n is the navigation the host built: the
// full tree from the docs directory when OnConfig found rest entries,
// otherwise the host's own. Rest entries are filled with the pages the
// hand-written tree does not place, then directory metadata is applied to
// every section built from a directory.
func (p *Plugin) OnNav(s *BuildState, n *nav.Navigation, fs *files.Files) (*nav.Navigation, error) {
	if err := s.enter(PhaseNav, "OnNav"); err != nil {
		return nil, err
	}

	excluded := s.excludedPages()
	skip := make(map[*nav.Item]bool)
	if s.navConfig == nil && len(excluded) > 0 {
		n.Items = nav.Filter(n.Items, func(it *nav.Item) bool {
			return it.Kind == nav.KindLink && excluded[strings.TrimPrefix(path.Clean(it.URL), "./")]
		})
	}
	if s.navConfig != nil {
		draft, unresolved, err := nav.FromConfigExcluding(s.navConfig, fs, excluded)
		if err != nil {
			return nil, fmt.Errorf("plugin: %s: %w", s.configSource(), err)
		}
		for _, entry := range unresolved {
			navErr := &pageserrors.NavEntryError{Entry: entry, Source: s.configSource()}
			if s.strict {
				return nil, navErr
			}
			s.addWarning(NewNavEntryWarning(navErr, entry, s.configSource()))
		}
		for _, sec := range draft.Sections() {
			skip[sec] = true
		}

		consumed := make(map[string]bool)
		for _, page := range draft.Pages() {
			consumed[page.File.SrcPath] = true
		}
		s.restBlocks = nav.GenerateRestBlocks(n.Items, consumed, s.restItems)
		if n, err = nav.InsertRest(draft, s.restBlocks); err != nil {
			return nil, fmt.Errorf("plugin: %w", err)
		}
	}

	return nav.Arrange(n, nav.ArrangeOptions{
		Meta:                metaSource{s},
		DocsDir:             s.docsDir,
		Files:               fs,
		CollapseSinglePages: p.cfg.collapseSinglePages,
		Strict:              s.strict,
		Skip:                skip,
		ArrangeRoot:         !s.explicit,
		Warn: func(err *pageserrors.NavEntryError) {
			s.addWarning(NewNavEntryWarning(err, err.Entry, err.Source))
		},
	})
}

// OnPageContent records the assets referenced by a rendered page that lives
// in a flagged directory. The markup is returned unchanged; references that
// cannot be resolved are skipped.
func (p *Plugin) OnPageContent(s *BuildState, html string, page *files.File) (string, error) {
	if err := s.enter(PhaseRender, "OnPageContent"); err != nil {
		return "", err
	}
	if !s.flagged(page.AbsDestPath) {
		return html, nil
	}

	pageDir := filepath.Dir(page.AbsDestPath)
	for _, target := range ScanReferences(html) {
		resolved, ok := ResolveReference(target, pageDir, s.siteDir)
		if !ok {
			continue
		}
		if !s.referenced[resolved] {
			s.logger.Debug("referenced file", "page", page.SrcPath, "target", target, "path", resolved)
		}
		s.referenced[resolved] = true
	}
	return html, nil
}

// OnPostBuild deletes the unreferenced files of the flagged directories and
// the directories this leaves empty. It ends the build.
func (p *Plugin) OnPostBuild(s *BuildState) error {
	if err := s.enter(PhasePostBuild, "OnPostBuild"); err != nil {
		return err
	}
	return pruneUnreferenced(s)
}
