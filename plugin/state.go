package plugin

import (
	"path/filepath"

	"github.com/marcovoc/awesomepages/internal/envcond"
	"github.com/marcovoc/awesomepages/internal/maputil"
	"github.com/marcovoc/awesomepages/internal/pathutil"
	"github.com/marcovoc/awesomepages/meta"
	"github.com/marcovoc/awesomepages/nav"
	"github.com/marcovoc/awesomepages/pageserrors"
)

// Phase is a stage of a build.
type Phase int

const (
	// PhaseConfig follows OnConfig.
	PhaseConfig Phase = iota + 1
	// PhaseFiles follows OnFiles.
	PhaseFiles
	// PhaseNav follows OnNav.
	PhaseNav
	// PhaseRender follows the first OnPageContent and lasts until OnPostBuild.
	PhaseRender
	// PhasePostBuild follows OnPostBuild; the state accepts no further hooks.
	PhasePostBuild
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseConfig:
		return "config"
	case PhaseFiles:
		return "files"
	case PhaseNav:
		return "nav"
	case PhaseRender:
		return "render"
	case PhasePostBuild:
		return "post-build"
	default:
		return "none"
	}
}

// predecessors lists, for each phase, the phases it may directly follow.
var predecessors = map[Phase][]Phase{
	PhaseFiles:     {PhaseConfig},
	PhaseNav:       {PhaseFiles},
	PhaseRender:    {PhaseNav, PhaseRender},
	PhasePostBuild: {PhaseNav, PhaseRender},
}

// BuildState is everything one build shares between its hooks. OnConfig
// creates it and every later hook takes it; a new build starts from a new
// OnConfig and so from a fresh state.
type BuildState struct {
	phase Phase

	configPath string
	docsDir    string
	siteDir    string
	strict     bool
	env        envcond.Env
	logger     Logger

	// navConfig is the hand-written navigation with rest entries replaced by
	// placeholders; nil when it had no rest entries.
	navConfig *nav.ConfigNode
	// explicit is set when the site navigation is hand-written.
	explicit   bool
	restItems  *meta.RestItemList
	restBlocks *nav.RestBlocks

	meta       *meta.Loader
	metaWarned map[string]bool

	foldersToClean []string
	folderSet      map[string]bool
	referenced     map[string]bool

	deleted  []string
	pruned   []string
	warnings BuildWarnings
}

// enter moves the state to next on behalf of hook.
func (s *BuildState) enter(next Phase, hook string) error {
	if s == nil {
		return &pageserrors.PhaseError{Hook: hook, Current: Phase(0).String()}
	}
	for _, p := range predecessors[next] {
		if s.phase == p {
			s.phase = next
			return nil
		}
	}
	return &pageserrors.PhaseError{Hook: hook, Current: s.phase.String()}
}

// Phase returns the last phase the build entered.
func (s *BuildState) Phase() Phase {
	return s.phase
}

// RestItems returns the rest items found in the navigation configuration.
func (s *BuildState) RestItems() *meta.RestItemList {
	return s.restItems
}

// NavConfig returns the navigation configuration with rest entries replaced
// by placeholders, or nil when it had none.
func (s *BuildState) NavConfig() *nav.ConfigNode {
	return s.navConfig
}

// RestBlocks returns the rest blocks distributed during OnNav, or nil.
func (s *BuildState) RestBlocks() *nav.RestBlocks {
	return s.restBlocks
}

// FoldersToClean returns the flagged output directories in the order they
// were found.
func (s *BuildState) FoldersToClean() []string {
	out := make([]string, len(s.foldersToClean))
	copy(out, s.foldersToClean)
	return out
}

// ReferencedPaths returns the referenced output paths, sorted.
func (s *BuildState) ReferencedPaths() []string {
	return maputil.SortedKeys(s.referenced)
}

// DeletedFiles returns the source paths of pages removed by their visibility
// condition.
func (s *BuildState) DeletedFiles() []string {
	out := make([]string, len(s.deleted))
	copy(out, s.deleted)
	return out
}

// excludedPages returns the source paths removed by OnFiles as a set.
func (s *BuildState) excludedPages() map[string]bool {
	out := make(map[string]bool, len(s.deleted))
	for _, src := range s.deleted {
		out[src] = true
	}
	return out
}

// PrunedFiles returns the output files deleted as unreferenced.
func (s *BuildState) PrunedFiles() []string {
	out := make([]string, len(s.pruned))
	copy(out, s.pruned)
	return out
}

// Warnings returns the warnings recorded so far.
func (s *BuildState) Warnings() BuildWarnings {
	out := make(BuildWarnings, len(s.warnings))
	copy(out, s.warnings)
	return out
}

func (s *BuildState) addWarning(w *BuildWarning) {
	s.warnings = append(s.warnings, w)
	attrs := []any{"category", string(w.Category)}
	if w.Source != "" {
		attrs = append(attrs, "source", w.Source)
	}
	if w.Severity == SeverityInfo {
		s.logger.Info(w.Message, attrs...)
	} else {
		s.logger.Warn(w.Message, attrs...)
	}
}

func (s *BuildState) addFolderToClean(dir string) {
	dir = filepath.Clean(dir)
	if s.folderSet[dir] {
		return
	}
	s.folderSet[dir] = true
	s.foldersToClean = append(s.foldersToClean, dir)
	s.logger.Debug("flagged folder for unreferenced file pruning", "folder", dir)
}

// flagged reports whether dest lies inside a folder to clean.
func (s *BuildState) flagged(dest string) bool {
	for _, folder := range s.foldersToClean {
		if pathutil.Within(folder, dest) {
			return true
		}
	}
	return false
}

// metaSource is the state's view of directory metadata. In lenient mode a
// malformed file is reported once and treated as absent.
type metaSource struct {
	s *BuildState
}

// Load implements nav.MetaSource.
func (m metaSource) Load(dir string) (*meta.DirectoryMeta, error) {
	dm, err := m.s.meta.Load(dir)
	if err == nil {
		return dm, nil
	}
	if m.s.strict {
		return nil, err
	}
	if key := filepath.Clean(dir); !m.s.metaWarned[key] {
		m.s.metaWarned[key] = true
		m.s.addWarning(NewMetaWarning(err, filepath.Join(key, m.s.meta.Filename())))
	}
	return nil, nil
}

var _ nav.MetaSource = metaSource{}
