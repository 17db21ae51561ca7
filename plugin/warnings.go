package plugin

import (
	"fmt"

	"github.com/marcovoc/awesomepages/files"
	"github.com/marcovoc/awesomepages/internal/severity"
	"github.com/marcovoc/awesomepages/nav"
)

// Severity levels of build warnings.
const (
	SeverityInfo    = severity.SeverityInfo
	SeverityWarning = severity.SeverityWarning
	SeverityError   = severity.SeverityError
)

// WarningCategory identifies the type of warning.
type WarningCategory string

const (
	// WarnNavPluginOrder indicates a plugin with a navigation hook is listed
	// before this one and may see a navigation that is later replaced.
	WarnNavPluginOrder WarningCategory = "nav_plugin_order"
	// WarnNavEntry indicates a navigation entry that resolved to nothing was
	// ignored because strict mode is off.
	WarnNavEntry WarningCategory = "nav_entry"
	// WarnMeta indicates a malformed metadata file was ignored because strict
	// mode is off.
	WarnMeta WarningCategory = "meta"
	// WarnPageExcluded indicates a page was removed by its visibility condition.
	WarnPageExcluded WarningCategory = "page_excluded"
)

// BuildWarning is a non-fatal issue recorded during a build.
type BuildWarning struct {
	// Category identifies the type of warning.
	Category WarningCategory
	// Message is a human-readable description.
	Message string
	// Source is the file or plugin the warning is about.
	Source string
	// Severity indicates warning severity.
	Severity severity.Severity
	// Context provides additional details.
	Context map[string]any
}

// String returns the warning message.
func (w *BuildWarning) String() string {
	return w.Message
}

// NewNavPluginOrderWarning creates the warning for a plugin that defines a
// navigation hook and is listed before this one.
func NewNavPluginOrderWarning(plugin string) *BuildWarning {
	return &BuildWarning{
		Category: WarnNavPluginOrder,
		Message: fmt.Sprintf("the plugin %q might not work correctly when placed before %s in the list of plugins: "+
			"it defines a navigation hook whose result %s may override", plugin, Name, Name),
		Source:   plugin,
		Severity: SeverityWarning,
		Context:  map[string]any{"plugin": plugin},
	}
}

// NewNavEntryWarning creates the warning for a tolerated unresolvable entry.
func NewNavEntryWarning(err error, entry, source string) *BuildWarning {
	return &BuildWarning{
		Category: WarnNavEntry,
		Message:  err.Error(),
		Source:   source,
		Severity: SeverityError,
		Context:  map[string]any{"entry": entry},
	}
}

// NewMetaWarning creates the warning for a tolerated malformed metadata file.
func NewMetaWarning(err error, path string) *BuildWarning {
	return &BuildWarning{
		Category: WarnMeta,
		Message:  err.Error(),
		Source:   path,
		Severity: SeverityError,
	}
}

// NewPageExcludedWarning creates the notice for a page removed by its
// visibility condition. reason explains the condition's outcome.
func NewPageExcludedWarning(f *files.File, condition, reason string) *BuildWarning {
	return &BuildWarning{
		Category: WarnPageExcluded,
		Message:  fmt.Sprintf("excluding %s: condition %q is false (%s)", f.SrcPath, condition, reason),
		Source:   f.SrcPath,
		Severity: SeverityInfo,
		Context:  map[string]any{"condition": condition, "reason": reason},
	}
}

// BuildWarnings is a collection of BuildWarning.
type BuildWarnings []*BuildWarning

// Strings returns the warning messages.
func (ws BuildWarnings) Strings() []string {
	result := make([]string, len(ws))
	for i, w := range ws {
		if w == nil {
			continue
		}
		result[i] = w.String()
	}
	return result
}

// ByCategory filters warnings by category.
func (ws BuildWarnings) ByCategory(cat WarningCategory) BuildWarnings {
	var result BuildWarnings
	for _, w := range ws {
		if w.Category == cat {
			result = append(result, w)
		}
	}
	return result
}

// BySeverity filters warnings by severity.
func (ws BuildWarnings) BySeverity(sev severity.Severity) BuildWarnings {
	var result BuildWarnings
	for _, w := range ws {
		if w.Severity == sev {
			result = append(result, w)
		}
	}
	return result
}

// Collaborator is another plugin enabled on the site.
type Collaborator interface {
	Name() string
}

// NavHook is implemented by collaborators that rewrite the navigation.
type NavHook interface {
	Collaborator
	OnNav(n *nav.Navigation, fs *files.Files) (*nav.Navigation, error)
}

// checkPluginOrder warns about every navigation-hooking collaborator listed
// before this plugin.
func checkPluginOrder(s *BuildState, plugins []Collaborator) {
	for _, c := range plugins {
		if c.Name() == Name {
			return
		}
		if _, ok := c.(NavHook); ok {
			s.addWarning(NewNavPluginOrderWarning(c.Name()))
		}
	}
}
