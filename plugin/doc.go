// Package plugin is the awesome-pages build pipeline.
//
// The host site generator calls five hooks, in order, once per build:
//
//	s, err := p.OnConfig(cfg, plugins)        // locate rest entries
//	fs, err = p.OnFiles(s, fs)               // drop pages whose condition is false
//	n, err = p.OnNav(s, n, fs)               // fill rest entries, apply metadata
//	html, err = p.OnPageContent(s, html, f)   // once per page: record references
//	err = p.OnPostBuild(s)                    // prune unreferenced assets
//
// Everything a build shares between hooks lives in the [BuildState] that
// OnConfig returns. Hooks called out of order fail with a
// *pageserrors.PhaseError; the next build starts from a new OnConfig and
// shares nothing with the previous one.
//
// # Rest Entries
//
// A hand-written navigation may contain rest entries ("...", "... | flat",
// "... | glob=api/**", "... | regex=\.md$"). Each is replaced by the pages
// the rest of the navigation does not place, in discovery order. A page goes
// to the first rest entry whose pattern matches its source path.
//
// # Conditional Pages and Asset Pruning
//
// A directory's metadata file can hide a page behind an environment
// condition:
//
//	nav:
//	  - index.md
//	  - preview.md:
//	      if: STAGE=dev
//
// and with filter_not_referenced: true ask for every non-page file of its
// output directory that no rendered page of the directory links to be
// deleted after the build.
//
// # Strict Mode
//
// With [WithStrict] (the default) unresolvable navigation entries and
// malformed metadata files abort the build. Otherwise they are recorded as
// [BuildWarning] values and logged.
package plugin
