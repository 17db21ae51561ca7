// Package awesomepages customizes the navigation of a Markdown documentation
// site from small metadata files placed next to the pages.
//
// # Overview
//
// The module is organized in packages that follow a site build:
//
//   - config: load the site configuration (mkdocs.yml)
//   - files: discover the documentation files and their output paths
//   - meta: parse per-directory metadata files (.pages) and rest entries
//   - nav: build, fill and arrange the navigation tree
//   - plugin: the build hooks and the state they share
//   - site: a small generator that runs the hooks and writes the site
//   - pageserrors: sentinel and typed errors shared by every package
//
// # Quick Start
//
// Build a site from its configuration file:
//
//	res, err := site.BuildFile(context.Background(), "mkdocs.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range res.Warnings {
//	    fmt.Println(w)
//	}
//
// Or drive the hooks from another generator:
//
//	p, err := plugin.New(plugin.WithStrict(false))
//	s, err := p.OnConfig(cfg, plugins)
//	fs, err = p.OnFiles(s, fs)
//	n, err = p.OnNav(s, n, fs)
//	html, err = p.OnPageContent(s, html, page) // for every page
//	err = p.OnPostBuild(s)
//
// # Metadata Files
//
// A .pages file in a docs directory may set:
//
//	title: Section Title
//	nav:
//	  - intro.md
//	  - Custom Title: page.md
//	  - External: https://example.com
//	  - ... | flat | guides/**
//	  - draft.md:
//	      if: SHOW_DRAFTS
//	order: asc
//	hide: false
//	collapse: false
//	collapse_single_pages: false
//	filter_not_referenced: false
//
// The command-line tool in cmd/awesomepages builds a site or prints its
// navigation.
package awesomepages
