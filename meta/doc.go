// Package meta reads the per-directory metadata files (".pages" by default)
// and models rest entries.
//
// A metadata file is YAML:
//
//	title: Guides
//	order: asc
//	collapse_single_pages: true
//	filter_not_referenced: true
//	nav:
//	  - index.md
//	  - Getting started: intro.md
//	  - secret.md:
//	      if: ONLY_IF_ENV=prod
//	  - ... | flat | tutorials/**
//	  - GitHub: https://github.com
//
// # Rest Entries
//
// A rest entry ("...") stands for every page not placed elsewhere. It may
// carry a glob or regex pattern and a flat flag:
//
//	...
//	... | flat
//	... | glob=guides/**
//	... | regex=^api/.*\.md$
//	... | flat | *.md
//
// Rest entries found in the site navigation are registered in a
// [RestItemList], which rejects the same pattern twice.
//
// # Loading
//
// [Loader] loads each directory's file at most once per build. A missing or
// unreadable file is not an error; it is the absence of metadata.
package meta
