// Package files is the registry of documentation source files for a build.
//
// [Discover] walks the docs directory and returns a [Files] set in discovery
// order. Markdown sources are pages and render to ".html" outputs; everything
// else is copied as is. Pages named index or README render to the directory's
// index.html.
package files
