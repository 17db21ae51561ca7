// Package config loads the site configuration file (mkdocs.yml).
//
// Only the keys the build uses are decoded: site_name, site_url, docs_dir,
// site_dir, nav, plugins and exclude_docs. The nav tree keeps the order of
// sequences and mapping keys, since that order is the navigation order.
// Plugins may be listed by name or as a single-key mapping carrying options:
//
//	plugins:
//	  - search
//	  - awesome-pages:
//	      strict: false
package config
