// Package site is a minimal documentation site generator that hosts the
// awesome-pages plugin.
//
// [Build] runs a whole build the way a site generator drives its plugins:
//
//  1. OnConfig, with the configured plugins in order
//  2. discover the docs directory, honoring exclude_docs
//  3. OnFiles
//  4. parse every page; a page's first level-one heading becomes its title
//  5. build the navigation from the configuration, or one section per
//     directory, then run every navigation hook in plugin order
//  6. render each page with goldmark, pass it through OnPageContent and
//     write it inside an HTML layout with the navigation menu
//  7. copy static files, write sitemap.xml, sitemap.xml.gz and
//     search/search_index.json
//  8. OnPostBuild
//
// Example:
//
//	res, err := site.BuildFile(ctx, "mkdocs.yml",
//	    site.WithLogger(plugin.NewSlogAdapter(slog.Default())),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d pages, %d files pruned\n", len(res.Pages), len(res.PrunedFiles))
package site
