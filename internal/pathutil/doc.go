// Package pathutil provides filesystem path helpers shared by the build
// pipeline and the site writer.
//
// # Containment
//
// [Within] decides whether a path lies inside a directory using whole path
// segments, so "/site/docs-old" is not inside "/site/docs":
//
//	if pathutil.Within(folder, page.AbsDestPath) {
//	    // page belongs to the flagged folder
//	}
//
// # Output Paths
//
// [OutputPath] maps a site-relative path to the file it is written to,
// refusing paths that leave the site directory or pass through a symlink:
//
//	dest, err := pathutil.OutputPath(cfg.SiteDir, "guide/index.html")
//	if err != nil {
//	    return err
//	}
package pathutil
