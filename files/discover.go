package files

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Discover lists every file below docsDir in discovery order: within a
// directory the index page first, then the remaining files by name, then
// each subdirectory by name. Hidden files and directories are skipped, as is
// anything matched by the gitignore-style exclude patterns.
func Discover(docsDir, siteDir string, exclude []string) (*Files, error) {
	info, err := os.Stat(docsDir)
	if err != nil {
		return nil, fmt.Errorf("files: docs directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("files: %s: not a directory", docsDir)
	}

	var gi *ignore.GitIgnore
	if len(exclude) > 0 {
		gi = ignore.CompileIgnoreLines(exclude...)
	}

	fs := New()
	if err := discoverDir(fs, docsDir, siteDir, "", gi); err != nil {
		return nil, err
	}
	return fs, nil
}

func discoverDir(fs *Files, docsDir, siteDir, rel string, gi *ignore.GitIgnore) error {
	entries, err := os.ReadDir(filepath.Join(docsDir, filepath.FromSlash(rel)))
	if err != nil {
		return fmt.Errorf("files: reading %s: %w", path.Join(docsDir, rel), err)
	}

	var names, dirs []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		relPath := path.Join(rel, name)
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			target, err := os.Stat(filepath.Join(docsDir, filepath.FromSlash(relPath)))
			if err != nil {
				continue
			}
			isDir = target.IsDir()
		}
		if gi != nil && gi.MatchesPath(relPath) {
			continue
		}
		if isDir {
			dirs = append(dirs, name)
		} else {
			names = append(names, name)
		}
	}

	sort.Slice(names, func(i, j int) bool {
		ii, ji := isIndexFile(names[i]), isIndexFile(names[j])
		if ii != ji {
			return ii
		}
		return names[i] < names[j]
	})
	sort.Strings(dirs)

	for _, name := range names {
		fs.Add(NewFile(path.Join(rel, name), docsDir, siteDir))
	}
	for _, name := range dirs {
		if err := discoverDir(fs, docsDir, siteDir, path.Join(rel, name), gi); err != nil {
			return err
		}
	}
	return nil
}

func isIndexFile(name string) bool {
	ext := path.Ext(name)
	return pageSourceExtensions[strings.ToLower(ext)] && isIndexName(strings.TrimSuffix(name, ext))
}
