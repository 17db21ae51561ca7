package plugin

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcovoc/awesomepages/files"
	"github.com/marcovoc/awesomepages/internal/pathutil"
	"github.com/marcovoc/awesomepages/pageserrors"
)

// generatorOwned lists the outputs, relative to a flagged folder, that the
// site generator writes itself and that are never pruned.
var generatorOwned = []string{"assets", "search", "sitemap.xml", "sitemap.xml.gz"}

// pruneUnreferenced deletes every non-page file of the flagged folders that
// no scanned page referenced, then removes the directories this leaves
// empty. Candidates are collected from all folders before anything is
// deleted. A filesystem error stops the prune; earlier deletions stay.
func pruneUnreferenced(s *BuildState) error {
	var candidates []string
	seen := make(map[string]bool)

	for _, folder := range s.foldersToClean {
		ignored := make([]string, len(generatorOwned))
		for i, name := range generatorOwned {
			ignored[i] = filepath.Join(folder, name)
		}

		err := walkFiles(folder, func(p string) {
			p = filepath.Clean(p)
			if strings.HasSuffix(strings.ToLower(p), files.PageExtension) {
				return
			}
			for _, ig := range ignored {
				if pathutil.Within(ig, p) {
					return
				}
			}
			if s.referenced[p] || seen[p] {
				return
			}
			seen[p] = true
			candidates = append(candidates, p)
		})
		if err != nil {
			return err
		}
	}

	for _, p := range candidates {
		if err := os.Remove(p); err != nil {
			return &pageserrors.PruneError{Op: "remove", Path: p, Cause: err}
		}
		s.pruned = append(s.pruned, p)
		s.logger.Info("removed file not referenced in filtered folder", "path", p)

		if err := removeEmptyParents(s, filepath.Dir(p)); err != nil {
			return err
		}
	}
	return nil
}

// walkFiles calls fn for every file below root, following symlinked
// directories. A directory reached twice through links is walked once. A
// missing root is not an error.
func walkFiles(root string, fn func(path string)) error {
	visited := make(map[string]bool)

	var walk func(dir string) error
	walk = func(dir string) error {
		resolved, err := filepath.EvalSymlinks(dir)
		if err != nil {
			return &pageserrors.PruneError{Op: "walk", Path: dir, Cause: err}
		}
		if visited[resolved] {
			return nil
		}
		visited[resolved] = true

		entries, err := os.ReadDir(dir)
		if err != nil {
			return &pageserrors.PruneError{Op: "walk", Path: dir, Cause: err}
		}
		for _, e := range entries {
			p := filepath.Join(dir, e.Name())
			isDir := e.IsDir()
			if e.Type()&fs.ModeSymlink != 0 {
				// A dangling link is pruned like a file.
				if info, err := os.Stat(p); err == nil {
					isDir = info.IsDir()
				}
			}
			if isDir {
				if err := walk(p); err != nil {
					return err
				}
				continue
			}
			fn(p)
		}
		return nil
	}

	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return walk(root)
}

// removeEmptyParents removes dir and then each ancestor for as long as they
// are empty. The site directory itself is never removed.
func removeEmptyParents(s *BuildState, dir string) error {
	for {
		dir = filepath.Clean(dir)
		if dir == filepath.Clean(s.siteDir) || !pathutil.Within(s.siteDir, dir) {
			return nil
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return &pageserrors.PruneError{Op: "rmdir", Path: dir, Cause: err}
		}
		if len(entries) > 0 {
			return nil
		}
		if err := os.Remove(dir); err != nil {
			return &pageserrors.PruneError{Op: "rmdir", Path: dir, Cause: err}
		}
		s.logger.Debug("removed empty directory", "path", dir)
		dir = filepath.Dir(dir)
	}
}
