package pathutil

import (
	"path/filepath"
	"strings"
)

// Within reports whether p is root itself or lies below it. Both paths are
// cleaned; no symlinks are resolved.
func Within(root, p string) bool {
	root = filepath.Clean(root)
	p = filepath.Clean(p)
	if root == p {
		return true
	}
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root += string(filepath.Separator)
	}
	return strings.HasPrefix(p, root)
}

// Normalize returns the cleaned absolute form of p. Relative paths are made
// absolute against base rather than the working directory.
func Normalize(base, p string) string {
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	return filepath.Clean(p)
}
