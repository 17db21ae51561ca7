package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPath returns the absolute path a site-relative, slash-separated rel
// is written to below siteDir. It fails when rel leaves siteDir or when the
// destination, or a directory between it and siteDir, is a symlink. Missing
// components are fine: they are created by the write.
func OutputPath(siteDir, rel string) (string, error) {
	root, err := filepath.Abs(siteDir)
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve site directory: %w", err)
	}
	dest := filepath.Join(root, filepath.FromSlash(rel))
	if dest == root || !Within(root, dest) {
		return "", fmt.Errorf("pathutil: output %q escapes the site directory", rel)
	}

	below := strings.Split(strings.TrimPrefix(dest, root+string(filepath.Separator)), string(filepath.Separator))
	p := root
	for _, part := range below {
		p = filepath.Join(p, part)
		info, err := os.Lstat(p)
		if os.IsNotExist(err) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("pathutil: %w", err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write through symlink %s", p)
		}
	}
	return dest, nil
}
