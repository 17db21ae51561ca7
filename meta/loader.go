package meta

import (
	"path/filepath"
)

// Loader loads directory metadata lazily, once per directory. A Loader lives
// for a single build; create a new one for the next build.
type Loader struct {
	filename string
	cache    map[string]loaded
}

type loaded struct {
	meta *DirectoryMeta
	err  error
}

// NewLoader returns a Loader reading files named filename; an empty name
// selects DefaultFilename.
func NewLoader(filename string) *Loader {
	if filename == "" {
		filename = DefaultFilename
	}
	return &Loader{filename: filename, cache: make(map[string]loaded)}
}

// Filename returns the metadata file name this loader reads.
func (l *Loader) Filename() string {
	return l.filename
}

// Load returns the metadata of dir, or nil when the directory has none.
func (l *Loader) Load(dir string) (*DirectoryMeta, error) {
	dir = filepath.Clean(dir)
	if r, ok := l.cache[dir]; ok {
		return r.meta, r.err
	}
	m, err := TryLoadFrom(filepath.Join(dir, l.filename))
	l.cache[dir] = loaded{meta: m, err: err}
	return m, err
}
