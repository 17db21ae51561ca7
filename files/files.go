package files

import (
	"path"
	"path/filepath"
	"strings"
)

// PageExtension is the extension of rendered page outputs.
const PageExtension = ".html"

var pageSourceExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkd":      true,
}

// File is a source file of the documentation and its output location.
type File struct {
	// SrcPath is the slash-separated path relative to the docs directory.
	SrcPath string
	// DestPath is the slash-separated path relative to the site directory.
	DestPath string
	// AbsSrcPath is the absolute source path.
	AbsSrcPath string
	// AbsDestPath is the absolute output path.
	AbsDestPath string
	// URL is the site-relative URL of the output.
	URL string
	// Title is the page title found in the source, if any.
	Title string
}

// NewFile creates a File for srcPath (relative to docsDir) that is written
// below siteDir.
func NewFile(srcPath, docsDir, siteDir string) *File {
	srcPath = filepath.ToSlash(filepath.Clean(srcPath))
	f := &File{
		SrcPath:    srcPath,
		AbsSrcPath: filepath.Join(docsDir, filepath.FromSlash(srcPath)),
	}
	f.DestPath = destPath(srcPath)
	f.AbsDestPath = filepath.Join(siteDir, filepath.FromSlash(f.DestPath))
	f.URL = f.DestPath
	return f
}

func destPath(srcPath string) string {
	ext := path.Ext(srcPath)
	if !pageSourceExtensions[strings.ToLower(ext)] {
		return srcPath
	}
	dir, name := path.Split(strings.TrimSuffix(srcPath, ext))
	if isIndexName(name) {
		name = "index"
	}
	return dir + name + PageExtension
}

func isIndexName(stem string) bool {
	return strings.EqualFold(stem, "index") || strings.EqualFold(stem, "readme")
}

// IsDocumentationPage reports whether the file is a Markdown page.
func (f *File) IsDocumentationPage() bool {
	return pageSourceExtensions[strings.ToLower(path.Ext(f.SrcPath))]
}

// IsIndex reports whether the file is its directory's index page.
func (f *File) IsIndex() bool {
	return f.IsDocumentationPage() && isIndexName(strings.TrimSuffix(f.Name(), path.Ext(f.SrcPath)))
}

// Name returns the source file name.
func (f *File) Name() string {
	return path.Base(f.SrcPath)
}

// Dir returns the slash-separated source directory, "." for the docs root.
func (f *File) Dir() string {
	return path.Dir(f.SrcPath)
}

// Files is the ordered set of files of a build, indexed by source path.
type Files struct {
	files []*File
	bySrc map[string]*File
}

// New returns a set holding files in the given order.
func New(files ...*File) *Files {
	fs := &Files{bySrc: make(map[string]*File, len(files))}
	for _, f := range files {
		fs.Add(f)
	}
	return fs
}

// Add appends f, replacing any file with the same source path in place.
func (fs *Files) Add(f *File) {
	if _, exists := fs.bySrc[f.SrcPath]; exists {
		for i, existing := range fs.files {
			if existing.SrcPath == f.SrcPath {
				fs.files[i] = f
				break
			}
		}
	} else {
		fs.files = append(fs.files, f)
	}
	fs.bySrc[f.SrcPath] = f
}

// Get returns the file with source path srcPath, or nil.
func (fs *Files) Get(srcPath string) *File {
	return fs.bySrc[srcPath]
}

// Contains reports whether a file with source path srcPath is present.
func (fs *Files) Contains(srcPath string) bool {
	_, ok := fs.bySrc[srcPath]
	return ok
}

// Remove deletes f from the set and reports whether it was present.
func (fs *Files) Remove(f *File) bool {
	if _, ok := fs.bySrc[f.SrcPath]; !ok {
		return false
	}
	delete(fs.bySrc, f.SrcPath)
	for i, existing := range fs.files {
		if existing.SrcPath == f.SrcPath {
			fs.files = append(fs.files[:i], fs.files[i+1:]...)
			break
		}
	}
	return true
}

// All returns the files in discovery order.
func (fs *Files) All() []*File {
	out := make([]*File, len(fs.files))
	copy(out, fs.files)
	return out
}

// Len returns the number of files.
func (fs *Files) Len() int {
	return len(fs.files)
}

// DocumentationPages returns the Markdown pages in discovery order.
func (fs *Files) DocumentationPages() []*File {
	var out []*File
	for _, f := range fs.files {
		if f.IsDocumentationPage() {
			out = append(out, f)
		}
	}
	return out
}

// StaticFiles returns every file that is not a page.
func (fs *Files) StaticFiles() []*File {
	var out []*File
	for _, f := range fs.files {
		if !f.IsDocumentationPage() {
			out = append(out, f)
		}
	}
	return out
}
