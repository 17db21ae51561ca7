package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/marcovoc/awesomepages/files"
)

var separatorReplacer = strings.NewReplacer("-", " ", "_", " ")

// TitleFromName derives a display title from a file or directory name:
// the extension is dropped, dashes and underscores become spaces, and an
// all-lowercase result gets its first word capitalized.
func TitleFromName(name string, isFile bool) string {
	if isFile {
		name = strings.TrimSuffix(name, path.Ext(name))
	}
	title := strings.TrimSpace(separatorReplacer.Replace(name))
	if title == "" || strings.ToLower(title) != title {
		return title
	}
	first, rest, found := strings.Cut(title, " ")
	first = cases.Title(language.English, cases.NoLower).String(first)
	if !found {
		return first
	}
	return first + " " + rest
}

// PageTitle is the default title of a page: the title found in its source,
// "Home" for the top-level index page, otherwise derived from the file name.
func PageTitle(f *files.File) string {
	if f.Title != "" {
		return f.Title
	}
	if f.IsIndex() && f.Dir() == "." {
		return "Home"
	}
	return TitleFromName(f.Name(), true)
}
