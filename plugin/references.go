package plugin

import (
	"html"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/marcovoc/awesomepages/files"
	"github.com/marcovoc/awesomepages/internal/pathutil"
)

var (
	// referenceTagRe matches opening <a> and <img> tags. Quoted attribute
	// values may contain '>'. A quote only opens a value right after '=',
	// so a stray apostrophe in an unquoted value is plain text.
	referenceTagRe = regexp.MustCompile(`(?is)<\s*(?:a|img)\b(?:=\s*"[^"]*"|=\s*'[^']*'|[^>])*>`)

	// referenceAttrRe matches href, src and srcset attributes with double
	// quoted, single quoted or unquoted values.
	referenceAttrRe = regexp.MustCompile(`(?is)\b(href|src|srcset)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)

	schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
)

// ScanReferences returns the reference targets of the <a> and <img> tags of
// markup, in document order. Values are HTML-unescaped; srcset contributes
// each of its candidate URLs.
func ScanReferences(markup string) []string {
	var out []string
	for _, tag := range referenceTagRe.FindAllString(markup, -1) {
		for _, m := range referenceAttrRe.FindAllStringSubmatch(tag, -1) {
			value := html.UnescapeString(m[2] + m[3] + m[4])
			if strings.EqualFold(m[1], "srcset") {
				for _, candidate := range strings.Split(value, ",") {
					if fields := strings.Fields(candidate); len(fields) > 0 {
						out = append(out, fields[0])
					}
				}
				continue
			}
			out = append(out, value)
		}
	}
	return out
}

// ResolveReference resolves a reference target found in a page written to
// pageDir. Root-absolute targets resolve against siteDir. Page targets,
// external URLs, fragment-only and undecodable targets report false.
func ResolveReference(target, pageDir, siteDir string) (string, bool) {
	target = strings.TrimSpace(target)
	if target == "" || strings.HasPrefix(target, "#") || strings.HasPrefix(target, "//") || schemeRe.MatchString(target) {
		return "", false
	}
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		target = target[:i]
	}
	if target == "" {
		return "", false
	}
	decoded, err := url.PathUnescape(target)
	if err != nil {
		return "", false
	}
	if strings.HasSuffix(strings.ToLower(decoded), files.PageExtension) {
		return "", false
	}
	if strings.HasPrefix(decoded, "/") {
		return pathutil.Normalize(siteDir, filepath.FromSlash(strings.TrimLeft(decoded, "/"))), true
	}
	return pathutil.Normalize(pageDir, filepath.FromSlash(decoded)), true
}
