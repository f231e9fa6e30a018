// Package assets inspects the pages in the base directory for references to
// local files that are not there.
package assets

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// selectors lists the elements and attributes that load a file.
var selectors = []struct {
	query string
	attr  string
}{
	{"script[src]", "src"},
	{"link[href]", "href"},
	{"img[src]", "src"},
}

// Reference is a local file a page refers to.
type Reference struct {
	// Raw is the attribute value as written in the page.
	Raw string
	// Path is the slash-separated path relative to the base directory.
	Path string
}

// References parses an HTML document and returns the local files it refers
// to, in document order without duplicates. page is the document's own path
// relative to the base directory and anchors relative references.
func References(r io.Reader, page string) ([]Reference, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	var refs []Reference
	seen := make(map[string]bool)
	for _, sel := range selectors {
		doc.Find(sel.query).Each(func(_ int, s *goquery.Selection) {
			raw, _ := s.Attr(sel.attr)
			p, ok := localPath(raw, page)
			if !ok || seen[p] {
				return
			}
			seen[p] = true
			refs = append(refs, Reference{Raw: raw, Path: p})
		})
	}
	return refs, nil
}

// Missing returns the references of baseDir/page whose files do not exist.
func Missing(baseDir, page string) ([]Reference, error) {
	f, err := os.Open(filepath.Join(baseDir, filepath.FromSlash(page)))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	refs, err := References(f, page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", page, err)
	}

	var missing []Reference
	for _, ref := range refs {
		if _, err := os.Stat(filepath.Join(baseDir, filepath.FromSlash(ref.Path))); err != nil {
			missing = append(missing, ref)
		}
	}
	return missing, nil
}

// localPath reports the base-relative path for raw, or false for remote,
// inline and fragment-only references.
func localPath(raw, page string) (string, bool) {
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}
	if path.IsAbs(u.Path) {
		return path.Clean(u.Path)[1:], true
	}
	return path.Join(path.Dir(page), u.Path), true
}
