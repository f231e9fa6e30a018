package mime

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".html", "text/html"},
		{".js", "text/javascript"},
		{".css", "text/css"},
		{".json", "application/json"},
		{".png", "image/png"},
		{".jpg", "image/jpg"},
		{".gif", "image/gif"},
		{".svg", "image/svg+xml"},
		{".txt", Default},
		{".jpeg", Default},
		{".HTML", Default},
		{"", Default},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := Lookup(tt.ext); got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.ext, got, tt.want)
			}
		})
	}
}

func TestTypeByPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/srv/web/index.html", "text/html"},
		{"/srv/web/js/app.min.js", "text/javascript"},
		{"/srv/output/graph.json", "application/json"},
		{"/srv/web/README", Default},
		{"/srv/web/.hidden", Default},
		{"/srv/web/notes.txt", Default},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := TypeByPath(tt.path); got != tt.want {
				t.Errorf("TypeByPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExtensionsIsACopy(t *testing.T) {
	ext := Extensions()
	before := Extensions()
	ext[".txt"] = "text/plain"
	delete(ext, ".html")

	if diff := cmp.Diff(before, Extensions()); diff != "" {
		t.Errorf("table changed through Extensions() (-before +after):\n%s", diff)
	}
}
