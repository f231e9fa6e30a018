// Package mime maps file extensions to the Content-Type values the server sends.
package mime

import "path/filepath"

// Default is returned for unknown or missing extensions.
const Default = "application/octet-stream"

// types is read-only after package initialization.
var types = map[string]string{
	".html": "text/html",
	".js":   "text/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
}

// Lookup returns the content type registered for ext (including the leading
// dot). Matching is case-sensitive, so ".HTML" falls back to Default.
func Lookup(ext string) string {
	if t, ok := types[ext]; ok {
		return t
	}
	return Default
}

// TypeByPath returns the content type for the extension of path.
func TypeByPath(path string) string {
	return Lookup(filepath.Ext(path))
}

// Extensions returns a copy of the known extension table.
func Extensions() map[string]string {
	out := make(map[string]string, len(types))
	for ext, t := range types {
		out[ext] = t
	}
	return out
}
