// Package static implements the file responder behind the graph server.
package static

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/f4ah6o/graphserve/internal/config"
	"github.com/f4ah6o/graphserve/internal/mime"
)

const faviconPath = "/favicon.ico"

var (
	notFound = color.New(color.FgYellow).SprintFunc()
	failed   = color.New(color.FgRed, color.Bold).SprintFunc()
	served   = color.New(color.FgGreen).SprintFunc()

	sizes = message.NewPrinter(language.English)
)

// Responder answers every request from files under a base directory.
// It holds no mutable state and is safe for concurrent use.
type Responder struct {
	baseDir     string
	indexFile   string
	strictPaths bool

	// fallbackPath is the only request path that may fall through to
	// fallbacks when the base directory has no such file.
	fallbackPath string
	fallbacks    []Candidate

	logger *log.Logger
}

// New builds a Responder from cfg. A nil logger logs to log.Default().
func New(cfg config.Config, logger *log.Logger) *Responder {
	if logger == nil {
		logger = log.Default()
	}
	return &Responder{
		baseDir:      cfg.BaseDir,
		indexFile:    cfg.IndexFile,
		strictPaths:  cfg.StrictPaths,
		fallbackPath: "/" + cfg.FallbackFile,
		fallbacks: []Candidate{{
			Path:        filepath.Join(cfg.AltDir, cfg.FallbackFile),
			ContentType: "application/json",
		}},
		logger: logger,
	}
}

// ServeHTTP implements http.Handler.
func (s *Responder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Percent escapes stay literal so "%2e%2e" names a directory rather
	// than a parent reference.
	urlPath := r.URL.EscapedPath()
	s.logger.Printf("Request received: %s %s", r.Method, r.URL.RequestURI())

	setCORSHeaders(w.Header())

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if urlPath == faviconPath {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	primary, ok := s.resolve(urlPath)
	if !ok {
		s.logger.Printf("%s: %s escapes %s", notFound("Rejected"), primary, s.baseDir)
		s.writeNotFound(w, urlPath)
		return
	}
	s.logger.Printf("Looking for file: %s", primary)

	for i, c := range s.candidates(urlPath, primary) {
		if i > 0 {
			s.logger.Printf("Trying fallback: %s", c.Path)
		}
		if !exists(c.Path) {
			s.logger.Printf("%s: %s", notFound("File not found"), c.Path)
			continue
		}
		s.serveFile(w, c)
		return
	}

	s.writeNotFound(w, urlPath)
}

// resolve maps a request path onto the base directory. The second result is
// false only when strict paths are on and the result lies outside the base.
func (s *Responder) resolve(urlPath string) (string, bool) {
	if urlPath == "/" {
		return filepath.Join(s.baseDir, s.indexFile), true
	}
	p := filepath.Join(s.baseDir, urlPath)
	if s.strictPaths && !within(s.baseDir, p) {
		return p, false
	}
	return p, true
}

// Locate returns the first existing file a GET for urlPath would be answered
// from. It does not log and does not apply the favicon rule.
func (s *Responder) Locate(urlPath string) (Candidate, bool) {
	primary, ok := s.resolve(urlPath)
	if !ok {
		return Candidate{}, false
	}
	for _, c := range s.candidates(urlPath, primary) {
		if exists(c.Path) {
			return c, true
		}
	}
	return Candidate{}, false
}

func (s *Responder) candidates(urlPath, primary string) []Candidate {
	first := Candidate{Path: primary}
	if urlPath != s.fallbackPath {
		return []Candidate{first}
	}
	return append([]Candidate{first}, s.fallbacks...)
}

func (s *Responder) serveFile(w http.ResponseWriter, c Candidate) {
	content, err := os.ReadFile(c.Path)
	if err != nil {
		code := errorCode(err)
		s.logger.Printf("%s: %s (%s)", failed("Error reading file"), c.Path, code)
		writeText(w, http.StatusInternalServerError, "Server Error: "+code)
		return
	}

	contentType := c.contentType()
	s.logger.Print(sizes.Sprintf("%s: %s as %s (%d bytes)", served("Serving file"), c.Path, contentType, len(content)))

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

func (s *Responder) writeNotFound(w http.ResponseWriter, urlPath string) {
	writeText(w, http.StatusNotFound, "File "+urlPath+" not found!")
}

// Candidate is one on-disk location a request may be answered from.
type Candidate struct {
	Path string
	// ContentType overrides the extension lookup when set.
	ContentType string
}

func (c Candidate) contentType() string {
	if c.ContentType != "" {
		return c.ContentType
	}
	return mime.TypeByPath(c.Path)
}

func setCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

// writeText leaves Content-Type unset so net/http picks its default.
func writeText(w http.ResponseWriter, status int, body string) {
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func within(base, target string) bool {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
