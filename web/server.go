// Package main serves the concept graph viewer and its data files.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/fatih/color"

	"github.com/f4ah6o/graphserve/internal/assets"
	"github.com/f4ah6o/graphserve/internal/config"
	"github.com/f4ah6o/graphserve/internal/graph"
	"github.com/f4ah6o/graphserve/internal/static"
)

func main() {
	configPath := flag.String("config", "", "Optional TOML or YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	checkAssets(cfg)

	handler := static.New(cfg, log.Default())
	checkGraph(handler, "/"+cfg.FallbackFile)

	color.New(color.FgCyan).Printf("🌐 Serving %s (fallback %s)\n", cfg.BaseDir, cfg.AltDir)
	log.Printf("Server running at http://localhost:%d/", cfg.Port)

	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// checkAssets warns about files the index page loads but the base directory
// lacks. It never stops the server.
func checkAssets(cfg config.Config) {
	missing, err := assets.Missing(cfg.BaseDir, cfg.IndexFile)
	if err != nil {
		log.Printf("%s: asset check skipped: %v", color.YellowString("Warning"), err)
		return
	}
	for _, ref := range missing {
		log.Printf("%s: %s references missing file %s", color.YellowString("Warning"), cfg.IndexFile, ref.Raw)
	}
}

// checkGraph validates the elements file that urlPath currently resolves to.
func checkGraph(handler *static.Responder, urlPath string) {
	c, ok := handler.Locate(urlPath)
	if !ok {
		log.Printf("%s: no file for %s yet", color.YellowString("Warning"), urlPath)
		return
	}
	e, problems, err := graph.Check(c.Path)
	if err != nil {
		log.Printf("%s: %v", color.YellowString("Warning"), err)
		return
	}
	for _, p := range problems {
		log.Printf("%s: %s: %s", color.YellowString("Warning"), c.Path, p)
	}
	log.Printf("Graph %s: %d nodes, %d edges", c.Path, len(e.Nodes), len(e.Edges))
}
