// Package graph checks the Cytoscape.js elements file behind /graph.json.
//
// The file is produced by the concept graph generator as
//
//	{"nodes": [{"data": {"id": ..., "label": ...}}],
//	 "edges": [{"data": {"id": ..., "source": ..., "target": ...}}]}
//
// The server never rewrites it; Check only reports what a browser would trip
// over when it loads the graph.
package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Elements is the top-level Cytoscape.js elements object.
type Elements struct {
	Nodes []Element `json:"nodes"`
	Edges []Element `json:"edges"`
}

// Element wraps the data of a single node or edge.
type Element struct {
	Data Data `json:"data"`
}

// Data holds the fields the viewer reads. Source and Target are set on
// edges only; Type marks concept or problem nodes in newer files.
type Data struct {
	ID     string `json:"id"`
	Label  string `json:"label,omitempty"`
	Type   string `json:"type,omitempty"`
	Source string `json:"source,omitempty"`
	Target string `json:"target,omitempty"`
}

// Decode reads an elements object from r.
func Decode(r io.Reader) (*Elements, error) {
	var e Elements
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return nil, fmt.Errorf("decode elements: %w", err)
	}
	return &e, nil
}

// Problems lists structural defects: missing ids, duplicate ids and edges
// whose endpoints are not nodes. An empty result means the graph is usable.
func (e *Elements) Problems() []string {
	var problems []string
	nodes := make(map[string]bool, len(e.Nodes))
	for i, n := range e.Nodes {
		switch id := n.Data.ID; {
		case id == "":
			problems = append(problems, fmt.Sprintf("node %d has no id", i))
		case nodes[id]:
			problems = append(problems, fmt.Sprintf("duplicate node id %q", id))
		default:
			nodes[id] = true
		}
	}

	edges := make(map[string]bool, len(e.Edges))
	for i, edge := range e.Edges {
		d := edge.Data
		if d.ID == "" {
			problems = append(problems, fmt.Sprintf("edge %d has no id", i))
		} else if edges[d.ID] || nodes[d.ID] {
			problems = append(problems, fmt.Sprintf("duplicate edge id %q", d.ID))
		} else {
			edges[d.ID] = true
		}
		if !nodes[d.Source] {
			problems = append(problems, fmt.Sprintf("edge %d: unknown source %q", i, d.Source))
		}
		if !nodes[d.Target] {
			problems = append(problems, fmt.Sprintf("edge %d: unknown target %q", i, d.Target))
		}
	}
	return problems
}

// Check decodes the file at path and returns its problems.
func Check(path string) (*Elements, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	e, err := Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return e, e.Problems(), nil
}
