package wardley

import "fmt"

// RandSource supplies uniform random draws. *rand.Rand from math/rand/v2
// satisfies it; tests pass a seeded generator to get exact results.
type RandSource interface {
	IntN(n int) int
	Float64() float64
}

// MapNode is one entity on the map. Position holds the normalized
// (Evolution, Visibility) coordinates; nil means the document gives none
// and the node is placed randomly at composition time.
type MapNode struct {
	ID       string
	Name     string
	Position *Vec2
}

// Edge connects two nodes by id. From and To must differ.
type Edge struct {
	From, To string
}

// MapDocument is the map definition consumed by the composer. It is passed
// explicitly into Compose; there is no package-level map state.
type MapDocument struct {
	Title string
	Nodes []MapNode
	Edges []Edge
}

// At returns a Vec2 pointer, for building MapNode positions inline.
func At(evolution, visibility float64) *Vec2 {
	return &Vec2{X: evolution, Y: visibility}
}

// Validate checks node ids and document edges. Duplicate edges are allowed.
func (d *MapDocument) Validate() error {
	seen := make(map[string]struct{}, len(d.Nodes))
	for i, n := range d.Nodes {
		if n.ID == "" {
			return &ConfigError{Field: "node id", Value: fmt.Sprintf("#%d", i), Reason: "must not be empty"}
		}
		if _, dup := seen[n.ID]; dup {
			return &ConfigError{Field: "node id", Value: n.ID, Reason: "duplicate"}
		}
		seen[n.ID] = struct{}{}
	}
	for _, e := range d.Edges {
		if e.From == e.To {
			return &ConfigError{Field: "edge", Value: e.From + "->" + e.To, Reason: "self-loops are not allowed"}
		}
		if _, ok := seen[e.From]; !ok {
			return &ConfigError{Field: "edge", Value: e.From + "->" + e.To, Reason: fmt.Sprintf("unknown node %q", e.From)}
		}
		if _, ok := seen[e.To]; !ok {
			return &ConfigError{Field: "edge", Value: e.From + "->" + e.To, Reason: fmt.Sprintf("unknown node %q", e.To)}
		}
	}
	return nil
}

// PlacedNode is a node with resolved normalized coordinates and the pixel
// position derived from them. Normalized is the source of truth; Pixel is
// recomputed whenever the viewport changes.
type PlacedNode struct {
	ID         string
	Name       string
	Normalized Vec2
	Pixel      Vec2
	Randomized bool
}

// placeNodes resolves every node's normalized coordinates. Nodes without a
// position draw two uniform values in [0,100) from rng, in document order;
// nodes with a position never consume draws.
func placeNodes(nodes []MapNode, vp Viewport, rng RandSource) ([]PlacedNode, error) {
	placed := make([]PlacedNode, len(nodes))
	for i, n := range nodes {
		p := PlacedNode{ID: n.ID, Name: n.Name}
		if n.Position != nil {
			p.Normalized = *n.Position
		} else {
			if rng == nil {
				return nil, &ConfigError{Field: "random source", Value: nil, Reason: fmt.Sprintf("node %q has no position", n.ID)}
			}
			p.Normalized = Vec2{X: rng.Float64() * NormalizedMax, Y: rng.Float64() * NormalizedMax}
			p.Randomized = true
		}
		p.Pixel = vp.Project(p.Normalized)
		placed[i] = p
	}
	return placed, nil
}
