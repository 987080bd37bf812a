package wardley

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Composition defaults.
const (
	DefaultGridLines   = 5
	DefaultNodeRadius  = 10.0
	DefaultLabelOffset = 15.0
	DefaultConnections = 10
	DefaultLineWidth   = 1.0
	DefaultAxisMargin  = 10.0
)

// ComposeOptions controls scene composition. Start from
// DefaultComposeOptions; counts are validated, not defaulted.
type ComposeOptions struct {
	// GridLines is the number of evenly spaced vertical reference lines (>= 2).
	GridLines int
	// NodeRadius is the fill disc radius; the outline disc is one unit larger.
	NodeRadius float64
	// LabelOffset is the distance from the marker center to the label anchor,
	// toward the top of the map.
	LabelOffset float64
	// LineWidth is the width of grid lines and connection edges, in world units.
	LineWidth float64
	// Connections is the number of random decorative edges (>= 0).
	Connections int
	// Rand supplies random draws for connections and for nodes without a
	// position. Nil uses a randomly seeded generator.
	Rand RandSource
}

// DefaultComposeOptions returns the standard map layout: five grid lines,
// radius 10 markers, labels 15 units above, ten random connections.
func DefaultComposeOptions() ComposeOptions {
	return ComposeOptions{
		GridLines:   DefaultGridLines,
		NodeRadius:  DefaultNodeRadius,
		LabelOffset: DefaultLabelOffset,
		LineWidth:   DefaultLineWidth,
		Connections: DefaultConnections,
	}
}

// Validate returns a *ConfigError for option values that would produce
// degenerate geometry.
func (o ComposeOptions) Validate() error {
	if o.GridLines < 2 {
		return &ConfigError{Field: "grid line count", Value: o.GridLines, Reason: "must be >= 2"}
	}
	if o.Connections < 0 {
		return &ConfigError{Field: "connection count", Value: o.Connections, Reason: "must be >= 0"}
	}
	if !(o.NodeRadius > 0) {
		return &ConfigError{Field: "node radius", Value: o.NodeRadius, Reason: "must be > 0"}
	}
	if !(o.LineWidth > 0) {
		return &ConfigError{Field: "line width", Value: o.LineWidth, Reason: "must be > 0"}
	}
	return nil
}

// GridLine is a vertical reference line in pixel layout space.
type GridLine struct {
	From, To Vec2
}

// GridLines returns n evenly spaced vertical lines spanning the full height.
// Line i sits at x = i * width/(n-1), so the first and last lines lie on
// the viewport edges.
func GridLines(n int, width, height float64) ([]GridLine, error) {
	if n < 2 {
		return nil, &ConfigError{Field: "grid line count", Value: n, Reason: "must be >= 2"}
	}
	if err := (Viewport{Width: width, Height: height}).Validate(); err != nil {
		return nil, err
	}
	spacing := width / float64(n-1)
	lines := make([]GridLine, n)
	for i := range lines {
		x := float64(i) * spacing
		lines[i] = GridLine{From: Vec2{X: x, Y: height}, To: Vec2{X: x, Y: 0}}
	}
	return lines, nil
}

// Connections returns k decorative edges between the given nodes. Each edge
// picks index A uniformly, then redraws index B until it differs from A.
// Edges are neither unique nor guaranteed to connect the map.
func Connections(nodes []PlacedNode, k int, rng RandSource) ([]Edge, error) {
	if k < 0 {
		return nil, &ConfigError{Field: "connection count", Value: k, Reason: "must be >= 0"}
	}
	if k == 0 {
		return nil, nil
	}
	m := len(nodes)
	if m < 2 {
		return nil, &ConfigError{Field: "node count", Value: m, Reason: "random connections need at least 2 nodes"}
	}
	if rng == nil {
		return nil, &ConfigError{Field: "random source", Value: nil, Reason: "required for random connections"}
	}
	edges := make([]Edge, k)
	for i := range edges {
		a := rng.IntN(m)
		b := rng.IntN(m)
		for b == a {
			b = rng.IntN(m)
		}
		edges[i] = Edge{From: nodes[a].ID, To: nodes[b].ID}
	}
	return edges, nil
}

// Axis identifies one of the two semantic axes.
type Axis uint8

const (
	AxisEvolution  Axis = iota // horizontal
	AxisVisibility             // vertical
)

// AxisLabel is a fixed screen overlay naming an axis.
type AxisLabel struct {
	Text   string
	Axis   Axis
	Margin float64
}

// AxisLabels returns the two standard axis labels.
func AxisLabels() []AxisLabel {
	return []AxisLabel{
		{Text: "Evolution", Axis: AxisEvolution, Margin: DefaultAxisMargin},
		{Text: "Visibility", Axis: AxisVisibility, Margin: DefaultAxisMargin},
	}
}

// Placement returns where the label sits on a screen of the given size.
// Evolution is bottom-center; Visibility is left-center, rotated a quarter
// turn counter-clockwise so it reads bottom-to-top.
func (l AxisLabel) Placement(screenW, screenH float64) (pos Vec2, anchor Anchor, rotation float64) {
	switch l.Axis {
	case AxisVisibility:
		return Vec2{X: l.Margin, Y: screenH / 2}, AnchorTopCenter, -math.Pi / 2
	default:
		return Vec2{X: screenW / 2, Y: screenH - l.Margin}, AnchorBottomCenter, 0
	}
}

// Connection is an edge with its endpoints resolved in pixel layout space.
type Connection struct {
	Edge
	Start, End Vec2
	// Random marks decorative edges generated at composition time.
	Random bool
}

// Composition is the renderable description of a map: everything needed
// to build the scene graph or an export, in pixel layout space.
type Composition struct {
	Title      string
	Viewport   Viewport
	Options    ComposeOptions
	Grid       []GridLine
	Nodes      []PlacedNode
	Edges      []Connection
	AxisLabels []AxisLabel

	index map[string]int
}

// Compose validates its inputs and lays the document out for vp.
// Node placement and random connections consume opts.Rand in that order.
func Compose(doc *MapDocument, vp Viewport, opts ComposeOptions) (*Composition, error) {
	if doc == nil {
		return nil, &ConfigError{Field: "document", Value: nil, Reason: "must not be nil"}
	}
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	nodes, err := placeNodes(doc.Nodes, vp, opts.Rand)
	if err != nil {
		return nil, err
	}
	grid, err := GridLines(opts.GridLines, vp.Width, vp.Height)
	if err != nil {
		return nil, err
	}
	random, err := Connections(nodes, opts.Connections, opts.Rand)
	if err != nil {
		return nil, err
	}

	c := &Composition{
		Title:      doc.Title,
		Viewport:   vp,
		Options:    opts,
		Grid:       grid,
		Nodes:      nodes,
		AxisLabels: AxisLabels(),
	}
	c.buildIndex()

	c.Edges = make([]Connection, 0, len(doc.Edges)+len(random))
	for _, e := range doc.Edges {
		c.Edges = append(c.Edges, Connection{Edge: e})
	}
	for _, e := range random {
		c.Edges = append(c.Edges, Connection{Edge: e, Random: true})
	}
	c.resolveEdges()
	return c, nil
}

// Relayout re-projects the composition for a new viewport: grid lines are
// regenerated, pixel positions are recomputed from the normalized
// coordinates and edge endpoints follow. Random choices are kept.
func (c *Composition) Relayout(vp Viewport) error {
	grid, err := GridLines(c.Options.GridLines, vp.Width, vp.Height)
	if err != nil {
		return fmt.Errorf("relayout: %w", err)
	}
	c.Viewport = vp
	c.Grid = grid
	for i := range c.Nodes {
		c.Nodes[i].Pixel = vp.Project(c.Nodes[i].Normalized)
	}
	c.resolveEdges()
	return nil
}

// Node returns the placed node with the given id.
func (c *Composition) Node(id string) (PlacedNode, bool) {
	i, ok := c.index[id]
	if !ok {
		return PlacedNode{}, false
	}
	return c.Nodes[i], true
}

// LabelAnchor returns the world position a node's label is anchored to.
func (c *Composition) LabelAnchor(n PlacedNode) Vec2 {
	return Vec2{X: n.Pixel.X, Y: n.Pixel.Y + c.Options.LabelOffset}
}

func (c *Composition) buildIndex() {
	c.index = make(map[string]int, len(c.Nodes))
	for i, n := range c.Nodes {
		c.index[n.ID] = i
	}
}

func (c *Composition) resolveEdges() {
	for i := range c.Edges {
		e := &c.Edges[i]
		e.Start = c.Nodes[c.index[e.From]].Pixel
		e.End = c.Nodes[c.index[e.To]].Pixel
	}
}
