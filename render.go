package wardley

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Render layers, bottom to top.
const (
	LayerGrid  uint8 = iota // vertical reference lines
	LayerEdges              // document and random connections
	LayerNodes              // node markers
)

// RenderCommand is a single draw instruction emitted during scene traversal.
type RenderCommand struct {
	Transform   [6]float32
	RenderLayer uint8
	treeOrder   int // assigned during traversal for stable sort

	// Slice headers, not copies of vertex data.
	meshVerts []ebiten.Vertex
	meshInds  []uint16
	meshImage *ebiten.Image

	node *Node
}

// Node returns the mesh node the command was emitted for.
func (c *RenderCommand) Node() *Node { return c.node }

// affine32 converts a [6]float64 affine matrix to [6]float32.
func affine32(m [6]float64) [6]float32 {
	return [6]float32{float32(m[0]), float32(m[1]), float32(m[2]), float32(m[3]), float32(m[4]), float32(m[5])}
}

// traverse walks the node tree depth-first and emits render commands for
// visible mesh nodes whose world bounds overlap the camera's visible
// rectangle. World transforms must already be current.
func (s *Scene) traverse(n *Node, view [6]float64, visible Rect, treeOrder *int) {
	if !n.Visible {
		return
	}

	if n.Type == NodeTypeMesh && len(n.Vertices) > 0 && len(n.Indices) > 0 {
		if !worldBounds(n).Intersects(visible) {
			s.culled++
		} else {
			screen := multiplyAffine(view, n.worldTransform)
			dst := ensureTransformedVerts(n)
			transformVertices(n.Vertices, dst, screen, n.Color)
			*treeOrder++
			s.commands = append(s.commands, RenderCommand{
				Transform:   affine32(screen),
				RenderLayer: n.RenderLayer,
				treeOrder:   *treeOrder,
				meshVerts:   dst,
				meshInds:    n.Indices,
				meshImage:   n.MeshImage,
				node:        n,
			})
		}
	}

	if len(n.children) == 0 {
		return
	}
	children := n.children
	if !n.childrenSorted {
		s.rebuildSortedChildren(n)
	}
	if n.sortedChildren != nil {
		children = n.sortedChildren
	}
	for _, child := range children {
		s.traverse(child, view, visible, treeOrder)
	}
}

// worldBounds returns the world-space AABB of a mesh node.
func worldBounds(n *Node) Rect {
	return transformRect(n.worldTransform, n.MeshBounds())
}

// rebuildSortedChildren rebuilds the ZIndex-sorted traversal order for a node.
// Stable insertion sort; O(n) when already sorted.
func (s *Scene) rebuildSortedChildren(n *Node) {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

// buildCommands refreshes world transforms, then traverses the tree with
// the camera's view matrix and sorts the result. Meshes outside the
// camera's visible bounds are skipped; s.culled counts them.
func (s *Scene) buildCommands() []RenderCommand {
	s.commands = s.commands[:0]
	s.culled = 0
	updateWorldTransform(s.root, identityTransform, false)

	treeOrder := 0
	s.traverse(s.root, s.camera.ViewMatrix(), s.camera.VisibleBounds(), &treeOrder)
	s.mergeSort()
	return s.commands
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should sort before or at the same position as b.
// Using <= for treeOrder ensures stability.
func commandLessOrEqual(a, b RenderCommand) bool {
	if a.RenderLayer != b.RenderLayer {
		return a.RenderLayer < b.RenderLayer
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts s.commands in-place using s.sortBuf as scratch space.
// Bottom-up, so no allocations once the sort buffer reaches its high-water mark.
func (s *Scene) mergeSort() {
	n := len(s.commands)
	if n <= 1 {
		return
	}
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]RenderCommand, n)
	}
	s.sortBuf = s.sortBuf[:n]

	a := s.commands
	b := s.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(s.commands, s.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []RenderCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
