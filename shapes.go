package wardley

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultDiscSegments is the number of rim vertices used for node markers.
const DefaultDiscSegments = 32

// NewDisc creates an untextured filled circle mesh centered on the node's
// origin. Uses fan triangulation around a center vertex: segments+1
// vertices, 3*segments indices. Color comes from the node's Color field.
func NewDisc(name string, radius float64, segments int) *Node {
	if segments < 3 {
		segments = 3
	}
	verts := make([]ebiten.Vertex, segments+1)
	inds := make([]uint16, segments*3)

	verts[0] = whiteVertex(0, 0)
	step := 2 * math.Pi / float64(segments)
	for i := 0; i < segments; i++ {
		sin, cos := math.Sincos(float64(i) * step)
		verts[i+1] = whiteVertex(cos*radius, sin*radius)
	}

	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < segments; i++ {
		next := i + 2
		if next > segments {
			next = 1
		}
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(next)
	}

	return NewMesh(name, ensureWhitePixel(), verts, inds)
}

// NewLine creates a straight line mesh of the given width between two
// points, as a single quad (4 vertices, 6 indices).
func NewLine(name string, from, to Vec2, width float64) *Node {
	n := NewMesh(name, ensureWhitePixel(), make([]ebiten.Vertex, 4), make([]uint16, 6))
	SetLinePoints(n, from, to, width)
	return n
}

// SetLinePoints rebuilds a line mesh created by NewLine. The quad is offset
// by half the width on each side of the segment's perpendicular.
func SetLinePoints(n *Node, from, to Vec2, width float64) {
	nx, ny := perpendicular(from, to)
	halfW := width / 2

	if cap(n.Vertices) < 4 {
		n.Vertices = make([]ebiten.Vertex, 4)
	}
	n.Vertices = n.Vertices[:4]
	if cap(n.Indices) < 6 {
		n.Indices = make([]uint16, 6)
	}
	n.Indices = n.Indices[:6]

	n.Vertices[0] = whiteVertex(from.X+nx*halfW, from.Y+ny*halfW)
	n.Vertices[1] = whiteVertex(from.X-nx*halfW, from.Y-ny*halfW)
	n.Vertices[2] = whiteVertex(to.X+nx*halfW, to.Y+ny*halfW)
	n.Vertices[3] = whiteVertex(to.X-nx*halfW, to.Y-ny*halfW)

	copy(n.Indices, []uint16{0, 1, 2, 1, 3, 2})
	n.InvalidateMeshAABB()
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
// Degenerate segments fall back to a vertical normal.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// whiteVertex returns an opaque white vertex sampling the white pixel center.
func whiteVertex(x, y float64) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
	}
}
