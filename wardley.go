package wardley

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorBlack is used for grid lines, connection edges and marker outlines.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorWhite fills node markers.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBackground is the default clear color (#F4F4F4).
	ColorBackground = Color{0xF4 / 255.0, 0xF4 / 255.0, 0xF4 / 255.0, 1}
)

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	b := []byte("#000000")
	for i, v := range [3]float64{c.R, c.G, c.B} {
		n := uint8(clamp01(v)*255 + 0.5)
		b[1+i*2] = digits[n>>4]
		b[2+i*2] = digits[n&0x0f]
	}
	return string(b)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeMesh                      // renders triangles via DrawTriangles32
)

// Layout selects which world rectangle the camera shows at zoom 1.
// Grid lines, markers and labels all share the chosen convention.
type Layout uint8

const (
	// LayoutOrigin shows [0,W] x [0,H]: the map fills the viewport.
	LayoutOrigin Layout = iota
	// LayoutSymmetric shows [-W,W] x [-H,H]: the map occupies the
	// upper-right quadrant around a centered origin.
	LayoutSymmetric
)

// String returns the config name of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutOrigin:
		return "origin"
	case LayoutSymmetric:
		return "symmetric"
	default:
		return "unknown"
	}
}

// ParseLayout converts a config name into a Layout.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "", "origin":
		return LayoutOrigin, nil
	case "symmetric":
		return LayoutSymmetric, nil
	default:
		return 0, &ConfigError{Field: "layout", Value: s, Reason: `must be "origin" or "symmetric"`}
	}
}

// Anchor selects which point of a label's text box sits on its anchor position.
type Anchor uint8

const (
	AnchorBottomCenter Anchor = iota // text centered horizontally, bottom edge on the anchor
	AnchorTopCenter                  // text centered horizontally, top edge on the anchor
	AnchorCenter                     // text centered on the anchor
	AnchorTopLeft                    // top-left corner on the anchor
)
