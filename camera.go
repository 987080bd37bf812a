package wardley

import "math"

// Default zoom bounds. Zoom below MinZoom or above MaxZoom produces
// degenerate projections, so SetZoom clamps into this range.
const (
	DefaultMinZoom = 0.1
	DefaultMaxZoom = 10.0
)

// CameraOptions configures a Camera. Zero values select the defaults.
type CameraOptions struct {
	Layout  Layout
	MinZoom float64
	MaxZoom float64
}

func (o CameraOptions) withDefaults() CameraOptions {
	if o.MinZoom == 0 {
		o.MinZoom = DefaultMinZoom
	}
	if o.MaxZoom == 0 {
		o.MaxZoom = DefaultMaxZoom
	}
	return o
}

// Validate returns a *ConfigError for non-positive or inverted zoom bounds.
func (o CameraOptions) Validate() error {
	o = o.withDefaults()
	if !(o.MinZoom > 0) {
		return &ConfigError{Field: "min zoom", Value: o.MinZoom, Reason: "must be > 0"}
	}
	if o.MinZoom > o.MaxZoom {
		return &ConfigError{Field: "zoom bounds", Value: [2]float64{o.MinZoom, o.MaxZoom}, Reason: "min must not exceed max"}
	}
	if o.Layout != LayoutOrigin && o.Layout != LayoutSymmetric {
		return &ConfigError{Field: "layout", Value: o.Layout, Reason: "unknown layout"}
	}
	return nil
}

// Camera is an orthographic view of the map's pixel layout space.
//
// World space has Y pointing up (Visibility grows toward the top of the
// screen). At zoom 1 the visible rectangle is [0,W]x[0,H] for LayoutOrigin
// or [-W,W]x[-H,H] for LayoutSymmetric, stretched over the screen. Zoom
// scales about the fixed center of that rectangle. The camera cannot be
// rotated or panned: the axes have fixed meaning and the overlay labels
// and grid must stay aligned with them.
type Camera struct {
	layout  Layout
	zoom    float64
	minZoom float64
	maxZoom float64

	screen Vec2     // screen size in pixels
	world  Viewport // pixel layout size the map was composed for

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool
}

// NewCamera creates a camera at zoom 1 for the given screen and layout size.
func NewCamera(screenW, screenH float64, world Viewport, opts CameraOptions) (*Camera, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := world.Validate(); err != nil {
		return nil, err
	}
	if err := (Viewport{Width: screenW, Height: screenH}).Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	return &Camera{
		layout:  opts.Layout,
		zoom:    1,
		minZoom: opts.MinZoom,
		maxZoom: opts.MaxZoom,
		screen:  Vec2{X: screenW, Y: screenH},
		world:   world,
		dirty:   true,
	}, nil
}

// Resize updates the screen and layout sizes and recomputes the projection.
// Zoom is preserved.
func (c *Camera) Resize(screenW, screenH float64, world Viewport) {
	c.screen = Vec2{X: screenW, Y: screenH}
	c.world = world
	c.dirty = true
}

// Layout returns the camera's layout convention.
func (c *Camera) Layout() Layout { return c.layout }

// Zoom returns the current zoom factor (1 = no zoom, >1 = zoom in).
func (c *Camera) Zoom() float64 { return c.zoom }

// ZoomBounds returns the inclusive zoom range.
func (c *Camera) ZoomBounds() (minZoom, maxZoom float64) { return c.minZoom, c.maxZoom }

// SetZoom sets the zoom factor, clamped to the zoom bounds, and returns the
// value applied. NaN and non-positive values are ignored.
func (c *Camera) SetZoom(z float64) float64 {
	if math.IsNaN(z) || z <= 0 {
		return c.zoom
	}
	z = math.Max(c.minZoom, math.Min(z, c.maxZoom))
	if z != c.zoom {
		c.zoom = z
		c.dirty = true
	}
	return c.zoom
}

// ZoomBy multiplies the zoom factor by factor, clamped to the zoom bounds.
func (c *Camera) ZoomBy(factor float64) float64 {
	return c.SetZoom(c.zoom * factor)
}

// ResetZoom returns to zoom 1 (clamped if 1 lies outside the bounds).
func (c *Camera) ResetZoom() {
	c.SetZoom(1)
}

// ScreenSize returns the screen size the camera projects onto.
func (c *Camera) ScreenSize() Vec2 { return c.screen }

// WorldSpan returns the world rectangle visible at zoom 1.
func (c *Camera) WorldSpan() Rect {
	w, h := c.world.Width, c.world.Height
	if c.layout == LayoutSymmetric {
		return Rect{X: -w, Y: -h, Width: 2 * w, Height: 2 * h}
	}
	return Rect{X: 0, Y: 0, Width: w, Height: h}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// screenX = scx + sx*(wx - cx)
// screenY = scy - sy*(wy - cy)
//
// where (cx, cy) is the span center, (scx, scy) the screen center and
// sx, sy = zoom * screen / span.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	span := c.WorldSpan()
	cx := span.X + span.Width/2
	cy := span.Y + span.Height/2
	sx := c.zoom * c.screen.X / span.Width
	sy := c.zoom * c.screen.Y / span.Height
	scx := c.screen.X / 2
	scy := c.screen.Y / 2

	c.viewMatrix = [6]float64{sx, 0, 0, -sy, scx - sx*cx, scy + sy*cy}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// ViewMatrix returns the world-to-screen affine matrix [a, b, c, d, tx, ty].
func (c *Camera) ViewMatrix() [6]float64 {
	return c.computeViewMatrix()
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// VisibleBounds returns the world-space rectangle currently on screen.
func (c *Camera) VisibleBounds() Rect {
	x0, y0 := c.ScreenToWorld(0, 0)
	x1, y1 := c.ScreenToWorld(c.screen.X, c.screen.Y)
	minX, maxX := math.Min(x0, x1), math.Max(x0, x1)
	minY, maxY := math.Min(y0, y1), math.Max(y0, y1)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
