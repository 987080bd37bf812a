package wardley

// NormalizedMax is the upper end of both semantic axes.
const NormalizedMax = 100.0

// Project converts normalized axis values (0..100) into viewport pixel space.
//
// Values outside [0,100] are not rejected; they extrapolate linearly and
// land outside the visible viewport. No rounding is applied.
func Project(normalizedX, normalizedY, viewportWidth, viewportHeight float64) (pixelX, pixelY float64) {
	pixelX = (normalizedX / NormalizedMax) * viewportWidth
	pixelY = (normalizedY / NormalizedMax) * viewportHeight
	return
}

// Unproject is the inverse of Project. The viewport must be non-zero.
func Unproject(pixelX, pixelY, viewportWidth, viewportHeight float64) (normalizedX, normalizedY float64) {
	normalizedX = pixelX / viewportWidth * NormalizedMax
	normalizedY = pixelY / viewportHeight * NormalizedMax
	return
}

// Viewport is the pixel size of the display surface the map is laid out for.
type Viewport struct {
	Width, Height float64
}

// Validate returns a *ConfigError if either dimension is not positive.
func (v Viewport) Validate() error {
	if !(v.Width > 0) {
		return &ConfigError{Field: "viewport width", Value: v.Width, Reason: "must be > 0"}
	}
	if !(v.Height > 0) {
		return &ConfigError{Field: "viewport height", Value: v.Height, Reason: "must be > 0"}
	}
	return nil
}

// Project maps a normalized position into this viewport's pixel space.
func (v Viewport) Project(p Vec2) Vec2 {
	x, y := Project(p.X, p.Y, v.Width, v.Height)
	return Vec2{X: x, Y: y}
}

// Unproject maps a pixel position back into normalized coordinates.
func (v Viewport) Unproject(p Vec2) Vec2 {
	x, y := Unproject(p.X, p.Y, v.Width, v.Height)
	return Vec2{X: x, Y: y}
}
