package wardley

import (
	"errors"
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func newTestCamera(t *testing.T, layout Layout) *Camera {
	t.Helper()
	cam, err := NewCamera(1000, 800, Viewport{Width: 1000, Height: 800}, CameraOptions{Layout: layout})
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	return cam
}

func TestCameraDefaults(t *testing.T) {
	cam := newTestCamera(t, LayoutOrigin)
	if cam.Zoom() != 1 {
		t.Errorf("Zoom = %f, want 1", cam.Zoom())
	}
	lo, hi := cam.ZoomBounds()
	if lo != DefaultMinZoom || hi != DefaultMaxZoom {
		t.Errorf("ZoomBounds = (%f,%f), want (%f,%f)", lo, hi, DefaultMinZoom, DefaultMaxZoom)
	}
}

func TestCameraOriginCorners(t *testing.T) {
	cam := newTestCamera(t, LayoutOrigin)

	// Y up: the world origin is the bottom-left corner of the screen.
	sx, sy := cam.WorldToScreen(0, 0)
	if !approxEqual(sx, 0, epsilon) || !approxEqual(sy, 800, epsilon) {
		t.Errorf("WorldToScreen(0,0) = (%f,%f), want (0,800)", sx, sy)
	}
	sx, sy = cam.WorldToScreen(1000, 800)
	if !approxEqual(sx, 1000, epsilon) || !approxEqual(sy, 0, epsilon) {
		t.Errorf("WorldToScreen(1000,800) = (%f,%f), want (1000,0)", sx, sy)
	}
	sx, sy = cam.WorldToScreen(500, 400)
	if !approxEqual(sx, 500, epsilon) || !approxEqual(sy, 400, epsilon) {
		t.Errorf("WorldToScreen(500,400) = (%f,%f), want (500,400)", sx, sy)
	}
}

func TestCameraSymmetricLayout(t *testing.T) {
	cam := newTestCamera(t, LayoutSymmetric)

	// [-W,W]x[-H,H] is stretched over the screen: the origin is centered.
	sx, sy := cam.WorldToScreen(0, 0)
	if !approxEqual(sx, 500, epsilon) || !approxEqual(sy, 400, epsilon) {
		t.Errorf("WorldToScreen(0,0) = (%f,%f), want (500,400)", sx, sy)
	}
	sx, sy = cam.WorldToScreen(1000, 800)
	if !approxEqual(sx, 1000, epsilon) || !approxEqual(sy, 0, epsilon) {
		t.Errorf("WorldToScreen(1000,800) = (%f,%f), want (1000,0)", sx, sy)
	}
	span := cam.WorldSpan()
	if span != (Rect{X: -1000, Y: -800, Width: 2000, Height: 1600}) {
		t.Errorf("WorldSpan = %v", span)
	}
}

func TestCameraZoomAboutCenter(t *testing.T) {
	cam := newTestCamera(t, LayoutOrigin)
	cam.SetZoom(2)

	sx, sy := cam.WorldToScreen(500, 400)
	if !approxEqual(sx, 500, epsilon) || !approxEqual(sy, 400, epsilon) {
		t.Errorf("center moved under zoom: (%f,%f)", sx, sy)
	}
	sx, sy = cam.WorldToScreen(750, 600)
	if !approxEqual(sx, 1000, epsilon) || !approxEqual(sy, 0, epsilon) {
		t.Errorf("WorldToScreen(750,600) at zoom 2 = (%f,%f), want (1000,0)", sx, sy)
	}

	vb := cam.VisibleBounds()
	if !approxEqual(vb.X, 250, epsilon) || !approxEqual(vb.Width, 500, epsilon) {
		t.Errorf("VisibleBounds = %v, want x 250..750", vb)
	}
	if !approxEqual(vb.Y, 200, epsilon) || !approxEqual(vb.Height, 400, epsilon) {
		t.Errorf("VisibleBounds = %v, want y 200..600", vb)
	}
}

func TestCameraZoomClamped(t *testing.T) {
	cam := newTestCamera(t, LayoutOrigin)

	if got := cam.SetZoom(100); got != DefaultMaxZoom {
		t.Errorf("SetZoom(100) = %f, want %f", got, DefaultMaxZoom)
	}
	if got := cam.SetZoom(0.001); got != DefaultMinZoom {
		t.Errorf("SetZoom(0.001) = %f, want %f", got, DefaultMinZoom)
	}
	if got := cam.SetZoom(-1); got != DefaultMinZoom {
		t.Errorf("SetZoom(-1) = %f, want unchanged %f", got, DefaultMinZoom)
	}
	if got := cam.SetZoom(math.NaN()); got != DefaultMinZoom {
		t.Errorf("SetZoom(NaN) = %f, want unchanged %f", got, DefaultMinZoom)
	}
	cam.ResetZoom()
	if cam.Zoom() != 1 {
		t.Errorf("ResetZoom: Zoom = %f, want 1", cam.Zoom())
	}
}

func TestCameraZoomBy(t *testing.T) {
	cam := newTestCamera(t, LayoutOrigin)
	cam.ZoomBy(2)
	cam.ZoomBy(1.5)
	if !approxEqual(cam.Zoom(), 3, epsilon) {
		t.Errorf("Zoom = %f, want 3", cam.Zoom())
	}
}

func TestCameraRoundTrip(t *testing.T) {
	for _, layout := range []Layout{LayoutOrigin, LayoutSymmetric} {
		cam := newTestCamera(t, layout)
		cam.SetZoom(1.7)
		for _, p := range []Vec2{{0, 0}, {123, 456}, {1000, 800}, {-50, 30}} {
			sx, sy := cam.WorldToScreen(p.X, p.Y)
			wx, wy := cam.ScreenToWorld(sx, sy)
			if !approxEqual(wx, p.X, 1e-6) || !approxEqual(wy, p.Y, 1e-6) {
				t.Errorf("%v: roundtrip %v -> (%f,%f)", layout, p, wx, wy)
			}
		}
	}
}

func TestCameraResize(t *testing.T) {
	cam := newTestCamera(t, LayoutOrigin)
	cam.SetZoom(2)
	cam.Resize(500, 400, Viewport{Width: 500, Height: 400})

	if cam.Zoom() != 2 {
		t.Errorf("Zoom = %f, want 2 preserved", cam.Zoom())
	}
	if cam.ScreenSize() != (Vec2{500, 400}) {
		t.Errorf("ScreenSize = %v, want (500,400)", cam.ScreenSize())
	}
	sx, sy := cam.WorldToScreen(250, 200)
	if !approxEqual(sx, 250, epsilon) || !approxEqual(sy, 200, epsilon) {
		t.Errorf("center after resize = (%f,%f), want (250,200)", sx, sy)
	}
}

func TestCameraViewMatrixCached(t *testing.T) {
	cam := newTestCamera(t, LayoutOrigin)
	a := cam.ViewMatrix()
	if cam.dirty {
		t.Error("camera should be clean after ViewMatrix")
	}
	b := cam.ViewMatrix()
	if a != b {
		t.Error("ViewMatrix should be stable while clean")
	}
	cam.SetZoom(2)
	if !cam.dirty {
		t.Error("SetZoom should mark the camera dirty")
	}
	if cam.ViewMatrix() == a {
		t.Error("ViewMatrix should change after zoom")
	}
}

func TestNewCameraInvalid(t *testing.T) {
	cases := []struct {
		name   string
		screen Vec2
		world  Viewport
		opts   CameraOptions
	}{
		{"zero screen", Vec2{0, 800}, Viewport{1000, 800}, CameraOptions{}},
		{"zero world", Vec2{1000, 800}, Viewport{1000, 0}, CameraOptions{}},
		{"negative min zoom", Vec2{1000, 800}, Viewport{1000, 800}, CameraOptions{MinZoom: -1}},
		{"inverted bounds", Vec2{1000, 800}, Viewport{1000, 800}, CameraOptions{MinZoom: 5, MaxZoom: 2}},
		{"unknown layout", Vec2{1000, 800}, Viewport{1000, 800}, CameraOptions{Layout: Layout(9)}},
	}
	for _, tc := range cases {
		_, err := NewCamera(tc.screen.X, tc.screen.Y, tc.world, tc.opts)
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("%s: err = %v, want ErrConfiguration", tc.name, err)
		}
	}
}
