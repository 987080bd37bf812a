package wardley

import "math"

// DefaultWheelStep is the zoom factor applied per wheel notch.
const DefaultWheelStep = 1.1

// Controller applies gestures to a Camera. Zoom (wheel and pinch) is the
// only supported interaction: rotate and pan events are dropped so the
// grid, markers and axis labels stay aligned.
type Controller struct {
	Camera *Camera
	// WheelStep is the zoom factor per wheel notch. Zero means DefaultWheelStep.
	WheelStep float64
}

// NewController creates a controller for cam with the default wheel step.
func NewController(cam *Camera) *Controller {
	return &Controller{Camera: cam, WheelStep: DefaultWheelStep}
}

// Handle applies ev to the camera and reports whether it was consumed.
func (c *Controller) Handle(ev InputEvent) bool {
	if c.Camera == nil {
		return false
	}
	switch ev.Type {
	case EventWheel:
		step := c.WheelStep
		if step <= 1 {
			step = DefaultWheelStep
		}
		c.Camera.ZoomBy(math.Pow(step, ev.Delta))
		return true
	case EventPinch:
		factor := 1 + ev.Delta
		if factor <= 0 {
			return false
		}
		c.Camera.ZoomBy(factor)
		return true
	default:
		// EventRotate, EventPan: suppressed.
		return false
	}
}

// HandleAll applies every event in evs and returns how many were consumed.
func (c *Controller) HandleAll(evs []InputEvent) int {
	n := 0
	for _, ev := range evs {
		if c.Handle(ev) {
			n++
		}
	}
	return n
}
