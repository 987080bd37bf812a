package wardley

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputEventType identifies a kind of camera gesture.
type InputEventType uint8

const (
	EventWheel  InputEventType = iota // mouse wheel; Delta in notches, positive zooms in
	EventPinch                        // two-finger pinch; Delta is the scale change since the last frame
	EventRotate                       // two-finger twist; Delta in radians
	EventPan                          // primary-button or one-finger drag; DX, DY in pixels
)

func (t InputEventType) String() string {
	switch t {
	case EventWheel:
		return "wheel"
	case EventPinch:
		return "pinch"
	case EventRotate:
		return "rotate"
	case EventPan:
		return "pan"
	default:
		return "unknown"
	}
}

// InputEvent is a single gesture reported by an InputSource.
type InputEvent struct {
	Type InputEventType
	// X, Y is the screen position of the gesture (cursor or pinch center).
	X, Y   float64
	Delta  float64
	DX, DY float64
}

// InputSource supplies gesture events once per frame. Poll appends the
// events observed since the previous call to buf and returns it.
type InputSource interface {
	Poll(buf []InputEvent) []InputEvent
}

// --- Pinch state ---

type pinchState struct {
	active    bool
	prevDist  float64
	prevAngle float64
}

// step feeds the current positions of the two touching pointers and
// returns the scale and rotation deltas since the previous step. ok is
// false on the first step of a gesture.
func (p *pinchState) step(p0, p1 Vec2) (scaleDelta, rotDelta float64, ok bool) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	angle := math.Atan2(dy, dx)

	if !p.active {
		p.active = true
		p.prevDist = dist
		p.prevAngle = angle
		return 0, 0, false
	}
	if p.prevDist > 0 {
		scaleDelta = dist/p.prevDist - 1.0
	}
	rotDelta = angle - p.prevAngle
	p.prevDist = dist
	p.prevAngle = angle
	return scaleDelta, rotDelta, true
}

func (p *pinchState) end() {
	p.active = false
}

// EbitenInput reads the mouse wheel, mouse drags and two-finger touch
// gestures from Ebitengine. It reports every gesture it sees; deciding
// which ones move the camera is the Controller's job.
type EbitenInput struct {
	touchIDs []ebiten.TouchID
	pinch    pinchState

	dragging     bool
	lastX, lastY int
}

// NewEbitenInput creates an input source backed by Ebitengine's input state.
// It must be polled from the game's Update.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// Poll implements InputSource.
func (in *EbitenInput) Poll(buf []InputEvent) []InputEvent {
	mx, my := ebiten.CursorPosition()

	if _, wy := ebiten.Wheel(); wy != 0 {
		buf = append(buf, InputEvent{Type: EventWheel, X: float64(mx), Y: float64(my), Delta: wy})
	}

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	if len(in.touchIDs) == 2 {
		x0, y0 := ebiten.TouchPosition(in.touchIDs[0])
		x1, y1 := ebiten.TouchPosition(in.touchIDs[1])
		p0 := Vec2{X: float64(x0), Y: float64(y0)}
		p1 := Vec2{X: float64(x1), Y: float64(y1)}
		if scale, rot, ok := in.pinch.step(p0, p1); ok {
			cx := (p0.X + p1.X) / 2
			cy := (p0.Y + p1.Y) / 2
			if scale != 0 {
				buf = append(buf, InputEvent{Type: EventPinch, X: cx, Y: cy, Delta: scale})
			}
			if rot != 0 {
				buf = append(buf, InputEvent{Type: EventRotate, X: cx, Y: cy, Delta: rot})
			}
		}
		in.dragging = false
		return buf
	}
	in.pinch.end()

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if in.dragging && (mx != in.lastX || my != in.lastY) {
			buf = append(buf, InputEvent{
				Type: EventPan, X: float64(mx), Y: float64(my),
				DX: float64(mx - in.lastX), DY: float64(my - in.lastY),
			})
		}
		in.dragging = true
		in.lastX, in.lastY = mx, my
	} else {
		in.dragging = false
	}
	return buf
}
