package wardley

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LabelKind says what a label is attached to.
type LabelKind uint8

const (
	LabelNode LabelKind = iota // follows a node marker through the camera
	LabelAxis                  // fixed to the screen edge
	LabelFPS                   // fixed to the top-left corner
)

// Label is a single line of overlay text positioned in screen space.
type Label struct {
	Kind     LabelKind
	Text     string
	Position Vec2 // screen position of the anchor point
	Anchor   Anchor
	Rotation float64 // radians, applied about the anchor point
	Color    Color
	Visible  bool

	nodeID string
	axis   AxisLabel
}

// NodeID returns the id of the node a LabelNode label belongs to.
func (l *Label) NodeID() string { return l.nodeID }

// Overlay draws the text layer on top of the rendered map. Node labels are
// re-anchored every frame so they track zoom; axis labels follow the screen
// size only.
type Overlay struct {
	font   *TTFFont
	labels []*Label
	byNode map[string]*Label
	fps    *FPSCounter
}

// NewOverlay creates labels for every node and axis of comp.
func NewOverlay(font *TTFFont, comp *Composition) *Overlay {
	o := &Overlay{
		font:   font,
		byNode: make(map[string]*Label, len(comp.Nodes)),
	}
	for _, n := range comp.Nodes {
		l := &Label{
			Kind:    LabelNode,
			Text:    n.Name,
			Anchor:  AnchorBottomCenter,
			Color:   ColorBlack,
			Visible: true,
			nodeID:  n.ID,
		}
		o.labels = append(o.labels, l)
		o.byNode[n.ID] = l
	}
	for _, a := range comp.AxisLabels {
		o.labels = append(o.labels, &Label{
			Kind:    LabelAxis,
			Text:    a.Text,
			Color:   ColorBlack,
			Visible: true,
			axis:    a,
		})
	}
	return o
}

// Labels returns every label in draw order. The returned slice MUST NOT be mutated.
func (o *Overlay) Labels() []*Label {
	return o.labels
}

// NodeLabel returns the label attached to the node with the given id.
func (o *Overlay) NodeLabel(id string) *Label {
	return o.byNode[id]
}

// SetFPS attaches or removes (nil) the FPS readout.
func (o *Overlay) SetFPS(c *FPSCounter) {
	o.fps = c
}

// Sync repositions every label for the current camera and composition.
func (o *Overlay) Sync(cam *Camera, comp *Composition) {
	screen := cam.ScreenSize()
	for _, l := range o.labels {
		switch l.Kind {
		case LabelNode:
			n, ok := comp.Node(l.nodeID)
			if !ok {
				l.Visible = false
				continue
			}
			a := comp.LabelAnchor(n)
			x, y := cam.WorldToScreen(a.X, a.Y)
			l.Position = Vec2{X: x, Y: y}
		case LabelAxis:
			l.Position, l.Anchor, l.Rotation = l.axis.Placement(screen.X, screen.Y)
		}
	}
}

// Draw renders every visible label onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.font == nil {
		return
	}
	for _, l := range o.labels {
		if l.Visible && l.Text != "" {
			o.drawLabel(screen, l)
		}
	}
	if o.fps != nil {
		o.drawLabel(screen, o.fps.Label())
	}
}

func (o *Overlay) drawLabel(screen *ebiten.Image, l *Label) {
	op := &text.DrawOptions{}
	op.GeoM = labelGeoM(o.font, l)
	op.ColorScale.ScaleWithColor(l.Color.toRGBA())
	op.LineSpacing = o.font.LineHeight()
	text.Draw(screen, l.Text, o.font.Face(), op)
}

// labelGeoM returns the transform that places the text box's top-left corner
// so that the label's anchor point lands on l.Position after rotation.
func labelGeoM(f Font, l *Label) ebiten.GeoM {
	w, h := f.MeasureString(l.Text)
	ox, oy := anchorOffset(l.Anchor, w, h)

	var m ebiten.GeoM
	m.Translate(ox, oy)
	if l.Rotation != 0 {
		m.Rotate(l.Rotation)
	}
	m.Translate(l.Position.X, l.Position.Y)
	return m
}

// anchorOffset returns the position of the text box's top-left corner
// relative to the anchor point for an unrotated w x h box.
func anchorOffset(a Anchor, w, h float64) (float64, float64) {
	switch a {
	case AnchorBottomCenter:
		return -w / 2, -h
	case AnchorTopCenter:
		return -w / 2, 0
	case AnchorCenter:
		return -w / 2, -h / 2
	default:
		return 0, 0
	}
}
