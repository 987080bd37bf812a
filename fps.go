package wardley

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsRefreshInterval is how often the FPS readout text changes, in seconds.
const fpsRefreshInterval = 0.5

// FPSCounter is a top-left overlay label showing the measured frame rate.
// The text is refreshed about twice a second.
type FPSCounter struct {
	label   Label
	elapsed float64

	// sample reports the current rate; ebiten.ActualFPS by default.
	sample func() float64
}

// NewFPSCounter creates an FPS readout anchored to the top-left corner.
func NewFPSCounter() *FPSCounter {
	return &FPSCounter{
		label: Label{
			Kind:     LabelFPS,
			Text:     "FPS: 0.0",
			Position: Vec2{X: 4, Y: 4},
			Anchor:   AnchorTopLeft,
			Color:    ColorBlack,
			Visible:  true,
		},
		sample: ebiten.ActualFPS,
	}
}

// Update advances the refresh timer by dt seconds.
func (c *FPSCounter) Update(dt float64) {
	c.elapsed += dt
	if c.elapsed < fpsRefreshInterval {
		return
	}
	c.elapsed = 0
	c.label.Text = fmt.Sprintf("FPS: %.1f", c.sample())
}

// Label returns the readout label.
func (c *FPSCounter) Label() *Label {
	return &c.label
}
