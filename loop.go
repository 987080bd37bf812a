package wardley

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title string
	// Width and Height set the initial window size. Zero keeps Ebitengine's
	// default; the scene follows whatever size Layout reports.
	Width  int
	Height int
	// ShowFPS adds an FPS readout to the overlay.
	ShowFPS bool
	// ExitAfterScript ends the loop once the scene's test runner is done.
	ExitAfterScript bool
}

// Loop drives a Scene as an ebiten.Game. A frame that fails (returns an
// error or panics) is logged with its frame number and counted; the next
// frame runs normally. The loop owns its cancellation: Stop, context
// cancellation or closing the window end it.
type Loop struct {
	scene *Scene

	// draw renders one frame; Scene.Draw unless replaced.
	draw func(screen *ebiten.Image) error

	frame           uint64
	failures        int
	stopped         atomic.Bool
	exitAfterScript bool

	outsideW, outsideH int
	resizePending      bool
}

// NewLoop creates a render loop for scene.
func NewLoop(scene *Scene) *Loop {
	l := &Loop{scene: scene}
	l.draw = func(screen *ebiten.Image) error {
		scene.Draw(screen)
		return nil
	}
	return l
}

// Scene returns the scene the loop drives.
func (l *Loop) Scene() *Scene { return l.scene }

// Stop ends the loop at the next Update. Safe to call from any goroutine.
func (l *Loop) Stop() { l.stopped.Store(true) }

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool { return l.stopped.Load() }

// Frame returns the number of frames drawn so far.
func (l *Loop) Frame() uint64 { return l.frame }

// FrameFailures returns how many frames failed to update or draw.
func (l *Loop) FrameFailures() int { return l.failures }

// Update implements ebiten.Game.
func (l *Loop) Update() error {
	if l.stopped.Load() {
		return ebiten.Termination
	}
	if l.exitAfterScript && l.scene.testRunner != nil && l.scene.testRunner.Done() {
		return ebiten.Termination
	}
	err := l.guard(func() error {
		if l.resizePending {
			l.resizePending = false
			if err := l.scene.Resize(float64(l.outsideW), float64(l.outsideH)); err != nil {
				return fmt.Errorf("resize: %w", err)
			}
		}
		l.scene.Update()
		return nil
	})
	if err != nil {
		l.fail("update", err)
	}
	return nil
}

// Draw implements ebiten.Game.
func (l *Loop) Draw(screen *ebiten.Image) {
	l.frame++
	if err := l.guard(func() error { return l.draw(screen) }); err != nil {
		l.fail("draw", err)
	}
}

// Layout implements ebiten.Game. The screen is the window's outside size;
// whenever it differs from the camera's screen size the scene is resized at
// the start of the next Update.
func (l *Loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		// Minimized: keep the last layout.
		if l.outsideW > 0 {
			return l.outsideW, l.outsideH
		}
		return 1, 1
	}
	l.outsideW, l.outsideH = outsideWidth, outsideHeight
	sz := l.scene.Camera().ScreenSize()
	l.resizePending = float64(outsideWidth) != sz.X || float64(outsideHeight) != sz.Y
	return outsideWidth, outsideHeight
}

// guard runs fn, converting a panic into an error.
func (l *Loop) guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func (l *Loop) fail(phase string, err error) {
	l.failures++
	l.scene.logf("frame %d %s failed: %v", l.frame, phase, err)
}

// Run opens a resizable window and runs the loop until ctx is cancelled,
// Stop is called or the window is closed.
func (l *Loop) Run(ctx context.Context, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	l.exitAfterScript = cfg.ExitAfterScript
	if cfg.ShowFPS && l.scene.fps == nil {
		l.scene.fps = NewFPSCounter()
		l.scene.overlay.SetFPS(l.scene.fps)
	}
	if l.scene.input == nil {
		l.scene.SetInput(NewEbitenInput())
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			l.Stop()
		case <-done:
		}
	}()

	if err := ebiten.RunGame(l); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Run is a convenience that creates a Loop for scene and runs it.
func Run(ctx context.Context, scene *Scene, cfg RunConfig) error {
	return NewLoop(scene).Run(ctx, cfg)
}
