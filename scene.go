package wardley

import (
	"fmt"
	"io"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// SceneOptions configures NewScene. Start from DefaultSceneOptions.
type SceneOptions struct {
	Compose ComposeOptions
	Camera  CameraOptions
	// WheelStep is the zoom factor per wheel notch. Zero means DefaultWheelStep.
	WheelStep float64
	// Font draws overlay labels. Nil loads Go Regular at DefaultFontSize.
	Font    *TTFFont
	ShowFPS bool
	Debug   bool
	// LogOutput receives "[wardley]" diagnostics. Nil means os.Stderr.
	LogOutput     io.Writer
	ScreenshotDir string
}

// DefaultSceneOptions returns the standard composition with an origin
// layout camera.
func DefaultSceneOptions() SceneOptions {
	return SceneOptions{Compose: DefaultComposeOptions()}
}

// Scene is the top-level object that owns the map's node tree, camera,
// input state, label overlay and render buffers.
type Scene struct {
	root      *Node
	gridLayer *Node
	edgeLayer *Node
	nodeLayer *Node

	gridNodes []*Node
	edgeNodes []*Node
	markers   map[string]*Node

	comp       *Composition
	camera     *Camera
	controller *Controller
	overlay    *Overlay
	fps        *FPSCounter

	// ClearColor fills the screen before the map is drawn.
	ClearColor Color
	// AntiAlias enables Ebitengine's triangle anti-aliasing for lines and discs.
	AntiAlias bool
	// LogOutput receives "[wardley]" diagnostics. Nil means os.Stderr.
	LogOutput io.Writer
	// ScreenshotDir is where Screenshot writes PNGs (DefaultScreenshotDir if empty).
	ScreenshotDir string

	debug bool

	// Input
	input       InputSource
	inputBuf    []InputEvent
	injectQueue []InputEvent
	testRunner  *TestRunner

	screenshotQueue []string

	// Render state
	commands   []RenderCommand
	sortBuf    []RenderCommand
	batchVerts []ebiten.Vertex
	batchInds  []uint32
	culled     int
}

// NewScene composes doc for a width x height pixel viewport and builds its
// scene graph: grid lines, then connection edges, then node markers, with
// the label overlay on top.
func NewScene(doc *MapDocument, width, height float64, opts SceneOptions) (*Scene, error) {
	vp := Viewport{Width: width, Height: height}
	comp, err := Compose(doc, vp, opts.Compose)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	cam, err := NewCamera(width, height, vp, opts.Camera)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	font := opts.Font
	if font == nil {
		font, err = DefaultFont(DefaultFontSize)
		if err != nil {
			return nil, err
		}
	}

	s := &Scene{
		comp:          comp,
		camera:        cam,
		controller:    NewController(cam),
		ClearColor:    ColorBackground,
		AntiAlias:     true,
		LogOutput:     opts.LogOutput,
		ScreenshotDir: opts.ScreenshotDir,
		commands:      make([]RenderCommand, 0, defaultCommandCap),
		sortBuf:       make([]RenderCommand, 0, defaultCommandCap),
	}
	if opts.WheelStep > 0 {
		s.controller.WheelStep = opts.WheelStep
	}
	s.SetDebugMode(opts.Debug)
	s.build()
	s.overlay = NewOverlay(font, comp)
	if opts.ShowFPS {
		s.fps = NewFPSCounter()
		s.overlay.SetFPS(s.fps)
	}
	s.overlay.Sync(cam, comp)
	return s, nil
}

// build creates the layer containers and one mesh per grid line and edge
// plus a two-disc marker per node.
func (s *Scene) build() {
	width := s.comp.Options.LineWidth
	radius := s.comp.Options.NodeRadius

	s.root = NewContainer("root")
	s.gridLayer = NewContainer("grid")
	s.edgeLayer = NewContainer("edges")
	s.nodeLayer = NewContainer("nodes")
	s.root.AddChild(s.gridLayer)
	s.root.AddChild(s.edgeLayer)
	s.root.AddChild(s.nodeLayer)

	s.gridNodes = make([]*Node, 0, len(s.comp.Grid))
	for i, g := range s.comp.Grid {
		line := NewLine(fmt.Sprintf("grid-%d", i), g.From, g.To, width)
		line.Color = ColorBlack
		line.RenderLayer = LayerGrid
		s.gridLayer.AddChild(line)
		s.gridNodes = append(s.gridNodes, line)
	}

	s.edgeNodes = make([]*Node, 0, len(s.comp.Edges))
	for i, e := range s.comp.Edges {
		line := NewLine(fmt.Sprintf("edge-%d:%s-%s", i, e.From, e.To), e.Start, e.End, width)
		line.Color = ColorBlack
		line.RenderLayer = LayerEdges
		line.UserData = e
		s.edgeLayer.AddChild(line)
		s.edgeNodes = append(s.edgeNodes, line)
	}

	s.markers = make(map[string]*Node, len(s.comp.Nodes))
	for _, n := range s.comp.Nodes {
		marker := NewContainer("node:" + n.ID)
		marker.SetPosition(n.Pixel.X, n.Pixel.Y)
		marker.UserData = n.ID

		outline := NewDisc("outline", radius+1, DefaultDiscSegments)
		outline.Color = ColorBlack
		outline.RenderLayer = LayerNodes
		outline.SetZIndex(0)

		fill := NewDisc("fill", radius, DefaultDiscSegments)
		fill.Color = ColorWhite
		fill.RenderLayer = LayerNodes
		fill.SetZIndex(1)

		marker.AddChild(outline)
		marker.AddChild(fill)
		s.nodeLayer.AddChild(marker)
		s.markers[n.ID] = marker
	}
}

// Resize re-lays the map out for a new pixel viewport: grid lines are
// regenerated at the new width, nodes and edges are re-projected from their
// normalized coordinates and the camera projection is recomputed.
func (s *Scene) Resize(width, height float64) error {
	vp := Viewport{Width: width, Height: height}
	if err := vp.Validate(); err != nil {
		return err
	}
	if err := s.comp.Relayout(vp); err != nil {
		return err
	}
	s.camera.Resize(width, height, vp)

	lw := s.comp.Options.LineWidth
	for i, g := range s.comp.Grid {
		SetLinePoints(s.gridNodes[i], g.From, g.To, lw)
	}
	for i, e := range s.comp.Edges {
		SetLinePoints(s.edgeNodes[i], e.Start, e.End, lw)
	}
	for _, n := range s.comp.Nodes {
		s.markers[n.ID].SetPosition(n.Pixel.X, n.Pixel.Y)
	}
	s.overlay.Sync(s.camera, s.comp)
	if s.debug {
		s.logf("resize: %.0fx%.0f", width, height)
	}
	return nil
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node { return s.root }

// Camera returns the scene's camera.
func (s *Scene) Camera() *Camera { return s.camera }

// Controller returns the controller that applies input to the camera.
func (s *Scene) Controller() *Controller { return s.controller }

// Composition returns the composed map the scene was built from.
func (s *Scene) Composition() *Composition { return s.comp }

// Overlay returns the label overlay.
func (s *Scene) Overlay() *Overlay { return s.overlay }

// Marker returns the marker container for the node with the given id.
func (s *Scene) Marker(id string) *Node { return s.markers[id] }

// SetInput sets the source of real input events (nil disables real input).
func (s *Scene) SetInput(in InputSource) { s.input = in }

// Update advances the test runner, applies input to the camera and
// refreshes the FPS readout.
func (s *Scene) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	if s.fps != nil {
		s.fps.Update(1.0 / float64(ebiten.TPS()))
	}
}

// Draw clears the screen, renders the map meshes through the camera, then
// draws the label overlay and captures any queued screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.buildCommands()

	if s.debug {
		stats.traverseTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		stats.culledCount = s.culled
		t0 = time.Now()
	}

	s.submitBatches(screen)

	if s.debug {
		stats.submitTime = time.Since(t0)
		stats.batchCount = countBatches(s.commands)
		t0 = time.Now()
	}

	s.overlay.Sync(s.camera, s.comp)
	s.overlay.Draw(screen)

	if s.debug {
		stats.overlayTime = time.Since(t0)
		stats.labelCount = len(s.overlay.Labels())
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth
// and child count warnings are printed, and per-frame timing stats and
// ignored gestures are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled && s.LogOutput != nil {
		debugOutput = s.LogOutput
	}
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
