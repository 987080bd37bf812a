package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/phanxgames/wardley"
)

// Config holds viewer configuration.
type Config struct {
	Window      WindowConfig      `toml:"window"`
	Grid        GridConfig        `toml:"grid"`
	Nodes       NodesConfig       `toml:"nodes"`
	Connections ConnectionsConfig `toml:"connections"`
	Camera      CameraConfig      `toml:"camera"`
	Debug       DebugConfig       `toml:"debug"`
}

// WindowConfig controls the viewer window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// GridConfig controls the vertical reference lines.
type GridConfig struct {
	Lines int `toml:"lines"`
}

// NodesConfig controls node markers and labels.
type NodesConfig struct {
	Radius      float64 `toml:"radius"`
	LabelOffset float64 `toml:"label_offset"`
}

// ConnectionsConfig controls random decorative edges.
type ConnectionsConfig struct {
	Count int    `toml:"count"`
	Seed  uint64 `toml:"seed"` // 0 = random each run
}

// CameraConfig controls the projection and zoom.
type CameraConfig struct {
	Layout    string  `toml:"layout"` // "origin", "symmetric"
	MinZoom   float64 `toml:"min_zoom"`
	MaxZoom   float64 `toml:"max_zoom"`
	WheelStep float64 `toml:"wheel_step"`
}

// DebugConfig controls diagnostics.
type DebugConfig struct {
	Enabled       bool   `toml:"enabled"`
	ShowFPS       bool   `toml:"show_fps"`
	ScreenshotDir string `toml:"screenshot_dir"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Window:      WindowConfig{Width: 1000, Height: 800, Title: "Wardley Map"},
		Grid:        GridConfig{Lines: wardley.DefaultGridLines},
		Nodes:       NodesConfig{Radius: wardley.DefaultNodeRadius, LabelOffset: wardley.DefaultLabelOffset},
		Connections: ConnectionsConfig{Count: wardley.DefaultConnections},
		Camera: CameraConfig{
			Layout:    wardley.LayoutOrigin.String(),
			MinZoom:   wardley.DefaultMinZoom,
			MaxZoom:   wardley.DefaultMaxZoom,
			WheelStep: wardley.DefaultWheelStep,
		},
		Debug: DebugConfig{ScreenshotDir: wardley.DefaultScreenshotDir},
	}
}

// ConfigDir returns the wardley config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "wardley")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file at path (Path() if empty) over the defaults.
// A missing file yields the defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = Path()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path (Path() if empty).
func Save(cfg *Config, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SceneOptions converts the config into scene options. A zero seed leaves
// the random source unset so each run differs.
func (c *Config) SceneOptions() (wardley.SceneOptions, error) {
	layout, err := wardley.ParseLayout(c.Camera.Layout)
	if err != nil {
		return wardley.SceneOptions{}, err
	}
	opts := wardley.DefaultSceneOptions()
	opts.Compose.GridLines = c.Grid.Lines
	opts.Compose.NodeRadius = c.Nodes.Radius
	opts.Compose.LabelOffset = c.Nodes.LabelOffset
	opts.Compose.Connections = c.Connections.Count
	if c.Connections.Seed != 0 {
		opts.Compose.Rand = rand.New(rand.NewPCG(c.Connections.Seed, c.Connections.Seed))
	}
	opts.Camera = wardley.CameraOptions{
		Layout:  layout,
		MinZoom: c.Camera.MinZoom,
		MaxZoom: c.Camera.MaxZoom,
	}
	opts.WheelStep = c.Camera.WheelStep
	opts.ShowFPS = c.Debug.ShowFPS
	opts.Debug = c.Debug.Enabled
	opts.ScreenshotDir = c.Debug.ScreenshotDir
	if err := opts.Compose.Validate(); err != nil {
		return wardley.SceneOptions{}, err
	}
	if err := opts.Camera.Validate(); err != nil {
		return wardley.SceneOptions{}, err
	}
	return opts, nil
}
