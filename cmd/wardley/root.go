package main

import (
	"github.com/phanxgames/wardley"
	"github.com/phanxgames/wardley/internal/config"
	"github.com/phanxgames/wardley/internal/ui"
	"github.com/phanxgames/wardley/mapdoc"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "wardley",
	Short: "wardley: view and export Wardley maps",
	Long: ui.Brand.Sprint("wardley") + ": view and export Wardley maps\n" +
		ui.Subtle.Sprint("Projects Evolution/Visibility coordinates onto the screen, an SVG or a table"),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("wardley {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default "+config.Path()+")")

	rootCmd.AddCommand(
		viewCmd(),
		projectCmd(),
		exportCmd(),
	)
}

// Execute runs the root command and reports a failure in red.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		ui.Bad.Fprintf(rootCmd.ErrOrStderr(), "wardley: %v\n", err)
	}
	return err
}

// layoutFlags are the composition settings every subcommand accepts. Flags
// the user sets override the config file.
type layoutFlags struct {
	width       int
	height      int
	gridLines   int
	connections int
	seed        uint64
	layout      string
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	d := config.Default()
	fl := cmd.Flags()
	fl.IntVar(&f.width, "width", d.Window.Width, "Viewport width in pixels")
	fl.IntVar(&f.height, "height", d.Window.Height, "Viewport height in pixels")
	fl.IntVar(&f.gridLines, "grid-lines", d.Grid.Lines, "Number of vertical grid lines (>= 2)")
	fl.IntVar(&f.connections, "connections", d.Connections.Count, "Number of random decorative connections")
	fl.Uint64Var(&f.seed, "seed", 0, "Random seed (0 = different every run)")
	fl.StringVar(&f.layout, "layout", d.Camera.Layout, `Camera layout: "origin" or "symmetric"`)
}

// settings loads the config file and applies explicitly set flags on top.
func (f *layoutFlags) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	fl := cmd.Flags()
	if fl.Changed("width") {
		cfg.Window.Width = f.width
	}
	if fl.Changed("height") {
		cfg.Window.Height = f.height
	}
	if fl.Changed("grid-lines") {
		cfg.Grid.Lines = f.gridLines
	}
	if fl.Changed("connections") {
		cfg.Connections.Count = f.connections
	}
	if fl.Changed("seed") {
		cfg.Connections.Seed = f.seed
	}
	if fl.Changed("layout") {
		cfg.Camera.Layout = f.layout
	}
	return cfg, nil
}

// compose loads the map at path and lays it out for the configured window.
func compose(path string, cfg *config.Config) (*wardley.Composition, error) {
	doc, err := mapdoc.LoadFile(path)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.SceneOptions()
	if err != nil {
		return nil, err
	}
	vp := wardley.Viewport{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	return wardley.Compose(doc, vp, opts.Compose)
}
