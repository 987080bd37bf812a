package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/phanxgames/wardley"
	"github.com/phanxgames/wardley/mapdoc"
	"github.com/spf13/cobra"
)

func viewCmd() *cobra.Command {
	var (
		flags   layoutFlags
		showFPS bool
		debug   bool
		script  string
	)
	cmd := &cobra.Command{
		Use:   "view <map>",
		Short: "Open the map in an interactive window (wheel or pinch to zoom)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.settings(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fps") {
				cfg.Debug.ShowFPS = showFPS
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug.Enabled = debug
			}

			doc, err := mapdoc.LoadFile(args[0])
			if err != nil {
				return err
			}
			opts, err := cfg.SceneOptions()
			if err != nil {
				return err
			}
			scene, err := wardley.NewScene(doc, float64(cfg.Window.Width), float64(cfg.Window.Height), opts)
			if err != nil {
				return err
			}

			if script != "" {
				data, err := os.ReadFile(script)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				runner, err := wardley.LoadTestScript(data)
				if err != nil {
					return err
				}
				scene.SetTestRunner(runner)
			}

			title := cfg.Window.Title
			if doc.Title != "" {
				title = doc.Title
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runView(ctx, scene, wardley.RunConfig{
				Title:  title,
				Width:  cfg.Window.Width,
				Height: cfg.Window.Height,

				ExitAfterScript: script != "",
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&showFPS, "fps", false, "Show an FPS readout")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log per-frame stats and tree warnings")
	cmd.Flags().StringVar(&script, "script", "", "JSON test script driving zoom and screenshots")
	return cmd
}

func runView(ctx context.Context, scene *wardley.Scene, cfg wardley.RunConfig) error {
	loop := wardley.NewLoop(scene)
	if err := loop.Run(ctx, cfg); err != nil {
		return err
	}
	if n := loop.FrameFailures(); n > 0 {
		return fmt.Errorf("%d frames failed (see log)", n)
	}
	return nil
}
