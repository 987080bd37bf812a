package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/wardley"
	"github.com/phanxgames/wardley/internal/svgout"
	"github.com/phanxgames/wardley/internal/ui"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		flags  layoutFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "export <map>",
		Short: "Write a static SVG of the composed map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.settings(cmd)
			if err != nil {
				return err
			}
			comp, err := compose(args[0], cfg)
			if err != nil {
				return err
			}

			if output == "-" {
				return svgout.Write(cmd.OutOrStdout(), comp)
			}
			if err := writeSVG(output, comp); err != nil {
				return err
			}
			ui.Success("wrote %s", output)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "map.svg", `Output file ("-" for stdout)`)
	return cmd
}

// writeSVG writes comp to path. A failed close is reported: the file may
// be truncated.
func writeSVG(path string, comp *wardley.Composition) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := svgout.Write(f, comp); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
