package main

import (
	"fmt"
	"strconv"

	"github.com/phanxgames/wardley/internal/ui"
	"github.com/spf13/cobra"
)

func projectCmd() *cobra.Command {
	var flags layoutFlags
	cmd := &cobra.Command{
		Use:   "project <map>",
		Short: "Print each node's normalized and pixel coordinates",
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

			title := comp.Title
			if title == "" {
				title = args[0]
			}
			ui.Banner(fmt.Sprintf("%s @ %dx%d", title, cfg.Window.Width, cfg.Window.Height))

			rows := make([][]string, 0, len(comp.Nodes))
			randomized := 0
			for _, n := range comp.Nodes {
				placed := "document"
				if n.Randomized {
					placed = ui.Warn.Sprint("random")
					randomized++
				}
				rows = append(rows, []string{
					n.ID, n.Name,
					ff(n.Normalized.X), ff(n.Normalized.Y),
					ff(n.Pixel.X), ff(n.Pixel.Y),
					placed,
				})
			}
			ui.Table([]string{"ID", "NAME", "EVOLUTION", "VISIBILITY", "X", "Y", "PLACED"}, rows)

			fmt.Fprintln(ui.Out)
			ui.Success("%d nodes, %d edges, %d grid lines", len(comp.Nodes), len(comp.Edges), len(comp.Grid))
			if randomized > 0 {
				ui.Warning("%d nodes had no position and were placed randomly", randomized)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
