// Package svgout renders a composed map as a static SVG document.
package svgout

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"

	"github.com/phanxgames/wardley"
)

const (
	fontFamily = "Go, Helvetica, Arial, sans-serif"
	fontSize   = 14.0
)

// Write renders comp at its viewport size. SVG's Y axis points down, so
// every layout-space y is flipped: visibility 100 is the top edge.
func Write(w io.Writer, comp *wardley.Composition) error {
	if comp == nil {
		return fmt.Errorf("svgout: nil composition")
	}
	bw := bufio.NewWriter(w)
	width, height := comp.Viewport.Width, comp.Viewport.Height
	flip := func(y float64) float64 { return height - y }
	black := wardley.ColorBlack.Hex()
	lw := comp.Options.LineWidth

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)
	if comp.Title != "" {
		fmt.Fprintf(bw, "  <title>%s</title>\n", html.EscapeString(comp.Title))
	}
	fmt.Fprintf(bw, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", wardley.ColorBackground.Hex())

	fmt.Fprintf(bw, `  <g id="grid" stroke="%s" stroke-width="%g">`+"\n", black, lw)
	for _, g := range comp.Grid {
		fmt.Fprintf(bw, `    <line x1="%g" y1="%g" x2="%g" y2="%g"/>`+"\n",
			g.From.X, flip(g.From.Y), g.To.X, flip(g.To.Y))
	}
	bw.WriteString("  </g>\n")

	fmt.Fprintf(bw, `  <g id="edges" stroke="%s" stroke-width="%g">`+"\n", black, lw)
	for _, e := range comp.Edges {
		class := "document"
		if e.Random {
			class = "random"
		}
		fmt.Fprintf(bw, `    <line class="%s" x1="%g" y1="%g" x2="%g" y2="%g"/>`+"\n",
			class, e.Start.X, flip(e.Start.Y), e.End.X, flip(e.End.Y))
	}
	bw.WriteString("  </g>\n")

	r := comp.Options.NodeRadius
	fmt.Fprintf(bw, `  <g id="nodes">`+"\n")
	for _, n := range comp.Nodes {
		x, y := n.Pixel.X, flip(n.Pixel.Y)
		fmt.Fprintf(bw, `    <g id="node-%s">`+"\n", html.EscapeString(n.ID))
		fmt.Fprintf(bw, `      <circle cx="%g" cy="%g" r="%g" fill="%s"/>`+"\n", x, y, r+1, black)
		fmt.Fprintf(bw, `      <circle cx="%g" cy="%g" r="%g" fill="%s"/>`+"\n", x, y, r, wardley.ColorWhite.Hex())
		bw.WriteString("    </g>\n")
	}
	bw.WriteString("  </g>\n")

	fmt.Fprintf(bw, `  <g id="labels" font-family="%s" font-size="%g" fill="%s">`+"\n", fontFamily, fontSize, black)
	for _, n := range comp.Nodes {
		a := comp.LabelAnchor(n)
		fmt.Fprintf(bw, `    <text x="%g" y="%g" text-anchor="middle">%s</text>`+"\n",
			a.X, flip(a.Y), html.EscapeString(n.Name))
	}
	for _, l := range comp.AxisLabels {
		pos, anchor, rot := l.Placement(width, height)
		baseline := "text-after-edge"
		if anchor == wardley.AnchorTopCenter {
			baseline = "text-before-edge"
		}
		transform := ""
		if rot != 0 {
			transform = fmt.Sprintf(` transform="rotate(%g %g %g)"`, rot*180/math.Pi, pos.X, pos.Y)
		}
		fmt.Fprintf(bw, `    <text x="%g" y="%g" text-anchor="middle" dominant-baseline="%s"%s>%s</text>`+"\n",
			pos.X, pos.Y, baseline, transform, html.EscapeString(l.Text))
	}
	bw.WriteString("  </g>\n")
	bw.WriteString("</svg>\n")

	return bw.Flush()
}
