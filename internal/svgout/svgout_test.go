package svgout

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/phanxgames/wardley"
)

func composeSample(t *testing.T) *wardley.Composition {
	t.Helper()
	doc := &wardley.MapDocument{
		Title: "Tea & Co",
		Nodes: []wardley.MapNode{
			{ID: "this", Name: "This", Position: wardley.At(50, 50)},
			{ID: "that", Name: "That", Position: wardley.At(70, 70)},
			{ID: "other", Name: "<Other>", Position: wardley.At(40, 50)},
		},
		Edges: []wardley.Edge{{From: "this", To: "that"}},
	}
	opts := wardley.DefaultComposeOptions()
	opts.Connections = 2
	opts.Rand = rand.New(rand.NewPCG(1, 2))
	comp, err := wardley.Compose(doc, wardley.Viewport{Width: 1000, Height: 800}, opts)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	return comp
}

func TestWriteStructure(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, composeSample(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<svg ") || !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("output is not a single svg element:\n%s", out)
	}
	if got := strings.Count(out, "<line "); got != 5+3 {
		t.Errorf("line count = %d, want 8 (5 grid + 1 document + 2 random)", got)
	}
	if got := strings.Count(out, `class="random"`); got != 2 {
		t.Errorf("random edge count = %d, want 2", got)
	}
	if got := strings.Count(out, "<circle "); got != 6 {
		t.Errorf("circle count = %d, want 6", got)
	}
	if !strings.Contains(out, "<title>Tea &amp; Co</title>") {
		t.Error("title missing or not escaped")
	}
	if !strings.Contains(out, "&lt;Other&gt;") {
		t.Error("node label not escaped")
	}
	if !strings.Contains(out, `transform="rotate(-90 10 400)"`) {
		t.Error("visibility label not rotated at (10, 400)")
	}
}

func TestWriteFlipsY(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, composeSample(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	// "that" at (70,70) of 1000x800 -> pixel (700,560) -> svg y 800-560 = 240.
	if !strings.Contains(buf.String(), `<circle cx="700" cy="240" r="10"`) {
		t.Errorf("expected fill circle for node that at (700, 240):\n%s", buf.String())
	}
	// Label anchor 15 above the marker: 800-(560+15) = 225.
	if !strings.Contains(buf.String(), `<text x="700" y="225" text-anchor="middle">That</text>`) {
		t.Error("expected label for node that at (700, 225)")
	}
}

func TestWriteNil(t *testing.T) {
	if err := Write(&bytes.Buffer{}, nil); err == nil {
		t.Error("expected error for nil composition")
	}
}
