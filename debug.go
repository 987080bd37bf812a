package wardley

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when the scene is in debug mode.
type debugStats struct {
	traverseTime time.Duration
	submitTime   time.Duration
	overlayTime  time.Duration
	commandCount int
	culledCount  int
	batchCount   int
	labelCount   int
}

// debugLog prints timing and draw-call stats to the scene's log output.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.traverseTime + stats.submitTime + stats.overlayTime
	s.logf("traverse: %v | submit: %v | overlay: %v | total: %v",
		stats.traverseTime, stats.submitTime, stats.overlayTime, total)
	s.logf("commands: %d | culled: %d | batches: %d | labels: %d | zoom: %.3f",
		stats.commandCount, stats.culledCount, stats.batchCount, stats.labelCount, s.camera.Zoom())
}

// logf writes a single "[wardley]"-prefixed line to the scene's log output.
func (s *Scene) logf(format string, args ...any) {
	w := s.LogOutput
	if w == nil {
		w = os.Stderr
	}
	_, _ = fmt.Fprintf(w, "[wardley] "+format+"\n", args...)
}

// debugOutput receives tree warnings from node operations, which have no
// scene pointer. SetDebugMode points it at the scene's log output.
var debugOutput io.Writer = os.Stderr

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOutput, "[wardley] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns if a node has more children than a map
// layer plausibly needs.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(debugOutput, "[wardley] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}

// countBatches counts contiguous groups of commands sharing the same batchKey.
// This is the number of DrawTriangles32 calls submitBatches makes.
func countBatches(commands []RenderCommand) int {
	if len(commands) == 0 {
		return 0
	}
	count := 1
	prev := commandBatchKey(&commands[0])
	for i := 1; i < len(commands); i++ {
		cur := commandBatchKey(&commands[i])
		if cur != prev {
			count++
			prev = cur
		}
	}
	return count
}
