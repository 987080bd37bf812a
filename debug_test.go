package wardley

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

func withDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevDebug, prevOutput := globalDebug, debugOutput
	globalDebug = true
	debugOutput = &buf
	t.Cleanup(func() {
		globalDebug = prevDebug
		debugOutput = prevOutput
	})
	return &buf
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	buf := withDebug(t)
	current := NewContainer("root")
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := NewContainer(fmt.Sprintf("depth_%d", i))
		current.AddChild(child)
		current = child
	}
	if !strings.Contains(buf.String(), "[wardley] warning: tree depth") {
		t.Errorf("expected tree depth warning, got: %q", buf.String())
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	buf := withDebug(t)
	parent := NewContainer("wide")
	for i := 0; i < debugMaxChildCount+1; i++ {
		parent.AddChild(NewContainer(""))
	}
	if !strings.Contains(buf.String(), `node "wide" has 1001 children`) {
		t.Errorf("expected child count warning, got: %q", buf.String())
	}
}

func TestDebugLog(t *testing.T) {
	var buf bytes.Buffer
	s := newTestScene(t, 0)
	s.LogOutput = &buf
	s.debug = true

	s.debugLog(debugStats{
		traverseTime: time.Millisecond,
		submitTime:   2 * time.Millisecond,
		commandCount: 11,
		culledCount:  2,
		batchCount:   1,
		labelCount:   5,
	})
	out := buf.String()
	if !strings.Contains(out, "total: 3ms") {
		t.Errorf("missing total in %q", out)
	}
	if !strings.Contains(out, "commands: 11 | culled: 2 | batches: 1 | labels: 5 | zoom: 1.000") {
		t.Errorf("missing counts in %q", out)
	}
	if strings.Count(out, "[wardley] ") != 2 {
		t.Errorf("want 2 prefixed lines, got %q", out)
	}
}

func TestDebugLogDisabled(t *testing.T) {
	var buf bytes.Buffer
	s := newTestScene(t, 0)
	s.LogOutput = &buf
	s.debugLog(debugStats{commandCount: 1})
	if buf.Len() != 0 {
		t.Errorf("debugLog wrote %q with debug off", buf.String())
	}
}
