package wardley

import "testing"

func TestInjectQueueOrder(t *testing.T) {
	s := newTestScene(t, 0)
	s.InjectWheel(1, 10, 20)
	s.InjectPinch(0.2)
	s.InjectRotate(0.1)
	s.InjectPan(3, 4)

	if len(s.injectQueue) != 4 {
		t.Fatalf("queue = %d, want 4", len(s.injectQueue))
	}
	wantTypes := []InputEventType{EventWheel, EventPinch, EventRotate, EventPan}
	for i, w := range wantTypes {
		if s.injectQueue[i].Type != w {
			t.Errorf("queue[%d] = %s, want %s", i, s.injectQueue[i].Type, w)
		}
	}
	if ev := s.injectQueue[1]; ev.X != 500 || ev.Y != 400 {
		t.Errorf("pinch center = (%f,%f), want screen center (500,400)", ev.X, ev.Y)
	}
	if ev := s.injectQueue[0]; ev.X != 10 || ev.Y != 20 || ev.Delta != 1 {
		t.Errorf("wheel = %+v", ev)
	}
}

func TestProcessInjectedInputOnePerFrame(t *testing.T) {
	s := newTestScene(t, 0)
	s.InjectWheel(1, 0, 0)
	s.InjectWheel(1, 0, 0)

	if !s.processInjectedInput() {
		t.Fatal("expected an injected event")
	}
	if !approxEqual(s.Camera().Zoom(), DefaultWheelStep, epsilon) {
		t.Errorf("Zoom = %f, want %f after one event", s.Camera().Zoom(), DefaultWheelStep)
	}
	if len(s.injectQueue) != 1 {
		t.Errorf("queue = %d, want 1", len(s.injectQueue))
	}
}

func TestProcessInjectedInput_EmptyQueue(t *testing.T) {
	s := newTestScene(t, 0)
	if s.processInjectedInput() {
		t.Error("empty queue should report no event")
	}
}

func TestInjectedRotateAndPanLeaveView(t *testing.T) {
	s := newTestScene(t, 0)
	before := s.Camera().ViewMatrix()
	s.InjectRotate(1)
	s.InjectPan(50, -20)
	s.Update()
	s.Update()
	if s.Camera().ViewMatrix() != before {
		t.Error("rotate and pan should not move the camera")
	}
}

// fakeInput replays a fixed batch of events on every Poll.
type fakeInput struct {
	events []InputEvent
	polls  int
}

func (f *fakeInput) Poll(buf []InputEvent) []InputEvent {
	f.polls++
	return append(buf, f.events...)
}

func TestProcessInputRealSource(t *testing.T) {
	s := newTestScene(t, 0)
	in := &fakeInput{events: []InputEvent{
		{Type: EventWheel, Delta: 1},
		{Type: EventPinch, Delta: 1},
	}}
	s.SetInput(in)
	s.Update()

	if in.polls != 1 {
		t.Errorf("polls = %d, want 1", in.polls)
	}
	if !approxEqual(s.Camera().Zoom(), DefaultWheelStep*2, epsilon) {
		t.Errorf("Zoom = %f, want %f", s.Camera().Zoom(), DefaultWheelStep*2)
	}
}

func TestInjectedInputPreemptsRealInput(t *testing.T) {
	s := newTestScene(t, 0)
	in := &fakeInput{events: []InputEvent{{Type: EventWheel, Delta: 1}}}
	s.SetInput(in)
	s.InjectPinch(1)
	s.Update()

	if in.polls != 0 {
		t.Errorf("polls = %d, want 0 while an injected event is pending", in.polls)
	}
	if !approxEqual(s.Camera().Zoom(), 2, epsilon) {
		t.Errorf("Zoom = %f, want 2", s.Camera().Zoom())
	}
}
