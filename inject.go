package wardley

// InjectWheel queues a wheel event of the given notches at screen position
// (x, y). Injected events are consumed one per frame, ahead of real input.
func (s *Scene) InjectWheel(notches, x, y float64) {
	s.injectQueue = append(s.injectQueue, InputEvent{Type: EventWheel, X: x, Y: y, Delta: notches})
}

// InjectPinch queues a pinch event; delta is the relative scale change
// (0.1 = ten percent wider).
func (s *Scene) InjectPinch(delta float64) {
	c := s.camera.ScreenSize()
	s.injectQueue = append(s.injectQueue, InputEvent{Type: EventPinch, X: c.X / 2, Y: c.Y / 2, Delta: delta})
}

// InjectRotate queues a two-finger rotation of delta radians. The controller
// discards it; it exists to exercise that path.
func (s *Scene) InjectRotate(delta float64) {
	c := s.camera.ScreenSize()
	s.injectQueue = append(s.injectQueue, InputEvent{Type: EventRotate, X: c.X / 2, Y: c.Y / 2, Delta: delta})
}

// InjectPan queues a drag of (dx, dy) pixels. Like rotation, it is discarded
// by the controller.
func (s *Scene) InjectPan(dx, dy float64) {
	c := s.camera.ScreenSize()
	s.injectQueue = append(s.injectQueue, InputEvent{Type: EventPan, X: c.X / 2, Y: c.Y / 2, DX: dx, DY: dy})
}

// processInjectedInput pops one event from the inject queue and feeds it to
// the controller. Returns true if an event was consumed (real input should
// be skipped this frame).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.dispatch(evt)
	return true
}

// processInput feeds either one injected event or this frame's real input
// to the controller.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.input == nil {
		return
	}
	s.inputBuf = s.input.Poll(s.inputBuf[:0])
	for _, ev := range s.inputBuf {
		s.dispatch(ev)
	}
}

func (s *Scene) dispatch(ev InputEvent) {
	consumed := s.controller.Handle(ev)
	if s.debug && !consumed {
		s.logf("input: %s ignored", ev.Type)
	}
}
