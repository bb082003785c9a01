package tween

import "time"

// Slot holds at most one running tween. Starting a new tween drops the
// previous one without finishing it.
type Slot struct {
	current Tween
}

func (s *Slot) Start(tween Tween) {
	s.current = nil

	if tween.Update(0) {
		return
	}

	s.current = tween
}

func (s *Slot) Stop() {
	s.current = nil
}

func (s *Slot) Running() bool {
	return s.current != nil
}

func (s *Slot) Update(dt time.Duration) {
	if s.current == nil {
		return
	}

	if s.current.Update(dt) {
		s.current = nil
	}
}
