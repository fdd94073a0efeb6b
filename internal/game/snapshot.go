package game

import (
	"sync"

	"orbitcam/internal/camera"
)

// StateSnapshot holds the camera state of the last finished frame so other
// goroutines can read it without touching the live camera.
type StateSnapshot struct {
	mu    sync.Mutex
	state camera.State
	ok    bool
}

func (s *StateSnapshot) Store(state camera.State) {
	s.mu.Lock()
	s.state = state
	s.ok = true
	s.mu.Unlock()
}

// Load returns the last stored state, or false before the first Store
func (s *StateSnapshot) Load() (camera.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.ok
}
