package engine

import (
	"time"

	"github.com/lixenwraith/gridframe/input"
)

// State is the loop's timing record and run flag, handed to the frame
// callback for the duration of one frame. The callback must not retain
// it past the invocation.
//
// The run flag is a plain bool: the loop is single-threaded and the flag
// is only read at iteration boundaries.
type State struct {
	running  bool
	dt       time.Duration
	step     uint64
	keyboard *input.Keyboard
}

// Stop requests a cooperative shutdown. The loop checks the flag once per
// iteration boundary, never mid-frame.
func (s *State) Stop() {
	s.running = false
}

// IsRunning reports whether the loop will start another frame
func (s *State) IsRunning() bool {
	return s.running
}

// Dt returns the elapsed working time of the last completed frame
// (excluding the pacing sleep)
func (s *State) Dt() time.Duration {
	return s.dt
}

// Step returns the number of completed frames
func (s *State) Step() uint64 {
	return s.step
}

// Keyboard returns the per-frame input snapshot
func (s *State) Keyboard() *input.Keyboard {
	return s.keyboard
}
