// Package input collects key events from the terminal driver and exposes
// them as a per-frame snapshot.
package input

import (
	"github.com/lixenwraith/gridframe/terminal"
)

// Keyboard buffers terminal key events and snapshots them once per frame.
// It has no visibility into canvas or timing state.
type Keyboard struct {
	events <-chan terminal.Event
	frame  []terminal.Event
	closed bool
	err    error
}

// NewKeyboard wires a keyboard to a terminal's event stream
func NewKeyboard(t terminal.Terminal) *Keyboard {
	return &Keyboard{events: t.Events()}
}

// ConsumeKeyEvents drains everything buffered since the previous call into
// the current frame snapshot. Must be called exactly once per frame,
// before the frame callback runs.
func (k *Keyboard) ConsumeKeyEvents() {
	k.frame = k.frame[:0]
	for {
		select {
		case ev, ok := <-k.events:
			if !ok {
				k.closed = true
				return
			}
			if ev.Type == terminal.EventClosed {
				k.closed = true
				continue
			}
			if ev.Type == terminal.EventError {
				k.err = ev.Err
				continue
			}
			if ev.Type == terminal.EventKey {
				k.frame = append(k.frame, ev)
			}
		default:
			return
		}
	}
}

// Events returns the key events of the current frame. The slice is reused
// next frame; callers must not retain it.
func (k *Keyboard) Events() []terminal.Event {
	return k.frame
}

// Pressed reports whether key was seen this frame
func (k *Keyboard) Pressed(key terminal.Key) bool {
	for _, ev := range k.frame {
		if ev.Key == key {
			return true
		}
	}
	return false
}

// PressedRune reports whether the printable rune r was seen this frame
func (k *Keyboard) PressedRune(r rune) bool {
	for _, ev := range k.frame {
		if ev.Key == terminal.KeyRune && ev.Rune == r {
			return true
		}
	}
	return false
}

// Closed reports whether the input stream has ended
func (k *Keyboard) Closed() bool {
	return k.closed
}

// Err returns the most recent input read error, nil when none occurred.
// The error is sticky: once a read fails the device is not trusted again.
func (k *Keyboard) Err() error {
	return k.err
}
