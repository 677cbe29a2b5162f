package input

import (
	"errors"
	"testing"

	"github.com/lixenwraith/gridframe/terminal"
)

// chanTerm is a Terminal stub that only serves an event channel
type chanTerm struct {
	terminal.Terminal
	events chan terminal.Event
}

func (c *chanTerm) Events() <-chan terminal.Event { return c.events }

func newChanTerm() *chanTerm {
	return &chanTerm{events: make(chan terminal.Event, 64)}
}

func TestConsumeSnapshotsBufferedEvents(t *testing.T) {
	ct := newChanTerm()
	k := NewKeyboard(ct)

	ct.events <- terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'w'}
	ct.events <- terminal.Event{Type: terminal.EventKey, Key: terminal.KeyLeft}
	ct.events <- terminal.Event{Type: terminal.EventKey, Key: terminal.KeyEnter}

	k.ConsumeKeyEvents()

	if got := len(k.Events()); got != 3 {
		t.Fatalf("len(Events()) = %d, expected 3", got)
	}
	if !k.PressedRune('w') {
		t.Error("PressedRune('w') = false")
	}
	if !k.Pressed(terminal.KeyLeft) || !k.Pressed(terminal.KeyEnter) {
		t.Error("Pressed missed buffered keys")
	}
	if k.Pressed(terminal.KeyUp) {
		t.Error("Pressed(KeyUp) = true for key never sent")
	}
}

func TestConsumeClearsPreviousFrame(t *testing.T) {
	ct := newChanTerm()
	k := NewKeyboard(ct)

	ct.events <- terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'x'}
	k.ConsumeKeyEvents()
	if !k.PressedRune('x') {
		t.Fatal("first frame missing event")
	}

	// Nothing arrived since: the next snapshot is empty
	k.ConsumeKeyEvents()
	if len(k.Events()) != 0 {
		t.Errorf("second frame has %d events, expected 0", len(k.Events()))
	}
	if k.PressedRune('x') {
		t.Error("event leaked across frames")
	}
}

func TestConsumeRecordsErrorAndClose(t *testing.T) {
	ct := newChanTerm()
	k := NewKeyboard(ct)

	readErr := errors.New("read failed")
	ct.events <- terminal.Event{Type: terminal.EventError, Err: readErr}
	ct.events <- terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'a'}
	ct.events <- terminal.Event{Type: terminal.EventClosed}

	k.ConsumeKeyEvents()
	if got := len(k.Events()); got != 1 {
		t.Errorf("len(Events()) = %d, expected only the key event", got)
	}
	if !k.Closed() {
		t.Error("Closed() = false after EventClosed")
	}
	if !errors.Is(k.Err(), readErr) {
		t.Errorf("Err() = %v, expected the read error", k.Err())
	}

	// The error is sticky across frames
	k.ConsumeKeyEvents()
	if k.Err() == nil {
		t.Error("Err() cleared by the next frame's consume")
	}
}
