package terminal

import (
	"sync"
	"time"
	"unicode/utf8"
)

// escapeTimeout is the duration to wait after a lone ESC to distinguish
// a standalone ESC press from the start of an escape sequence
const escapeTimeout = 50 * time.Millisecond

// inputReader handles raw stdin parsing
type inputReader struct {
	backend Backend
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool

	// Persistent buffer for stream assembly; not fixed size to avoid
	// corrupting partial UTF-8 at a read boundary
	buf     []byte
	escTime time.Time
}

func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend: backend,
		eventCh: make(chan Event, 256),
		buf:     make([]byte, 0, 256),
	}
}

// start begins reading input in a goroutine. The stop channels are made
// fresh on every start so raw mode can be re-enabled after a stop.
func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})
	r.buf = r.buf[:0]
	stopCh, doneCh := r.stopCh, r.doneCh
	r.mu.Unlock()

	go r.readLoop(stopCh, doneCh)
}

// stop signals the reader to stop
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	stopCh, doneCh := r.stopCh, r.doneCh
	r.mu.Unlock()

	close(stopCh)
	// Wait with timeout - don't block forever if read is stuck
	select {
	case <-doneCh:
	case <-time.After(200 * time.Millisecond):
		// Reader stuck on blocking read, proceed anyway
	}
}

// events returns the event channel
func (r *inputReader) events() <-chan Event {
	return r.eventCh
}

// readLoop is the main input reading goroutine
func (r *inputReader) readLoop(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	for {
		data, err := r.backend.Read(stopCh)
		if err != nil {
			r.sendEvent(Event{Type: EventError, Err: err})
			return
		}

		if len(data) == 0 {
			// Timeout (Unix poll) or empty read. Emit a pending standalone
			// ESC once its disambiguation window has passed.
			if len(r.buf) == 1 && r.buf[0] == 0x1b && time.Since(r.escTime) >= escapeTimeout {
				r.sendEvent(Event{Type: EventKey, Key: KeyEscape})
				r.buf = r.buf[:0]
			}
			select {
			case <-stopCh:
				r.sendEvent(Event{Type: EventClosed})
				return
			default:
				continue
			}
		}

		if len(r.buf) == 0 && data[0] == 0x1b {
			r.escTime = time.Now()
		}
		r.buf = append(r.buf, data...)

		consumed := r.parseInput(r.buf)

		// Compact buffer
		if consumed > 0 {
			if consumed >= len(r.buf) {
				r.buf = r.buf[:0]
			} else {
				copy(r.buf, r.buf[consumed:])
				r.buf = r.buf[:len(r.buf)-consumed]
			}
		}
	}
}

// parseInput parses raw bytes into events and returns bytes consumed
// (stops on an incomplete trailing sequence)
func (r *inputReader) parseInput(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++
			continue
		}

		// Escape sequence
		if b == 0x1b {
			consumed, ev, ok := parseEscape(data[i:])
			if consumed == 0 {
				return i // Incomplete, wait for more data
			}
			if ok {
				r.sendEvent(ev)
			}
			i += consumed
			continue
		}

		// Control characters
		if b < 0x20 {
			ev := controlKey(b)
			if ev.Key != KeyNone {
				r.sendEvent(ev)
			}
			i++
			continue
		}

		// DEL
		if b == 0x7f {
			r.sendEvent(Event{Type: EventKey, Key: KeyBackspace})
			i++
			continue
		}

		// UTF-8 multibyte
		if !utf8.FullRune(data[i:]) {
			return i // Incomplete UTF-8, wait for more data
		}
		rn, size := utf8.DecodeRune(data[i:])
		if rn == utf8.RuneError && size == 1 {
			i++ // Invalid byte, skip
			continue
		}
		r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rn})
		i += size
	}
	return i
}

// parseEscape attempts to parse one escape sequence.
// consumed == 0 means incomplete; ok == false means swallow silently.
func parseEscape(data []byte) (consumed int, ev Event, ok bool) {
	if len(data) < 2 {
		return 0, Event{}, false // Could be a sequence or a lone ESC
	}

	// ESC ESC -> Alt+Escape
	if data[1] == 0x1b {
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}, true
	}

	if data[1] == '[' {
		body := data[2:]
		if e, n, found := lookupSequence(csiSequences, body); found {
			return 2 + n, e, true
		}
		if hasSequencePrefix(csiSequences, body) {
			return 0, Event{}, false
		}
		// Unknown CSI: swallow through the final byte (0x40-0x7e)
		for j, b := range body {
			if b >= 0x40 && b <= 0x7e {
				return 2 + j + 1, Event{}, false
			}
		}
		return 0, Event{}, false
	}

	if data[1] == 'O' {
		body := data[2:]
		if e, n, found := lookupSequence(ss3Sequences, body); found {
			return 2 + n, e, true
		}
		if hasSequencePrefix(ss3Sequences, body) {
			return 0, Event{}, false
		}
		return 3, Event{}, false // Swallow unknown SS3
	}

	// Alt+control character
	if data[1] < 0x20 {
		e := controlKey(data[1])
		e.Modifiers |= ModAlt
		return 2, e, e.Key != KeyNone
	}

	// Alt+printable
	if data[1] >= 0x20 && data[1] < 0x7f {
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}, true
	}

	return 2, Event{}, false
}

// sendEvent delivers an event, dropping when the buffer is full
func (r *inputReader) sendEvent(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
		// Channel full, drop
	}
}
