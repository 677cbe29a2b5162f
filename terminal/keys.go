package terminal

// escapeSequence maps escape sequences to keys
// Key: sequence after ESC [ (e.g., "A" for up arrow)
type escapeSequence struct {
	seq string
	key Key
	mod Modifier
}

// Known escape sequences (CSI sequences: ESC [ ...)
var csiSequences = []escapeSequence{
	// Arrow keys
	{"A", KeyUp, ModNone},
	{"B", KeyDown, ModNone},
	{"C", KeyRight, ModNone},
	{"D", KeyLeft, ModNone},
	{"Z", KeyBacktab, ModShift}, // Shift+Tab

	// Arrow keys with modifiers (xterm style: ESC [ 1 ; mod X)
	{"1;2A", KeyUp, ModShift},
	{"1;2B", KeyDown, ModShift},
	{"1;2C", KeyRight, ModShift},
	{"1;2D", KeyLeft, ModShift},
	{"1;3A", KeyUp, ModAlt},
	{"1;3B", KeyDown, ModAlt},
	{"1;3C", KeyRight, ModAlt},
	{"1;3D", KeyLeft, ModAlt},
	{"1;5A", KeyUp, ModCtrl},
	{"1;5B", KeyDown, ModCtrl},
	{"1;5C", KeyRight, ModCtrl},
	{"1;5D", KeyLeft, ModCtrl},

	// Navigation
	{"H", KeyHome, ModNone},
	{"F", KeyEnd, ModNone},
	{"1~", KeyHome, ModNone},
	{"4~", KeyEnd, ModNone},
	{"5~", KeyPageUp, ModNone},
	{"6~", KeyPageDown, ModNone},
	{"2~", KeyInsert, ModNone},
	{"3~", KeyDelete, ModNone},

	// Function keys (xterm)
	{"11~", KeyF1, ModNone},
	{"12~", KeyF2, ModNone},
	{"13~", KeyF3, ModNone},
	{"14~", KeyF4, ModNone},
	{"15~", KeyF5, ModNone},
	{"17~", KeyF6, ModNone},
	{"18~", KeyF7, ModNone},
	{"19~", KeyF8, ModNone},
	{"20~", KeyF9, ModNone},
	{"21~", KeyF10, ModNone},
	{"23~", KeyF11, ModNone},
	{"24~", KeyF12, ModNone},
}

// SS3 sequences (ESC O ...)
var ss3Sequences = []escapeSequence{
	{"A", KeyUp, ModNone},
	{"B", KeyDown, ModNone},
	{"C", KeyRight, ModNone},
	{"D", KeyLeft, ModNone},
	{"H", KeyHome, ModNone},
	{"F", KeyEnd, ModNone},
	{"P", KeyF1, ModNone},
	{"Q", KeyF2, ModNone},
	{"R", KeyF3, ModNone},
	{"S", KeyF4, ModNone},
}

// lookupSequence finds a key for the bytes following the introducer.
// Returns consumed length and ok=false when no table entry is a prefix
// match (caller decides whether to wait for more bytes or swallow).
func lookupSequence(table []escapeSequence, data []byte) (Event, int, bool) {
	for _, e := range table {
		if len(data) >= len(e.seq) && string(data[:len(e.seq)]) == e.seq {
			return Event{Type: EventKey, Key: e.key, Modifiers: e.mod}, len(e.seq), true
		}
	}
	return Event{}, 0, false
}

// hasSequencePrefix reports whether data could still grow into a table entry
func hasSequencePrefix(table []escapeSequence, data []byte) bool {
	for _, e := range table {
		if len(data) < len(e.seq) && e.seq[:len(data)] == string(data) {
			return true
		}
	}
	return false
}

// controlKey maps a C0 control byte to its key
func controlKey(b byte) Event {
	switch b {
	case 0x0d, 0x0a:
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Type: EventKey, Key: KeyCtrlA + Key(b-0x01), Modifiers: ModCtrl}
	}
	return Event{Type: EventKey, Key: KeyNone}
}
