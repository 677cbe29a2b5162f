package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Terminal is the primitive command surface consumed by the renderer.
// All commands queue into one buffer; nothing reaches the device until
// Flush. Write errors stick to the buffer and surface on Flush.
type Terminal interface {
	// Screen lifecycle
	EnterAltScreen()
	LeaveAltScreen()
	EnableRawMode() error
	DisableRawMode() error

	// Cursor
	HideCursor()
	ShowCursor()
	MoveTo(x, y int)

	// Colors and attributes (256-color palette indices)
	SetForeground(index uint8)
	SetBackground(index uint8)
	ResetColors()
	ResetAttributes()

	// Content
	Print(r rune)

	// Device
	Size() (width, height int)
	Flush() error

	// Input
	// Events returns the buffered key event channel. Events flow while
	// raw mode is enabled.
	Events() <-chan Event
}

// termImpl implements Terminal over a Backend
type termImpl struct {
	backend Backend
	writer  *bufio.Writer
	input   *inputReader
	raw     bool
}

// New creates a Terminal bound to the process tty
func New() Terminal {
	return newTerm(newBackend())
}

// NewWithFiles creates a Terminal over explicit tty files (tests drive a pty)
func NewWithFiles(in, out *os.File) Terminal {
	return newTerm(newFileBackend(in, out))
}

// NewWithBackend creates a Terminal over a caller-supplied backend
func NewWithBackend(b Backend) Terminal {
	return newTerm(b)
}

func newTerm(b Backend) *termImpl {
	return &termImpl{
		backend: b,
		writer:  bufio.NewWriterSize(backendWriter{b}, 65536),
		input:   newInputReader(b),
	}
}

// backendWriter adapts Backend to io.Writer for bufio
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	return w.b.Write(p)
}

func (t *termImpl) EnterAltScreen() {
	t.writer.Write(csiAltScreenEnter)
}

func (t *termImpl) LeaveAltScreen() {
	t.writer.Write(csiAltScreenExit)
}

func (t *termImpl) EnableRawMode() error {
	if t.raw {
		return nil
	}
	if err := t.backend.Init(); err != nil {
		return err
	}
	t.raw = true
	t.input.start()
	return nil
}

func (t *termImpl) DisableRawMode() error {
	if !t.raw {
		return nil
	}
	t.raw = false
	t.input.stop()
	return t.backend.Fini()
}

func (t *termImpl) HideCursor() {
	t.writer.Write(csiCursorHide)
}

func (t *termImpl) ShowCursor() {
	t.writer.Write(csiCursorShow)
}

func (t *termImpl) MoveTo(x, y int) {
	writeCursorPos(t.writer, x, y)
}

func (t *termImpl) SetForeground(index uint8) {
	writeFg256(t.writer, index)
}

func (t *termImpl) SetBackground(index uint8) {
	writeBg256(t.writer, index)
}

func (t *termImpl) ResetColors() {
	t.writer.Write(csiDefaultFg)
	t.writer.Write(csiDefaultBg)
}

func (t *termImpl) ResetAttributes() {
	t.writer.Write(csiSGR0)
}

func (t *termImpl) Print(r rune) {
	if r < 0x80 {
		t.writer.WriteByte(byte(r))
	} else {
		t.writer.WriteRune(r)
	}
}

func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

func (t *termImpl) Flush() error {
	if err := t.writer.Flush(); err != nil {
		return fmt.Errorf("terminal flush: %w", err)
	}
	return nil
}

func (t *termImpl) Events() <-chan Event {
	return t.input.events()
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call from panic recovery when the normal close path cannot run.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort reset,
	// errors ignored in crash context
	resetTerminalMode()
}
