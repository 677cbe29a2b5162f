package grid

import (
	"fmt"

	"github.com/lixenwraith/gridframe/terminal"
	"github.com/lixenwraith/gridframe/vmath"
)

// Window owns exactly one canvas sized to the live display and reconciles
// it to the terminal with minimal command volume. It also owns the
// terminal lifecycle: Open is the single place the terminal transitions
// from normal to application-owned mode.
type Window struct {
	canvas *Canvas
	term   terminal.Terminal
	opened bool
}

// NewWindow creates a window on the process terminal, with a canvas sized
// to the current display and the standard blank default element.
func NewWindow() *Window {
	return NewWindowOn(terminal.New())
}

// NewWindowOn creates a window over an explicit terminal (tests use a fake)
func NewWindowOn(t terminal.Terminal) *Window {
	w, h := t.Size()
	return &Window{
		canvas: NewCanvas(vmath.XY(w, h), DefaultElement()),
		term:   t,
	}
}

// Canvas returns the owned canvas. The pointer is invalidated by the next
// Clear that observes a display resize.
func (w *Window) Canvas() *Canvas {
	return w.canvas
}

// Terminal returns the underlying driver (input wiring reads its events)
func (w *Window) Terminal() terminal.Terminal {
	return w.term
}

// Size returns the canvas dimension
func (w *Window) Size() vmath.Vec2 {
	return w.canvas.Dimension()
}

// Open switches the terminal into application-owned mode: alternate
// screen, clean attributes, hidden cursor, known render state, raw input.
// All commands are batched and flushed once.
func (w *Window) Open() error {
	w.term.EnterAltScreen()
	w.term.ResetColors()
	w.term.ResetAttributes()
	w.term.HideCursor()

	w.cleanState()

	if err := w.term.EnableRawMode(); err != nil {
		return fmt.Errorf("open window: %w", err)
	}

	if err := w.term.Flush(); err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	w.opened = true
	return nil
}

// Close restores the terminal. Raw mode is disabled before leaving the
// alternate screen; exiting the altered display while still raw can
// desynchronize local terminal state. Safe to call a second time.
func (w *Window) Close() error {
	if !w.opened {
		return nil
	}
	w.opened = false

	if err := w.term.DisableRawMode(); err != nil {
		return fmt.Errorf("close window: %w", err)
	}

	w.term.ShowCursor()
	w.term.ResetAttributes()
	w.term.ResetColors()
	w.term.LeaveAltScreen()

	if err := w.term.Flush(); err != nil {
		return fmt.Errorf("close window: %w", err)
	}
	return nil
}

// Restore is the raw-mode-sensitive subset of Close used on the failure
// path: it returns the terminal to non-raw, normal-screen state so a
// diagnostic can be printed, leaving the full Close for later.
func (w *Window) Restore() error {
	if err := w.term.DisableRawMode(); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	w.term.ShowCursor()
	w.term.ResetAttributes()
	w.term.ResetColors()
	w.term.LeaveAltScreen()
	if err := w.term.Flush(); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// Clear prepares the canvas for the next frame. Resize detection is lazy,
// here and only here: when the display dimension changed, the canvas is
// rebuilt at the new size with its configured default element (a hard
// content reset, not a resize-with-copy); otherwise the canvas is filled
// with its default.
func (w *Window) Clear() {
	dw, dh := w.term.Size()
	size := vmath.XY(dw, dh)
	if w.canvas.Dimension() != size {
		w.canvas = NewCanvas(size, w.canvas.DefaultElement())
	} else {
		w.canvas.Clear()
	}
}

// Draw reconciles the canvas to the terminal: one full row-major sweep
// from a known render state, emitting a color command only on a color
// transition boundary. Every cell's rune is always printed; no newlines
// are issued between rows (the device wraps at the declared width).
// Output is flushed exactly once.
func (w *Window) Draw() error {
	w.cleanState()

	// Transition tracking is transient render state, seeded from the
	// canvas defaults that cleanState just emitted
	lastForeground := w.canvas.DefaultElement().Foreground
	lastBackground := w.canvas.DefaultElement().Background

	for _, element := range w.canvas.Cells() {
		if element.Foreground != lastForeground {
			w.term.SetForeground(element.Foreground.Code())
			lastForeground = element.Foreground
		}
		if element.Background != lastBackground {
			w.term.SetBackground(element.Background.Code())
			lastBackground = element.Background
		}
		w.term.Print(element.Value)
	}

	w.cleanState()

	if err := w.term.Flush(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

// cleanState re-establishes the known starting render state: default
// colors emitted, cursor at origin.
func (w *Window) cleanState() {
	def := w.canvas.DefaultElement()
	w.term.SetForeground(def.Foreground.Code())
	w.term.SetBackground(def.Background.Code())
	w.term.MoveTo(0, 0)
}
