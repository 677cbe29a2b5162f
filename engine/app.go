// Package engine drives the fixed-timestep frame loop: clear, collect
// input, run the frame callback, diff-flush to the display, sleep the
// residual budget. One failure boundary guarantees the terminal is
// restored before any failure is surfaced.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/gridframe/grid"
	"github.com/lixenwraith/gridframe/input"
	"github.com/lixenwraith/gridframe/terminal"
)

// recoverNotice is printed after terminal restoration on the failure path
const recoverNotice = "\r\n[Press 'enter' to recover the terminal]\r\n"

// FrameAction is the per-frame user callback. It receives short-lived
// mutable access to the loop state and the display surface; neither may
// be retained beyond the invocation.
type FrameAction func(*State, *grid.Window)

// App owns the loop state and the display surface
type App struct {
	config Config
	state  *State
	window *grid.Window

	// Operator acknowledgment stream for the failure path; tests inject
	recoverIn  io.Reader
	recoverOut io.Writer
}

// NewApp creates an app with default configuration on the process terminal
func NewApp() *App {
	return NewAppConfig(DefaultConfig())
}

// NewAppConfig creates an app with explicit configuration
func NewAppConfig(config Config) *App {
	return NewAppOn(config, grid.NewWindow())
}

// NewAppOn creates an app over an explicit window (tests use a fake
// terminal underneath)
func NewAppOn(config Config, window *grid.Window) *App {
	if config.FPS <= 0 {
		config.FPS = DefaultConfig().FPS
	}
	return &App{
		config: config,
		state: &State{
			keyboard: input.NewKeyboard(window.Terminal()),
		},
		window:     window,
		recoverIn:  os.Stdin,
		recoverOut: os.Stdout,
	}
}

// Window returns the owned display surface
func (a *App) Window() *grid.Window {
	return a.window
}

// State returns the loop state
func (a *App) State() *State {
	return a.state
}

// SetRecoveryStreams overrides where the failure path prints its notice
// and waits for acknowledgment. Intended for tests.
func (a *App) SetRecoveryStreams(in io.Reader, out io.Writer) {
	a.recoverIn = in
	a.recoverOut = out
}

// Run executes the frame loop until the callback calls Stop or a failure
// terminates the run.
//
// Per frame: stamp start, clear the display surface (lazy resize), snapshot
// buffered input, invoke frameAction, diff-flush, record dt, increment the
// step counter, and sleep the residual budget. A frame that overruns its
// budget is never caught up: each frame's sleep is computed from that
// frame's own elapsed time only.
//
// Any panic in the loop body and any device error funnel into one recovery
// boundary that restores the terminal, prints a notice, blocks for one line
// of operator input, closes the window, and returns the failure.
func (a *App) Run(frameAction FrameAction) error {
	budget := time.Second / time.Duration(a.config.FPS)

	if err := a.window.Open(); err != nil {
		// Never left normal mode cleanly; undo whatever was entered
		a.window.Restore()
		return err
	}

	a.logf("run start fps=%d budget=%s", a.config.FPS, budget)
	a.state.running = true

	if err := a.loop(frameAction, budget); err != nil {
		return a.recoverTerminal(err)
	}

	a.logf("run stop step=%d", a.state.step)
	return a.window.Close()
}

// loop is the failure-isolating region: panics inside any frame surface
// as errors here and nothing inside a single frame is retried
func (a *App) loop(frameAction FrameAction, budget time.Duration) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("frame action panic: %v\n%s", r, debug.Stack())
		}
	}()

	for a.state.running {
		start := time.Now()

		a.window.Clear()
		a.state.keyboard.ConsumeKeyEvents()
		if kerr := a.state.keyboard.Err(); kerr != nil {
			return fmt.Errorf("input device: %w", kerr)
		}

		frameAction(a.state, a.window)

		if derr := a.window.Draw(); derr != nil {
			return derr
		}

		a.state.dt = time.Since(start)
		a.state.step++

		if sleep := budget - a.state.dt; sleep > 0 {
			time.Sleep(sleep)
		}
	}
	return nil
}

// recoverTerminal is the recovery boundary: restore first, then surface.
// Restoration leaves raw/alternate mode so the notice is readable; the
// synchronous wait keeps the diagnostic on screen until the operator
// acknowledges it; the ordinary Close runs last for symmetry.
func (a *App) recoverTerminal(cause error) error {
	a.state.running = false

	if rerr := a.window.Restore(); rerr != nil {
		a.logf("terminal restore failed: %v", rerr)
		// The driver path itself is broken; write the raw reset sequence
		// directly so the terminal does not stay raw in the alternate screen
		terminal.EmergencyReset(a.recoverOut)
	}

	a.logf("run failed step=%d: %v", a.state.step, cause)

	fmt.Fprint(a.recoverOut, recoverNotice)
	br := bufio.NewReader(a.recoverIn)
	br.ReadString('\n')

	if cerr := a.window.Close(); cerr != nil {
		a.logf("window close failed: %v", cerr)
	}

	return cause
}

func (a *App) logf(format string, args ...any) {
	if a.config.Logger != nil {
		a.config.Logger.Printf(format, args...)
	}
}
