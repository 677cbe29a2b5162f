package terminal

// Backend abstracts platform-specific terminal operations so the command
// surface stays portable and testable against a pty.
type Backend interface {
	// Lifecycle
	// Init enters raw mode. Fini restores the saved terminal state and is
	// safe to call when Init never ran or already failed.
	Init() error
	Fini() error

	// Capabilities
	Size() (width, height int)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed,
	// or an error occurs. A nil slice with nil error means stop/EOF.
	Read(stopCh <-chan struct{}) ([]byte, error)
}
