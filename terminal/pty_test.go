//go:build unix

package terminal

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
)

// openTestPty returns a pty pair sized 20x10 with cleanup registered
func openTestPty(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open pty: %v", err)
	}
	t.Cleanup(func() {
		ptmx.Close()
		tty.Close()
	})
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 10, Cols: 20}); err != nil {
		t.Fatalf("set pty size: %v", err)
	}
	return ptmx, tty
}

// readUntil reads the master side until want appears or the deadline hits
func readUntil(t *testing.T, ptmx *os.File, want string) string {
	t.Helper()
	var out bytes.Buffer
	buf := make([]byte, 4096)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ptmx.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
		n, _ := ptmx.Read(buf)
		if n > 0 {
			out.Write(buf[:n])
			if strings.Contains(out.String(), want) {
				return out.String()
			}
		}
	}
	t.Fatalf("pty output %q never contained %q", out.String(), want)
	return ""
}

func TestPtyLifecycle(t *testing.T) {
	ptmx, tty := openTestPty(t)

	term := NewWithFiles(tty, tty)

	if w, h := term.Size(); w != 20 || h != 10 {
		t.Fatalf("Size() = (%d,%d), expected (20,10)", w, h)
	}

	if err := term.EnableRawMode(); err != nil {
		t.Fatalf("EnableRawMode() error: %v", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.MoveTo(0, 0)
	if err := term.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	out := readUntil(t, ptmx, "\x1b[?25l")
	if !strings.Contains(out, "\x1b[?1049h") {
		t.Errorf("alternate screen sequence missing from %q", out)
	}

	// Keystrokes written to the master surface as parsed events
	if _, err := ptmx.WriteString("q\x1b[A"); err != nil {
		t.Fatalf("write input: %v", err)
	}

	var got []Event
	deadline := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case ev := <-term.Events():
			if ev.Type == EventKey {
				got = append(got, ev)
			}
		case <-deadline:
			t.Fatalf("timed out waiting for events, got %+v", got)
		}
	}
	if got[0].Key != KeyRune || got[0].Rune != 'q' {
		t.Errorf("first event = %+v, expected rune q", got[0])
	}
	if got[1].Key != KeyUp {
		t.Errorf("second event = %+v, expected KeyUp", got[1])
	}

	term.ShowCursor()
	term.LeaveAltScreen()
	if err := term.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}
	readUntil(t, ptmx, "\x1b[?1049l")

	if err := term.DisableRawMode(); err != nil {
		t.Errorf("DisableRawMode() error: %v", err)
	}
	// Second disable is a no-op
	if err := term.DisableRawMode(); err != nil {
		t.Errorf("repeated DisableRawMode() error: %v", err)
	}
}
