package terminal

import (
	"bufio"
	"bytes"
	"testing"
)

func TestWriteInt(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{-3, "0"},
		{0, "0"},
		{7, "7"},
		{10, "10"},
		{42, "42"},
		{99, "99"},
		{100, "100"},
		{255, "255"},
		{999, "999"},
		{1000, "1000"},
		{12345, "12345"},
	}
	for _, tt := range cases {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		writeInt(w, tt.n)
		w.Flush()
		if got := buf.String(); got != tt.want {
			t.Errorf("writeInt(%d) = %q, expected %q", tt.n, got, tt.want)
		}
	}
}

func TestWriteCursorPos(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeCursorPos(w, 0, 0)
	w.Flush()
	if got := buf.String(); got != "\x1b[1;1H" {
		t.Errorf("writeCursorPos(0,0) = %q, expected ESC[1;1H", got)
	}

	buf.Reset()
	w = bufio.NewWriter(&buf)
	writeCursorPos(w, 15, 7)
	w.Flush()
	if got := buf.String(); got != "\x1b[8;16H" {
		t.Errorf("writeCursorPos(15,7) = %q, expected ESC[8;16H", got)
	}
}

func TestWriteColor256(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeFg256(w, 196)
	writeBg256(w, 16)
	w.Flush()
	if got := buf.String(); got != "\x1b[38;5;196m\x1b[48;5;16m" {
		t.Errorf("color sequences = %q", got)
	}
}
