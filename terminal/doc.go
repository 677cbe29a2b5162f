// Package terminal provides direct ANSI terminal control for the renderer.
//
// Features:
//   - 256-color palette output through pre-allocated CSI fragments
//   - Buffered command surface flushed explicitly by the caller
//   - Raw stdin input parsing with escape sequence handling
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
