// Package terminal provides direct control of the controlling terminal for the splash renderer.
//
// Features:
//   - /dev/tty session independent of redirected stdin/stdout
//   - Polling raw mode (VMIN=0, VTIME=0) with guaranteed restoration
//   - Device Status Report cursor query with bounded timeout
//   - Window and cell-pixel size queries
//   - True color (24-bit) and 256-color SGR emission with style coalescing
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
