package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	csiReset = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH
	csiEraseLine  = []byte("\x1b[2K")

	// Device Status Report: cursor position request, answered by ESC[row;colR
	csiDSR = []byte("\x1b[6n")

	// Color prefixes
	csiFg256     = []byte("\x1b[38;5;") // followed by N;m
	csiBg256     = []byte("\x1b[48;5;") // followed by N;m
	csiFgRGB     = []byte("\x1b[38;2;") // followed by R;G;B;m
	csiBgRGB     = []byte("\x1b[48;2;") // followed by R;G;B;m
	csiDefaultBg = []byte("\x1b[49m")
)

// Exported sequences for callers writing outside a Canvas
var (
	SeqCursorHide = csiCursorHide
	SeqCursorShow = csiCursorShow
)

// WriteInt writes a non-negative integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func WriteInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// WriteCursorPos writes an absolute cursor position sequence (1-indexed row and column)
func WriteCursorPos(w *bufio.Writer, row, col int) {
	w.Write(csiCursorPos)
	WriteInt(w, row)
	w.WriteByte(';')
	WriteInt(w, col)
	w.WriteByte('H')
}

// WriteCursorForward writes cursor forward N positions
func WriteCursorForward(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	if n == 1 {
		w.Write([]byte("\x1b[C"))
		return
	}
	w.Write(csi)
	WriteInt(w, n)
	w.WriteByte('C')
}

// WriteEraseRow positions the cursor at the start of row and erases the whole line
func WriteEraseRow(w *bufio.Writer, row int) {
	WriteCursorPos(w, row, 1)
	w.Write(csiEraseLine)
}
