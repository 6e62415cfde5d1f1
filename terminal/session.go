package terminal

import (
	"time"
)

const (
	// DefaultCols and DefaultRows are used when the window size cannot be queried
	DefaultCols = 80
	DefaultRows = 24

	// CursorQueryTimeout bounds the wait for a DSR response
	CursorQueryTimeout = 100 * time.Millisecond

	// cursorReplyBudget caps bytes consumed while waiting for a DSR reply
	cursorReplyBudget = 32

	// keyReadSize is the scratch size for draining a keypress
	keyReadSize = 64
)

// Session owns the controlling terminal for the duration of a splash run.
// Only one Session should hold raw mode at a time; Close restores it unconditionally.
type Session struct {
	backend Backend
	raw     bool
	keyBuf  [keyReadSize]byte
}

// Open acquires the controlling terminal device
// Returns an error wrapping ErrUnavailable when there is no controlling terminal
func Open() (*Session, error) {
	b, err := openBackend()
	if err != nil {
		return nil, err
	}
	return NewSession(b), nil
}

// Available reports whether a controlling terminal can be opened, regardless of
// where stdin and stdout point
func Available() bool {
	b, err := openBackend()
	if err != nil {
		return false
	}
	b.Close()
	return true
}

// NewSession wraps an existing backend
func NewSession(b Backend) *Session {
	return &Session{backend: b}
}

// EnterRawMode switches to polling raw mode, capturing the original mode first
func (s *Session) EnterRawMode() error {
	if s.raw {
		return nil
	}
	if err := s.backend.MakeRaw(); err != nil {
		return err
	}
	s.raw = true
	return nil
}

// Restore returns the terminal to the mode captured by EnterRawMode. Safe to call multiple times
func (s *Session) Restore() error {
	if !s.raw {
		return nil
	}
	s.raw = false
	return s.backend.Restore()
}

// Close restores the terminal mode and releases the device
func (s *Session) Close() error {
	s.Restore()
	return s.backend.Close()
}

// Raw reports whether raw mode is held
func (s *Session) Raw() bool {
	return s.raw
}

// PollKey drains pending input without blocking, reporting whether any byte was read
// Key content is irrelevant; any byte counts as one cancel signal
func (s *Session) PollKey() bool {
	n, err := s.backend.Read(s.keyBuf[:])
	return err == nil && n > 0
}

// QueryCursorRow asks the terminal for the cursor position and waits up to timeout for the reply
// Requires raw mode, since canonical mode withholds input until newline
// Returns ok=false on timeout, malformed, or partial response
func (s *Session) QueryCursorRow(timeout time.Duration) (int, bool) {
	if _, err := s.backend.Write(csiDSR); err != nil {
		return 0, false
	}

	deadline := time.Now().Add(timeout)
	var buf [cursorReplyBudget]byte
	n := 0
	for n < len(buf) {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		ready, err := s.backend.Poll(remaining)
		if err != nil || !ready {
			break
		}
		rn, err := s.backend.Read(buf[n : n+1])
		if err != nil {
			break
		}
		if rn == 0 {
			continue
		}
		n++
		if buf[n-1] == 'R' {
			break
		}
	}

	row, _, ok := ParseCursorReport(buf[:n])
	return row, ok
}

// WindowSize returns the terminal size in cells, falling back to 80x24
func (s *Session) WindowSize() (int, int) {
	ws, err := s.backend.Size()
	if err != nil || ws.Cols <= 0 || ws.Rows <= 0 {
		return DefaultCols, DefaultRows
	}
	return ws.Cols, ws.Rows
}

// CellPixelSize returns the pixel size of one cell when the terminal reports pixel dimensions
func (s *Session) CellPixelSize() (int, int, bool) {
	ws, err := s.backend.Size()
	if err != nil || ws.Cols <= 0 || ws.Rows <= 0 || ws.XPixel <= 0 || ws.YPixel <= 0 {
		return 0, 0, false
	}
	w, h := ws.XPixel/ws.Cols, ws.YPixel/ws.Rows
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// Write writes raw bytes to the terminal
func (s *Session) Write(p []byte) (int, error) {
	return s.backend.Write(p)
}
