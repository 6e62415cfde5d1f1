package terminal

import "time"

// Winsize is the terminal geometry in cells and, when the terminal reports it, pixels
type Winsize struct {
	Cols   int
	Rows   int
	XPixel int
	YPixel int
}

// Backend abstracts platform-specific terminal device operations.
// One implementation exists per OS family; Session never touches OS structures directly.
type Backend interface {
	// MakeRaw disables canonical input and echo with polling reads (VMIN=0, VTIME=0)
	// The original mode is captured before mutation
	MakeRaw() error

	// Restore reinstates the mode captured by MakeRaw. Safe to call multiple times
	Restore() error

	// Read returns immediately with zero bytes when nothing is pending in raw mode
	Read(p []byte) (int, error)

	// Poll waits up to timeout for input to become readable
	Poll(timeout time.Duration) (bool, error)

	// Write writes raw bytes to the terminal device
	Write(p []byte) (int, error)

	// Size queries the current window size
	Size() (Winsize, error)

	// Close releases the device
	Close() error
}
