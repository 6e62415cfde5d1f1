//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import "fmt"

func openBackend() (Backend, error) {
	return nil, fmt.Errorf("%w: unsupported platform", ErrUnavailable)
}

// StdoutSize returns the fallback size on platforms without winsize ioctls
func StdoutSize() (int, int) {
	return DefaultCols, DefaultRows
}

func resetTerminalMode() {}
