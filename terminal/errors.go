package terminal

import "errors"

var (
	// ErrUnavailable reports that no controlling terminal exists or it cannot enter raw mode
	ErrUnavailable = errors.New("terminal unavailable")

	// ErrTooSmall reports that the terminal cannot fit the requested content
	ErrTooSmall = errors.New("terminal too small")
)
