//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ttyPath is the controlling terminal, used instead of stdin/stdout which may be redirected
const ttyPath = "/dev/tty"

type unixBackend struct {
	f     *os.File
	fd    int
	saved *term.State
}

func openBackend() (Backend, error) {
	f, err := os.OpenFile(ttyPath, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, ttyPath, err)
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		f.Close()
		return nil, fmt.Errorf("%w: %s is not a terminal", ErrUnavailable, ttyPath)
	}
	return &unixBackend{f: f, fd: fd}, nil
}

func (b *unixBackend) MakeRaw() error {
	if b.saved != nil {
		return nil
	}

	state, err := term.GetState(b.fd)
	if err != nil {
		return fmt.Errorf("%w: get state: %v", ErrUnavailable, err)
	}

	t, err := unix.IoctlGetTermios(b.fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("%w: get termios: %v", ErrUnavailable, err)
	}
	t.Lflag &^= unix.ICANON | unix.ECHO
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(b.fd, ioctlWriteTermios, t); err != nil {
		return fmt.Errorf("%w: set termios: %v", ErrUnavailable, err)
	}

	b.saved = state
	return nil
}

func (b *unixBackend) Restore() error {
	if b.saved == nil {
		return nil
	}
	err := term.Restore(b.fd, b.saved)
	b.saved = nil
	return err
}

func (b *unixBackend) Read(p []byte) (int, error) {
	for {
		n, err := unix.Read(b.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err == unix.EAGAIN {
			return 0, nil
		}
		if n < 0 {
			n = 0
		}
		return n, err
	}
}

func (b *unixBackend) Poll(timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{
		{Fd: int32(b.fd), Events: unix.POLLIN},
	}
	ms := int(timeout / time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	for {
		n, err := unix.Poll(fds, ms)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0 && fds[0].Revents&unix.POLLIN != 0, nil
	}
}

func (b *unixBackend) Write(p []byte) (int, error) {
	return b.f.Write(p)
}

func (b *unixBackend) Size() (Winsize, error) {
	ws, err := unix.IoctlGetWinsize(b.fd, unix.TIOCGWINSZ)
	if err != nil {
		return Winsize{}, err
	}
	return Winsize{
		Cols:   int(ws.Col),
		Rows:   int(ws.Row),
		XPixel: int(ws.Xpixel),
		YPixel: int(ws.Ypixel),
	}, nil
}

func (b *unixBackend) Close() error {
	b.Restore()
	return b.f.Close()
}

// StdoutSize returns the size of the terminal attached to stdout, falling back to 80x24
func StdoutSize() (int, int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return DefaultCols, DefaultRows
	}
	return int(ws.Col), int(ws.Row)
}

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	if tty, err := os.OpenFile(ttyPath, os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		if termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios); err == nil {
			termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			termios.Iflag |= unix.ICRNL
			unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
		}
	}
}
