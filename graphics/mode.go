// Package graphics selects how the splash background is drawn and encodes it for the terminal
package graphics

import (
	"strings"
)

// Mode is the background rendering strategy, decided once per run
type Mode uint8

const (
	ModeAscii Mode = iota
	ModeImage
	ModeInline
)

// String returns the config name of the mode
func (m Mode) String() string {
	switch m {
	case ModeAscii:
		return "ascii"
	case ModeImage:
		return "image"
	case ModeInline:
		return "inline"
	default:
		return "unknown"
	}
}

// ParseMode maps a config name to a mode; "auto" and "" report ok with auto true
func ParseMode(s string) (m Mode, auto bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAscii, true, true
	case "image":
		return ModeImage, false, true
	case "ascii":
		return ModeAscii, false, true
	case "inline":
		return ModeInline, false, true
	default:
		return ModeAscii, false, false
	}
}

// Protocol is an inline-graphics escape protocol
type Protocol uint8

const (
	ProtocolNone Protocol = iota
	ProtocolKitty
	ProtocolITerm
)

// String returns human-readable protocol name
func (p Protocol) String() string {
	switch p {
	case ProtocolKitty:
		return "kitty"
	case ProtocolITerm:
		return "iterm2"
	default:
		return "none"
	}
}

// ProbeProtocol inspects emulator environment signals for inline-graphics support
func ProbeProtocol(getenv func(string) string) Protocol {
	term := getenv("TERM")
	termProgram := getenv("TERM_PROGRAM")

	if getenv("KITTY_WINDOW_ID") != "" || term == "xterm-kitty" ||
		strings.EqualFold(termProgram, "ghostty") || term == "xterm-ghostty" {
		return ProtocolKitty
	}
	if termProgram == "iTerm.app" || termProgram == "WezTerm" || getenv("LC_TERMINAL") == "iTerm2" {
		return ProtocolITerm
	}
	return ProtocolNone
}

// Request carries the inputs to mode detection
type Request struct {
	// Override is a config mode name; "" or "auto" means detect
	Override string
	// Capture is set under a recording harness that replays output verbatim
	Capture bool
	// Interactive is false when no raw-capable terminal device exists
	Interactive bool
	Getenv      func(string) string
}

// DetectMode resolves the render mode and, for Image, the protocol to emit with
// Precedence: explicit override, then capture or non-interactive, then protocol probe, then Ascii
func DetectMode(req Request) (Mode, Protocol) {
	getenv := req.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	proto := ProbeProtocol(getenv)

	if m, auto, ok := ParseMode(req.Override); ok && !auto {
		if m == ModeImage && proto == ProtocolNone {
			proto = ProtocolKitty
		}
		return m, proto
	}

	if req.Capture || !req.Interactive {
		return ModeInline, ProtocolNone
	}
	if proto != ProtocolNone {
		return ModeImage, proto
	}
	return ModeAscii, ProtocolNone
}
