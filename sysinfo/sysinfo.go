// Package sysinfo collects the host facts shown by the fetch panel and the splash status line
package sysinfo

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"
)

// Field keys in default display order
const (
	FieldOS       = "OS"
	FieldHost     = "Host"
	FieldKernel   = "Kernel"
	FieldUptime   = "Uptime"
	FieldShell    = "Shell"
	FieldTerminal = "Terminal"
	FieldCPU      = "CPU"
	FieldMemory   = "Memory"
)

// DefaultFields lists every field key in display order
var DefaultFields = []string{
	FieldOS, FieldHost, FieldKernel, FieldUptime,
	FieldShell, FieldTerminal, FieldCPU, FieldMemory,
}

// Snapshot is a point-in-time view of the host
// Zero values mean unknown and are omitted from output
type Snapshot struct {
	User     string
	Host     string
	OS       string
	Arch     string
	Kernel   string
	Uptime   time.Duration
	Shell    string
	Terminal string
	CPU      string

	MemTotal uint64
	MemUsed  uint64
}

// Field is one labelled line of the fetch panel
type Field struct {
	Key   string
	Value string
}

// Collect gathers a snapshot; failures leave the affected field empty
func Collect() Snapshot {
	s := Snapshot{
		User:     currentUser(),
		Shell:    filepath.Base(os.Getenv("SHELL")),
		Terminal: terminalName(os.Getenv),
	}
	if s.Shell == "." || s.Shell == string(filepath.Separator) {
		s.Shell = ""
	}
	if h, err := os.Hostname(); err == nil {
		s.Host = strings.TrimSuffix(h, ".local")
	}
	collectPlatform(&s)
	return s
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// terminalName prefers the emulator-reported program over TERM
func terminalName(getenv func(string) string) string {
	if p := getenv("TERM_PROGRAM"); p != "" {
		return p
	}
	if getenv("KITTY_WINDOW_ID") != "" {
		return "kitty"
	}
	if getenv("WT_SESSION") != "" {
		return "Windows Terminal"
	}
	return getenv("TERM")
}

// Title returns user@host
func (s Snapshot) Title() string {
	switch {
	case s.User != "" && s.Host != "":
		return s.User + "@" + s.Host
	case s.Host != "":
		return s.Host
	default:
		return s.User
	}
}

// Fields returns every known field in display order, skipping unknown values
func (s Snapshot) Fields() []Field {
	values := map[string]string{
		FieldOS:       s.osLine(),
		FieldHost:     s.Host,
		FieldKernel:   s.Kernel,
		FieldUptime:   FormatUptime(s.Uptime),
		FieldShell:    s.Shell,
		FieldTerminal: s.Terminal,
		FieldCPU:      s.CPU,
		FieldMemory:   s.memoryLine(),
	}

	fields := make([]Field, 0, len(DefaultFields))
	for _, k := range DefaultFields {
		if v := values[k]; v != "" {
			fields = append(fields, Field{Key: k, Value: v})
		}
	}
	return fields
}

// Lookup returns the value of a field key, case-insensitively
func (s Snapshot) Lookup(key string) (string, bool) {
	for _, f := range s.Fields() {
		if strings.EqualFold(f.Key, key) {
			return f.Value, true
		}
	}
	return "", false
}

func (s Snapshot) osLine() string {
	if s.OS == "" || s.Arch == "" {
		return s.OS
	}
	return s.OS + " " + s.Arch
}

func (s Snapshot) memoryLine() string {
	if s.MemTotal == 0 {
		return ""
	}
	return FormatBytes(s.MemUsed) + " / " + FormatBytes(s.MemTotal)
}

// FormatUptime renders a duration as "2d 3h", "3h 12m" or "5m"; zero is empty
func FormatUptime(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	mins := int(d / time.Minute)
	days := mins / (24 * 60)
	hours := mins / 60 % 24
	mins %= 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// FormatBytes renders a byte count in binary units with one decimal
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit && exp < 4; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTP"[exp])
}
