//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package sysinfo

import (
	"runtime"
)

func collectPlatform(s *Snapshot) {
	s.OS = runtime.GOOS
	s.Arch = runtime.GOARCH
}
