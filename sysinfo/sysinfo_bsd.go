//go:build freebsd || netbsd || openbsd || dragonfly

package sysinfo

import (
	"time"

	"golang.org/x/sys/unix"
)

func collectPlatform(s *Snapshot) {
	if sysname, release, machine, ok := uname(); ok {
		s.OS = sysname
		s.Kernel = release
		s.Arch = machine
	}
	if tv, err := unix.SysctlTimeval("kern.boottime"); err == nil {
		s.Uptime = time.Since(time.Unix(tv.Unix())).Truncate(time.Second)
	}
	if total, err := unix.SysctlUint64("hw.physmem"); err == nil {
		s.MemTotal = total
	}
	if cpu, err := unix.Sysctl("hw.model"); err == nil {
		s.CPU = cpu
	}
}
