package sysinfo

import (
	"time"

	"golang.org/x/sys/unix"
)

func collectPlatform(s *Snapshot) {
	if _, release, machine, ok := uname(); ok {
		s.Kernel = release
		s.Arch = machine
	}
	s.OS = "macOS"
	if v, err := unix.Sysctl("kern.osproductversion"); err == nil && v != "" {
		s.OS += " " + v
	}
	if tv, err := unix.SysctlTimeval("kern.boottime"); err == nil {
		boot := time.Unix(tv.Unix())
		s.Uptime = time.Since(boot).Truncate(time.Second)
	}
	if total, err := unix.SysctlUint64("hw.memsize"); err == nil {
		s.MemTotal = total
	}
	if cpu, err := unix.Sysctl("machdep.cpu.brand_string"); err == nil {
		s.CPU = cpu
	}
}
