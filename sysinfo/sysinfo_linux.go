package sysinfo

import (
	"bufio"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

func collectPlatform(s *Snapshot) {
	if _, release, machine, ok := uname(); ok {
		s.Kernel = release
		s.Arch = machine
	}
	s.OS = osRelease("/etc/os-release")
	if s.OS == "" {
		s.OS = "Linux"
	}

	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err == nil {
		s.Uptime = time.Duration(si.Uptime) * time.Second
		unit := uint64(si.Unit)
		if unit == 0 {
			unit = 1
		}
		s.MemTotal = uint64(si.Totalram) * unit
		free := (uint64(si.Freeram) + uint64(si.Bufferram)) * unit
		if free < s.MemTotal {
			s.MemUsed = s.MemTotal - free
		}
	}

	s.CPU = cpuModel("/proc/cpuinfo")
}

// osRelease returns PRETTY_NAME, falling back to NAME
func osRelease(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	var name string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, val, ok := strings.Cut(sc.Text(), "=")
		if !ok {
			continue
		}
		val = strings.Trim(val, `"'`)
		switch key {
		case "PRETTY_NAME":
			return val
		case "NAME":
			name = val
		}
	}
	return name
}

// cpuModel returns the first "model name" line of cpuinfo
func cpuModel(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, val, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "model name" || key == "Model" {
			return strings.Join(strings.Fields(val), " ")
		}
	}
	return ""
}
