package sysinfo

import (
	"github.com/goccy/go-json"
)

// jsonSnapshot is the machine-readable form; display strings sit next to raw values
type jsonSnapshot struct {
	User          string `json:"user,omitempty"`
	Host          string `json:"host,omitempty"`
	OS            string `json:"os,omitempty"`
	Arch          string `json:"arch,omitempty"`
	Kernel        string `json:"kernel,omitempty"`
	Uptime        string `json:"uptime,omitempty"`
	UptimeSeconds int64  `json:"uptime_seconds,omitempty"`
	Shell         string `json:"shell,omitempty"`
	Terminal      string `json:"terminal,omitempty"`
	CPU           string `json:"cpu,omitempty"`
	Memory        string `json:"memory,omitempty"`
	MemTotal      uint64 `json:"memory_total_bytes,omitempty"`
	MemUsed       uint64 `json:"memory_used_bytes,omitempty"`
}

// JSON encodes the snapshot as an indented object; unknown fields are omitted
func (s Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(jsonSnapshot{
		User:          s.User,
		Host:          s.Host,
		OS:            s.OS,
		Arch:          s.Arch,
		Kernel:        s.Kernel,
		Uptime:        FormatUptime(s.Uptime),
		UptimeSeconds: int64(s.Uptime.Seconds()),
		Shell:         s.Shell,
		Terminal:      s.Terminal,
		CPU:           s.CPU,
		Memory:        s.memoryLine(),
		MemTotal:      s.MemTotal,
		MemUsed:       s.MemUsed,
	}, "", "  ")
}
