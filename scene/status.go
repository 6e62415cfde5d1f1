package scene

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/starfetch/render"
	"github.com/lixenwraith/starfetch/sysinfo"
)

const (
	statusX      = 2
	statusDivide = " · "
)

// FooterPrompt is shown while the scene waits for a key
const FooterPrompt = "press any key to start"

// FooterReady is shown once a key was pressed
const FooterReady = "ready"

// BuildStatus joins the known host facts: user@host · os · kernel · up 3h 12m
func BuildStatus(s sysinfo.Snapshot) string {
	parts := make([]string, 0, 4)
	if t := s.Title(); t != "" {
		parts = append(parts, t)
	}
	if s.OS != "" {
		parts = append(parts, s.OS)
	}
	if s.Kernel != "" {
		parts = append(parts, s.Kernel)
	}
	if up := sysinfo.FormatUptime(s.Uptime); up != "" {
		parts = append(parts, "up "+up)
	}
	return strings.Join(parts, statusDivide)
}

// DrawStatus reveals ceil(progress × len) runes of text from x=2, clipped inside the side borders
func DrawStatus(c *render.Canvas, text string, row int, color render.RGB, progress float64) {
	if progress <= 0 || text == "" {
		return
	}
	runes := []rune(text)
	n := int(math.Ceil(progress * float64(len(runes))))
	n = min(n, len(runes))

	avail := c.Width() - statusX - 2
	if avail <= 0 {
		return
	}
	shown := runewidth.Truncate(string(runes[:n]), avail, "…")
	c.PutStr(statusX, row, shown, color, render.NoBg)
}

// DrawFooter centers text on the footer row
func DrawFooter(c *render.Canvas, text string, color render.RGB) {
	w := c.Width()
	tw := runewidth.StringWidth(text)
	x := max(1, (w-tw)/2)
	c.PutStr(x, FooterRow(c.Height()), runewidth.Truncate(text, max(0, w-2), ""), color, render.NoBg)
}
