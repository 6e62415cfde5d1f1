package terminal

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"Black", RGB{0, 0, 0}, 16},
		{"White", RGB{255, 255, 255}, 231},
		{"Pure red", RGB{255, 0, 0}, 196},
		{"Pure blue", RGB{0, 0, 255}, 21},
		{"Mid gray", RGB{128, 128, 128}, 244},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBTo256(tt.in))
		})
	}
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want ColorMode
	}{
		{"COLORTERM truecolor", map[string]string{"COLORTERM": "truecolor"}, ColorModeTrueColor},
		{"Kitty", map[string]string{"KITTY_WINDOW_ID": "1"}, ColorModeTrueColor},
		{"TERM direct", map[string]string{"TERM": "xterm-direct"}, ColorModeTrueColor},
		{"Plain xterm", map[string]string{"TERM": "xterm-256color"}, ColorMode256},
		{"Empty", map[string]string{}, ColorMode256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectColorMode(func(k string) string { return tt.env[k] })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRGBScale(t *testing.T) {
	c := RGB{200, 100, 50}
	assert.Equal(t, RGBBlack, c.Scale(0))
	assert.Equal(t, c, c.Scale(1.5))
	assert.Equal(t, RGB{100, 50, 25}, c.Scale(0.5))
}

func TestStylerCoalesces(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	s := NewStyler(ColorModeTrueColor)

	s.Set(w, RGB{1, 2, 3}, RGBBlack, false)
	s.Set(w, RGB{1, 2, 3}, RGBBlack, false)
	w.Flush()
	assert.Equal(t, "\x1b[38;2;1;2;3m\x1b[49m", buf.String())

	buf.Reset()
	s.Set(w, RGB{1, 2, 3}, RGB{9, 9, 9}, true)
	w.Flush()
	assert.Equal(t, "\x1b[48;2;9;9;9m", buf.String())
}

func TestStyler256(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	s := NewStyler(ColorMode256)

	s.Set(w, RGB{255, 0, 0}, RGB{0, 0, 255}, true)
	w.Flush()
	assert.Equal(t, "\x1b[38;5;196m\x1b[48;5;21m", buf.String())
}

func TestWriteCursorPos(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	WriteCursorPos(w, 12, 1)
	WriteCursorForward(w, 1)
	WriteCursorForward(w, 4)
	WriteEraseRow(w, 1234)
	w.Flush()
	assert.Equal(t, "\x1b[12;1H\x1b[C\x1b[4C\x1b[1234;1H\x1b[2K", buf.String())
}
