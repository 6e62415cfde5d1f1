package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCursorReport(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantRow int
		wantCol int
		wantOK  bool
	}{
		{"Standard reply", "\x1b[24;1R", 24, 1, true},
		{"Large values", "\x1b[312;1024R", 312, 1024, true},
		{"Leading keystrokes", "abc\x1b[7;40R", 7, 40, true},
		{"Truncated no R", "\x1b[24;1", 0, 0, false},
		{"Missing column", "\x1b[24R", 0, 0, false},
		{"Empty row", "\x1b[;5R", 0, 0, false},
		{"Non-digit", "\x1b[2x;5R", 0, 0, false},
		{"No CSI", "24;1R", 0, 0, false},
		{"Empty", "", 0, 0, false},
		{"CSI only", "\x1b[", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := ParseCursorReport([]byte(tt.input))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRow, row)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}
