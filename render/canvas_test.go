package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/starfetch/terminal"
)

var red = RGB{R: 255}

func TestCanvas_SetOutOfBounds(t *testing.T) {
	c := New(4, 3, terminal.ColorModeTrueColor)

	assert.NotPanics(t, func() {
		c.Set(-1, 0, 'x', red, NoBg)
		c.Set(4, 0, 'x', red, NoBg)
		c.Set(0, 3, 'x', red, NoBg)
		c.Set(0, -5, 'x', red, NoBg)
	})
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, ' ', c.At(x, y).Rune)
		}
	}
}

func TestCanvas_EmptyDimensions(t *testing.T) {
	c := New(-3, 0, terminal.ColorMode256)
	assert.Equal(t, 0, c.Width())
	assert.Equal(t, 0, c.Height())
	assert.NotPanics(t, func() {
		c.Set(0, 0, 'x', red, NoBg)
		c.PutStr(0, 0, "abc", red, NoBg)
		c.SetImageMask(0, 0, 5, 5)
	})

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf, 1, 1))
	assert.Empty(t, buf.String())
}

func TestCanvas_PutStrClipsAtRightEdge(t *testing.T) {
	c := New(5, 1, terminal.ColorModeTrueColor)

	next := c.PutStr(2, 0, "hello", red, NoBg)

	assert.Equal(t, 5, next)
	assert.Equal(t, 'h', c.At(2, 0).Rune)
	assert.Equal(t, 'e', c.At(3, 0).Rune)
	assert.Equal(t, 'l', c.At(4, 0).Rune)
	assert.Equal(t, ' ', c.At(1, 0).Rune)
}

func TestCanvas_PutStrNegativeStart(t *testing.T) {
	c := New(4, 1, terminal.ColorModeTrueColor)

	c.PutStr(-2, 0, "abcd", red, NoBg)

	assert.Equal(t, 'c', c.At(0, 0).Rune)
	assert.Equal(t, 'd', c.At(1, 0).Rune)
	assert.Equal(t, ' ', c.At(2, 0).Rune)
}

func TestCanvas_PutStrWideRune(t *testing.T) {
	c := New(5, 1, terminal.ColorModeTrueColor)

	next := c.PutStr(0, 0, "a世b", red, NoBg)

	assert.Equal(t, 4, next)
	assert.Equal(t, '世', c.At(1, 0).Rune)
	assert.True(t, c.At(2, 0).Cont)
	assert.Equal(t, 'b', c.At(3, 0).Rune)

	// Overwriting the trailing half releases the lead cell
	c.Set(2, 0, 'z', red, NoBg)
	assert.Equal(t, ' ', c.At(1, 0).Rune)
	assert.False(t, c.At(2, 0).Cont)
}

func TestCanvas_WideRuneDoesNotSplitAtEdge(t *testing.T) {
	c := New(3, 1, terminal.ColorModeTrueColor)

	next := c.PutStr(1, 0, "x世", red, NoBg)

	assert.Equal(t, 2, next)
	assert.Equal(t, ' ', c.At(2, 0).Rune)
}

func TestCanvas_MaskProtectsCells(t *testing.T) {
	c := New(6, 4, terminal.ColorModeTrueColor)
	c.Fill(0, 0, 6, 4, '#', red, NoBg)

	c.SetImageMask(1, 1, 4, 3)

	c.Clear()
	c.Fill(0, 0, 6, 4, '.', red, NoBg)

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 1 && x < 4 && y >= 1 && y < 3
			assert.Equal(t, inside, c.Protected(x, y), "protected at (%d,%d)", x, y)
			if inside {
				assert.Equal(t, '#', c.At(x, y).Rune, "masked cell changed at (%d,%d)", x, y)
			} else {
				assert.Equal(t, '.', c.At(x, y).Rune)
			}
		}
	}

	r, ok := c.ImageMask()
	require.True(t, ok)
	assert.Equal(t, Rect{X0: 1, Y0: 1, X1: 4, Y1: 3}, r)
}

func TestCanvas_UnmaskRegion(t *testing.T) {
	c := New(6, 4, terminal.ColorModeTrueColor)
	c.SetImageMask(0, 0, 6, 4)

	c.UnmaskRegion(0, 2, 6, 4)
	c.Fill(0, 0, 6, 4, '.', red, NoBg)

	assert.Equal(t, ' ', c.At(0, 1).Rune)
	assert.True(t, c.Protected(5, 1))
	assert.Equal(t, '.', c.At(0, 2).Rune)
	assert.False(t, c.Protected(5, 3))
}

func TestCanvas_ClearImageMask(t *testing.T) {
	c := New(3, 3, terminal.ColorModeTrueColor)
	c.SetImageMask(-5, -5, 50, 50)

	r, ok := c.ImageMask()
	require.True(t, ok)
	assert.Equal(t, Rect{X0: 0, Y0: 0, X1: 3, Y1: 3}, r)

	c.ClearImageMask()
	_, ok = c.ImageMask()
	assert.False(t, ok)

	c.Set(1, 1, 'x', red, NoBg)
	assert.Equal(t, 'x', c.At(1, 1).Rune)
}

func TestCanvas_RenderSkipsProtectedCells(t *testing.T) {
	c := New(5, 1, terminal.ColorModeTrueColor)
	c.Set(0, 0, 'a', red, NoBg)
	c.Set(4, 0, 'b', red, NoBg)
	c.SetImageMask(1, 0, 4, 1)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf, 7, 3))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "\x1b[7;3H"), "row must start with an absolute move: %q", out)
	assert.Contains(t, out, "a\x1b[3Cb")
	assert.True(t, strings.HasSuffix(out, "\x1b[0m"))
}

func TestCanvas_RenderPositionsAfterLeadingMask(t *testing.T) {
	c := New(4, 2, terminal.ColorModeTrueColor)
	c.SetImageMask(0, 0, 2, 2)
	c.Set(2, 1, 'z', red, NoBg)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf, 1, 1))
	out := buf.String()

	assert.Contains(t, out, "\x1b[1;3H")
	assert.Contains(t, out, "\x1b[2;3H")
	assert.NotContains(t, out, "\x1b[1;1H")
}

func TestCanvas_RenderCoalescesStyle(t *testing.T) {
	c := New(3, 1, terminal.ColorModeTrueColor)
	c.PutStr(0, 0, "abc", red, NoBg)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf, 1, 1))

	assert.Equal(t, 1, strings.Count(buf.String(), "\x1b[38;2;255;0;0m"))
	assert.Contains(t, buf.String(), "abc")
}

func TestCanvas_RenderInline(t *testing.T) {
	c := New(3, 2, terminal.ColorModeTrueColor)
	c.PutStr(0, 0, "ab", red, NoBg)
	c.SetImageMask(0, 1, 3, 2)

	var buf bytes.Buffer
	require.NoError(t, c.RenderInline(&buf))
	out := buf.String()

	assert.Equal(t, 2, strings.Count(out, "\x1b[0m\n"))
	assert.NotContains(t, out, "H")
	assert.True(t, strings.HasSuffix(out, "   \x1b[0m\n"))
}
