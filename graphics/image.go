package graphics

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrDecode reports an unreadable or undecodable background image
var ErrDecode = errors.New("image decode failed")

// DefaultCellPixelW and DefaultCellPixelH are used when the terminal does not report pixel size
const (
	DefaultCellPixelW = 8
	DefaultCellPixelH = 16
)

// Stretch controls how an image is mapped onto a target rectangle of different aspect
type Stretch uint8

const (
	StretchFill Stretch = iota // scale both axes independently
	StretchFit                 // letterbox inside the target
	StretchCrop                // cover the target and trim the overflow
)

// ParseStretch maps a config name to a stretch mode
func ParseStretch(s string) (Stretch, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fill":
		return StretchFill, true
	case "fit":
		return StretchFit, true
	case "crop":
		return StretchCrop, true
	default:
		return StretchFill, false
	}
}

// String returns the config name
func (s Stretch) String() string {
	switch s {
	case StretchFit:
		return "fit"
	case StretchCrop:
		return "crop"
	default:
		return "fill"
	}
}

// Load decodes a PNG, JPEG, GIF or WebP file
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return img, nil
}

// Resize scales img to exactly w×h pixels
func Resize(img image.Image, w, h int, stretch Stretch) *image.RGBA {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	src := img.Bounds()
	if src.Empty() {
		return dst
	}
	sw, sh := float64(src.Dx()), float64(src.Dy())

	switch stretch {
	case StretchFit:
		scale := math.Min(float64(w)/sw, float64(h)/sh)
		dw := max(1, int(math.Round(sw*scale)))
		dh := max(1, int(math.Round(sh*scale)))
		ox, oy := (w-dw)/2, (h-dh)/2
		draw.CatmullRom.Scale(dst, image.Rect(ox, oy, ox+dw, oy+dh), img, src, draw.Src, nil)

	case StretchCrop:
		scale := math.Max(float64(w)/sw, float64(h)/sh)
		cw := min(src.Dx(), max(1, int(math.Round(float64(w)/scale))))
		ch := min(src.Dy(), max(1, int(math.Round(float64(h)/scale))))
		x0 := src.Min.X + (src.Dx()-cw)/2
		y0 := src.Min.Y + (src.Dy()-ch)/2
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, image.Rect(x0, y0, x0+cw, y0+ch), draw.Src, nil)

	default:
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	}
	return dst
}

// PixelSize converts a cell rectangle to pixels, defaulting unknown cell sizes to 8×16
func PixelSize(cellsW, cellsH, cellPxW, cellPxH int) (int, int) {
	if cellPxW <= 0 {
		cellPxW = DefaultCellPixelW
	}
	if cellPxH <= 0 {
		cellPxH = DefaultCellPixelH
	}
	return cellsW * cellPxW, cellsH * cellPxH
}

// Encode returns img as PNG bytes, the payload format of both inline protocols
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// CellSizeFor returns the natural cell footprint of img at the given cell pixel size
func CellSizeFor(img image.Image, cellPxW, cellPxH int) (float64, float64) {
	if cellPxW <= 0 {
		cellPxW = DefaultCellPixelW
	}
	if cellPxH <= 0 {
		cellPxH = DefaultCellPixelH
	}
	b := img.Bounds()
	return float64(b.Dx()) / float64(cellPxW), float64(b.Dy()) / float64(cellPxH)
}

// FitWithChrome returns the largest box, chrome included, whose interior keeps the cw:ch aspect
// and fits a termW×termH terminal with one spare column and row
func FitWithChrome(cw, ch float64, termW, termH, chromeW, chromeH int) (int, int) {
	availW := termW - 1 - chromeW
	availH := termH - 1 - chromeH
	if cw <= 0 || ch <= 0 || availW <= 0 || availH <= 0 {
		return max(0, termW-1), max(0, termH-1)
	}

	scale := math.Min(float64(availW)/cw, float64(availH)/ch)
	iw := max(1, int(cw*scale))
	ih := max(1, int(ch*scale))
	return iw + chromeW, ih + chromeH
}
