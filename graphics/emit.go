package graphics

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"

	"github.com/lixenwraith/starfetch/terminal"
)

// KittyChunkSize is the maximum base64 payload per kitty graphics escape
const KittyChunkSize = 4096

// Emit positions the cursor at the 1-indexed (row, col) and writes png as an inline image
// spanning cellsW×cellsH cells
func Emit(w io.Writer, proto Protocol, png []byte, cellsW, cellsH, row, col int) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	terminal.WriteCursorPos(bw, row, col)

	switch proto {
	case ProtocolKitty:
		writeKitty(bw, png, cellsW, cellsH)
	case ProtocolITerm:
		writeITerm(bw, png, cellsW, cellsH)
	default:
		return fmt.Errorf("emit image: unsupported protocol %s", proto)
	}
	return bw.Flush()
}

// writeKitty transmits and displays a PNG (a=T, f=100) in chunks, suppressing replies (q=2)
func writeKitty(w *bufio.Writer, png []byte, cellsW, cellsH int) {
	payload := base64.StdEncoding.EncodeToString(png)

	first := true
	for first || len(payload) > 0 {
		n := min(len(payload), KittyChunkSize)
		chunk := payload[:n]
		payload = payload[n:]

		more := "0"
		if len(payload) > 0 {
			more = "1"
		}

		w.WriteString("\x1b_G")
		if first {
			w.WriteString("a=T,f=100,c=")
			w.WriteString(strconv.Itoa(cellsW))
			w.WriteString(",r=")
			w.WriteString(strconv.Itoa(cellsH))
			w.WriteString(",q=2,")
		}
		w.WriteString("m=")
		w.WriteString(more)
		w.WriteByte(';')
		w.WriteString(chunk)
		w.WriteString("\x1b\\")
		first = false
	}
}

// writeITerm writes the OSC 1337 inline file sequence
func writeITerm(w *bufio.Writer, png []byte, cellsW, cellsH int) {
	w.WriteString("\x1b]1337;File=inline=1;size=")
	w.WriteString(strconv.Itoa(len(png)))
	w.WriteString(";width=")
	w.WriteString(strconv.Itoa(cellsW))
	w.WriteString(";height=")
	w.WriteString(strconv.Itoa(cellsH))
	w.WriteString(";preserveAspectRatio=0:")

	enc := base64.NewEncoder(base64.StdEncoding, w)
	enc.Write(png)
	enc.Close()

	w.WriteByte('\a')
}
