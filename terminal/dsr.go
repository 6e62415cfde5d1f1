package terminal

import "bytes"

// ParseCursorReport parses a Device Status Report reply of the form ESC [ row ; col R
// Bytes preceding the last ESC [ (stray keystrokes) are ignored
func ParseCursorReport(b []byte) (row, col int, ok bool) {
	start := bytes.LastIndex(b, csi)
	if start < 0 {
		return 0, 0, false
	}
	body := b[start+len(csi):]
	if len(body) == 0 || body[len(body)-1] != 'R' {
		return 0, 0, false
	}
	body = body[:len(body)-1]

	sep := bytes.IndexByte(body, ';')
	if sep < 0 {
		return 0, 0, false
	}
	row, ok = parseUint(body[:sep])
	if !ok {
		return 0, 0, false
	}
	col, ok = parseUint(body[sep+1:])
	if !ok {
		return 0, 0, false
	}
	return row, col, true
}

// parseUint parses a short unsigned decimal without allocation
func parseUint(b []byte) (int, bool) {
	if len(b) == 0 || len(b) > 5 {
		return 0, false
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
