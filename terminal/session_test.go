package terminal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend replays scripted input and records output
type fakeBackend struct {
	input    []byte
	written  []byte
	size     Winsize
	sizeErr  error
	rawCalls int
	restores int
	closed   bool
}

func (f *fakeBackend) MakeRaw() error { f.rawCalls++; return nil }
func (f *fakeBackend) Restore() error { f.restores++; return nil }

func (f *fakeBackend) Read(p []byte) (int, error) {
	n := copy(p, f.input)
	f.input = f.input[n:]
	return n, nil
}

func (f *fakeBackend) Poll(time.Duration) (bool, error) {
	return len(f.input) > 0, nil
}

func (f *fakeBackend) Write(p []byte) (int, error) {
	f.written = append(f.written, p...)
	return len(p), nil
}

func (f *fakeBackend) Size() (Winsize, error) { return f.size, f.sizeErr }
func (f *fakeBackend) Close() error           { f.closed = true; return nil }

func TestQueryCursorRow(t *testing.T) {
	b := &fakeBackend{input: []byte("\x1b[24;1R")}
	s := NewSession(b)

	row, ok := s.QueryCursorRow(CursorQueryTimeout)
	require.True(t, ok)
	assert.Equal(t, 24, row)
	assert.Equal(t, "\x1b[6n", string(b.written))
}

func TestQueryCursorRowStopsAtR(t *testing.T) {
	b := &fakeBackend{input: []byte("\x1b[3;9Rxyz")}
	s := NewSession(b)

	row, ok := s.QueryCursorRow(CursorQueryTimeout)
	require.True(t, ok)
	assert.Equal(t, 3, row)
	assert.Equal(t, "xyz", string(b.input), "bytes after the reply stay pending")
}

func TestQueryCursorRowTruncated(t *testing.T) {
	b := &fakeBackend{input: []byte("\x1b[24;")}
	s := NewSession(b)

	_, ok := s.QueryCursorRow(10 * time.Millisecond)
	assert.False(t, ok)
}

func TestQueryCursorRowByteBudget(t *testing.T) {
	garbage := make([]byte, 64)
	for i := range garbage {
		garbage[i] = 'x'
	}
	b := &fakeBackend{input: garbage}
	s := NewSession(b)

	_, ok := s.QueryCursorRow(CursorQueryTimeout)
	assert.False(t, ok)
	assert.Len(t, b.input, 64-cursorReplyBudget)
}

func TestPollKey(t *testing.T) {
	b := &fakeBackend{}
	s := NewSession(b)
	assert.False(t, s.PollKey())

	b.input = []byte("q")
	assert.True(t, s.PollKey())
	assert.False(t, s.PollKey(), "key is consumed")
}

func TestRawModeRestoreIdempotent(t *testing.T) {
	b := &fakeBackend{}
	s := NewSession(b)

	require.NoError(t, s.EnterRawMode())
	require.NoError(t, s.EnterRawMode())
	assert.Equal(t, 1, b.rawCalls)
	assert.True(t, s.Raw())

	require.NoError(t, s.Restore())
	require.NoError(t, s.Restore())
	assert.Equal(t, 1, b.restores)

	require.NoError(t, s.Close())
	assert.True(t, b.closed)
	assert.Equal(t, 1, b.restores)
}

func TestWindowSizeFallback(t *testing.T) {
	b := &fakeBackend{sizeErr: errors.New("no tty")}
	s := NewSession(b)

	w, h := s.WindowSize()
	assert.Equal(t, DefaultCols, w)
	assert.Equal(t, DefaultRows, h)

	b.sizeErr = nil
	b.size = Winsize{Cols: 120, Rows: 40}
	w, h = s.WindowSize()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}

func TestCellPixelSize(t *testing.T) {
	b := &fakeBackend{size: Winsize{Cols: 100, Rows: 50, XPixel: 1000, YPixel: 1000}}
	s := NewSession(b)

	w, h, ok := s.CellPixelSize()
	require.True(t, ok)
	assert.Equal(t, 10, w)
	assert.Equal(t, 20, h)

	b.size = Winsize{Cols: 100, Rows: 50}
	_, _, ok = s.CellPixelSize()
	assert.False(t, ok)
}
