package chime

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func peak(samples [][2]float64) float64 {
	var m float64
	for _, s := range samples {
		m = math.Max(m, math.Abs(s[0]))
	}
	return m
}

func TestGeneratorEnvelope(t *testing.T) {
	rate := beep.SampleRate(44100)
	gen := NewGenerator(rate)

	early := make([][2]float64, rate.N(Duration/8))
	n, ok := gen.Stream(early)
	assert.True(t, ok)
	assert.Equal(t, len(early), n)

	late := make([][2]float64, rate.N(Duration/8))
	gen.Stream(late)

	assert.LessOrEqual(t, peak(early), gain)
	assert.Greater(t, peak(early), 0.1)
	assert.Less(t, peak(late), peak(early))
	assert.Zero(t, early[0][0], "attack starts from silence")
	assert.Equal(t, early[100][0], early[100][1])
	assert.NoError(t, gen.Err())
}

func TestTakeLimitsLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := beep.Take(rate.N(Duration), NewGenerator(rate))

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, rate.N(Duration), total)
}

func TestPlayBeforeInitializeIsNoop(t *testing.T) {
	p := NewPlayer()
	p.Play()
	p.Close()
	assert.Zero(t, p.mixer.Len())
}
