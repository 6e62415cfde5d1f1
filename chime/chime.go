// Package chime plays the short tone that accompanies the splash exit flash
package chime

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// Duration is the length of one chime
	Duration = 400 * time.Millisecond
)

// Player owns the speaker for the lifetime of the process
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player; Play is a no-op until Initialize succeeds
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues one chime without blocking
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(beep.Take(sampleRate.N(Duration), NewGenerator(sampleRate)))
	speaker.Unlock()
}

// Wait blocks until the queued chimes finished or d elapsed
func (p *Player) Wait(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		speaker.Lock()
		n := p.mixer.Len()
		speaker.Unlock()
		if n == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Close releases the audio device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Close()
	p.initialized = false
}

// Generator is a bell-like tone: a fundamental and a fifth under a struck envelope
type Generator struct {
	sr  beep.SampleRate
	pos int
}

// NewGenerator creates a chime generator
func NewGenerator(sr beep.SampleRate) *Generator {
	return &Generator{sr: sr}
}

const (
	fundamental = 880.0
	fifth       = 1320.0
	attack      = 0.005
	decay       = 9.0
	gain        = 0.3
)

func (g *Generator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * decay)
		if t < attack {
			envelope *= t / attack
		}
		tone := 0.7*math.Sin(2*math.Pi*fundamental*t) + 0.3*math.Sin(2*math.Pi*fifth*t)

		sample := gain * envelope * tone
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Generator) Err() error {
	return nil
}
