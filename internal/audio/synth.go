package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType selects a tone generator.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

type note struct {
	freq float64
	dur  time.Duration
	wave WaveType
}

// Fallback tones for clips whose file is missing.
var clipNotes = map[Clip][]note{
	PaddleHit:     {{440, 60 * time.Millisecond, WaveSquare}},
	WallHit:       {{220, 60 * time.Millisecond, WaveSquare}},
	PlayerScore:   {{660, 90 * time.Millisecond, WaveSine}, {880, 160 * time.Millisecond, WaveSine}},
	OpponentScore: {{440, 90 * time.Millisecond, WaveSine}, {330, 160 * time.Millisecond, WaveSine}},
	Pause:         {{523.25, 80 * time.Millisecond, WaveTriangle}},
	Unpause:       {{783.99, 80 * time.Millisecond, WaveTriangle}},
	MenuMove:      {{330, 40 * time.Millisecond, WaveSquare}},
	MenuSelect:    {{523.25, 60 * time.Millisecond, WaveSquare}, {1046.5, 120 * time.Millisecond, WaveSquare}},
	CriticalError: {{110, 400 * time.Millisecond, WaveSaw}},
	Victory: {
		{523.25, 100 * time.Millisecond, WaveSquare},
		{659.25, 100 * time.Millisecond, WaveSquare},
		{783.99, 100 * time.Millisecond, WaveSquare},
		{1046.5, 300 * time.Millisecond, WaveSquare},
	},
}

func tone(wave WaveType, rate beep.SampleRate, freq float64) (beep.Streamer, error) {
	switch wave {
	case WaveSquare:
		return generators.SquareTone(rate, freq)
	case WaveSaw:
		return generators.SawtoothTone(rate, freq)
	case WaveTriangle:
		return generators.TriangleTone(rate, freq)
	default:
		return generators.SineTone(rate, freq)
	}
}

// Synthesize builds the fallback tone sequence for c.
func Synthesize(c Clip, rate beep.SampleRate) (beep.Streamer, error) {
	notes, ok := clipNotes[c]
	if !ok {
		return nil, fmt.Errorf("no tone for clip %d", c)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc, err := tone(n.wave, rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", c, err)
		}
		shaped := NewEnvelope(beep.Take(rate.N(n.dur), osc), n.dur, 5*time.Millisecond, n.dur/3, rate)
		parts = append(parts, newVolume(shaped, 0.3))
	}
	return beep.Seq(parts...), nil
}

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
