package audio

import (
	"encoding/binary"
	"testing"

	"github.com/gopxl/beep"
)

type constStreamer struct {
	left, right float64
	remaining   int
}

func (c *constStreamer) Stream(samples [][2]float64) (int, bool) {
	if c.remaining == 0 {
		return 0, false
	}
	n := min(len(samples), c.remaining)
	for i := range samples[:n] {
		samples[i] = [2]float64{c.left, c.right}
	}
	c.remaining -= n
	return n, true
}

func (c *constStreamer) Err() error { return nil }

func TestPCM16Layout(t *testing.T) {
	data := PCM16(&constStreamer{left: 1, right: -2, remaining: 1000})
	if len(data) != 1000*4 {
		t.Fatalf("Expected %d bytes, got %d", 1000*4, len(data))
	}
	left := int16(binary.LittleEndian.Uint16(data[0:2]))
	right := int16(binary.LittleEndian.Uint16(data[2:4]))
	if left != 32767 {
		t.Errorf("Expected full-scale left sample, got %d", left)
	}
	if right != -32767 {
		t.Errorf("Expected clipped right sample -32767, got %d", right)
	}
}

func TestPCM16Synthesized(t *testing.T) {
	rate := beep.SampleRate(22050)
	s, err := Synthesize(PaddleHit, rate)
	if err != nil {
		t.Fatal(err)
	}
	want := rate.N(clipNotes[PaddleHit][0].dur) * 4
	if got := len(PCM16(s)); got != want {
		t.Errorf("Expected %d bytes, got %d", want, got)
	}
}
