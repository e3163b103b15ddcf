package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// PCM16 drains s into interleaved 16-bit little-endian stereo, the layout
// byte-oriented players expect.
func PCM16(s beep.Streamer) []byte {
	var out []byte
	samples := make([][2]float64, 512)
	for {
		n, ok := s.Stream(samples)
		for _, sample := range samples[:n] {
			for _, v := range sample {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok {
			return out
		}
	}
}
