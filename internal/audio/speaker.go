package audio

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// Speaker plays clips and music through the system audio device. Clips are
// decoded once into buffers; music is streamed from disk.
type Speaker struct {
	settings Settings
	rate     beep.SampleRate
	mixer    *beep.Mixer
	output   beep.Streamer
	clips    map[Clip]*beep.Buffer

	// guarded by speaker.Lock
	music     *fader
	musicFile io.Closer
	track     Track
	missing   map[Track]bool
	device    bool
}

// NewSpeaker initialises the audio device and loads every clip.
func NewSpeaker(s Settings) (*Speaker, error) {
	sp := newSpeaker(s)
	if err := speaker.Init(sp.rate, sp.rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	sp.device = true
	speaker.Play(sp.output)
	return sp, nil
}

// newSpeaker builds a Speaker without touching the device.
func newSpeaker(s Settings) *Speaker {
	if s.SampleRate <= 0 {
		s.SampleRate = DefaultSettings().SampleRate
	}
	sp := &Speaker{
		settings: s,
		rate:     beep.SampleRate(s.SampleRate),
		mixer:    &beep.Mixer{},
		clips:    make(map[Clip]*beep.Buffer),
		missing:  make(map[Track]bool),
	}
	sp.output = newVolume(sp.mixer, s.MasterVolume)

	for _, c := range Clips() {
		buf, err := sp.loadClip(c)
		if err != nil {
			slog.Warn("clip unavailable, playing silence", slog.String("clip", c.String()), slog.Any("err", err))
			continue
		}
		sp.clips[c] = buf
	}
	return sp
}

func (sp *Speaker) format() beep.Format {
	return beep.Format{SampleRate: sp.rate, NumChannels: 2, Precision: 2}
}

func (sp *Speaker) loadClip(c Clip) (*beep.Buffer, error) {
	path := filepath.Join(sp.settings.AssetsDir, c.File())
	stream, err := sp.decodeFile(path)
	if err != nil {
		if !sp.settings.SynthesizeMissing {
			return nil, err
		}
		slog.Debug("synthesizing clip", slog.String("clip", c.String()), slog.Any("err", err))
		if stream, err = Synthesize(c, sp.rate); err != nil {
			return nil, err
		}
	}
	buf := beep.NewBuffer(sp.format())
	buf.Append(stream)
	if closer, ok := stream.(io.Closer); ok {
		closer.Close()
	}
	return buf, nil
}

type resampled struct {
	beep.Streamer
	io.Closer
}

// decodeFile opens a wav or ogg file and resamples it to the device rate.
// The returned streamer closes the file when closed.
func (sp *Speaker) decodeFile(path string) (beep.Streamer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	default:
		err = fmt.Errorf("unsupported format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if format.SampleRate == sp.rate {
		return stream, nil
	}
	return resampled{beep.Resample(4, format.SampleRate, sp.rate, stream), stream}, nil
}

func (sp *Speaker) PlayClip(c Clip) {
	buf, ok := sp.clips[c]
	if !ok {
		return
	}
	speaker.Lock()
	sp.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// PlayMusicLoop starts t looping from the beginning unless it is already the
// active track.
func (sp *Speaker) PlayMusicLoop(t Track) {
	speaker.Lock()
	if sp.music != nil && !sp.music.done && sp.track == t {
		speaker.Unlock()
		return
	}
	if sp.missing[t] {
		speaker.Unlock()
		return
	}
	sp.stopLocked()
	speaker.Unlock()

	path := filepath.Join(sp.settings.AssetsDir, t.File())
	f, err := os.Open(path)
	if err == nil {
		var stream beep.StreamSeekCloser
		var format beep.Format
		stream, format, err = vorbis.Decode(f)
		if err != nil {
			f.Close()
		} else {
			sp.startMusic(t, stream, format)
			return
		}
	}

	slog.Warn("music unavailable", slog.String("track", t.String()), slog.Any("err", err))
	speaker.Lock()
	sp.missing[t] = true
	speaker.Unlock()
}

func (sp *Speaker) startMusic(t Track, stream beep.StreamSeekCloser, format beep.Format) {
	var looped beep.Streamer = beep.Loop(-1, stream)
	if format.SampleRate != sp.rate {
		looped = beep.Resample(4, format.SampleRate, sp.rate, looped)
	}
	f := &fader{ctrl: &beep.Ctrl{Streamer: looped}, gain: sp.settings.MusicVolume}

	speaker.Lock()
	sp.music = f
	sp.musicFile = stream
	sp.track = t
	sp.mixer.Add(f)
	speaker.Unlock()
	slog.Debug("music started", slog.String("track", t.String()))
}

func (sp *Speaker) PauseMusic() {
	speaker.Lock()
	if sp.music != nil {
		sp.music.ctrl.Paused = true
	}
	speaker.Unlock()
}

func (sp *Speaker) ResumeMusic() {
	speaker.Lock()
	if sp.music != nil {
		sp.music.ctrl.Paused = false
	}
	speaker.Unlock()
}

func (sp *Speaker) StopMusic() {
	speaker.Lock()
	sp.stopLocked()
	speaker.Unlock()
}

func (sp *Speaker) stopLocked() {
	if sp.music != nil {
		sp.music.done = true
		sp.music = nil
	}
	if sp.musicFile != nil {
		sp.musicFile.Close()
		sp.musicFile = nil
	}
}

func (sp *Speaker) FadeoutMusic(d time.Duration) {
	speaker.Lock()
	if sp.music != nil && !sp.music.done && sp.music.fadeTotal == 0 {
		n := sp.rate.N(d)
		if n <= 0 {
			n = 1
		}
		sp.music.fadeTotal = n
		sp.music.fadeLeft = n
	}
	speaker.Unlock()
}

func (sp *Speaker) MusicBusy() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return sp.music != nil && !sp.music.done
}

func (sp *Speaker) Close() error {
	speaker.Lock()
	sp.stopLocked()
	sp.mixer.Clear()
	speaker.Unlock()
	if sp.device {
		speaker.Close()
		sp.device = false
	}
	return nil
}

// fader scales a music stream by gain and, once a fade is armed, ramps it
// linearly to silence and ends the stream.
type fader struct {
	ctrl      *beep.Ctrl
	gain      float64
	fadeTotal int
	fadeLeft  int
	done      bool
}

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	if f.done {
		return 0, false
	}
	n, ok = f.ctrl.Stream(samples)
	for i := 0; i < n; i++ {
		g := f.gain
		if f.fadeTotal > 0 {
			if f.fadeLeft <= 0 {
				f.done = true
				return i, false
			}
			g *= float64(f.fadeLeft) / float64(f.fadeTotal)
			f.fadeLeft--
		}
		samples[i][0] *= g
		samples[i][1] *= g
	}
	if !ok {
		f.done = true
	}
	return n, ok
}

func (f *fader) Err() error { return f.ctrl.Err() }
