package desktop

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"arcadepong/internal/audio"
)

// Sound plays clips and music through ebiten's audio context. Only one
// context may exist per process.
type Sound struct {
	settings audio.Settings
	ctx      *eaudio.Context
	clips    map[audio.Clip][]byte
	missing  map[audio.Track]bool

	music     *eaudio.Player
	musicFile io.Closer
	track     audio.Track

	fadeTotal time.Duration
	fadeLeft  time.Duration
}

var _ audio.Player = (*Sound)(nil)

func NewSound(s audio.Settings) *Sound {
	snd := &Sound{
		settings: s,
		ctx:      eaudio.NewContext(s.SampleRate),
		clips:    make(map[audio.Clip][]byte),
		missing:  make(map[audio.Track]bool),
	}
	for _, c := range audio.Clips() {
		data, err := snd.loadClip(c)
		if err != nil {
			slog.Warn("clip unavailable", slog.Any("clip", c), slog.Any("error", err))
			continue
		}
		snd.clips[c] = data
	}
	return snd
}

func (s *Sound) loadClip(c audio.Clip) ([]byte, error) {
	path := filepath.Join(s.settings.AssetsDir, c.File())
	data, err := s.decodeWav(path)
	if err == nil {
		return data, nil
	}
	if !s.settings.SynthesizeMissing {
		return nil, err
	}
	slog.Debug("synthesizing clip", slog.Any("clip", c), slog.Any("error", err))
	tone, err := audio.Synthesize(c, beep.SampleRate(s.settings.SampleRate))
	if err != nil {
		return nil, fmt.Errorf("synthesize %s: %w", c, err)
	}
	return audio.PCM16(tone), nil
}

func (s *Sound) decodeWav(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	stream, err := wav.DecodeWithSampleRate(s.settings.SampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func (s *Sound) PlayClip(c audio.Clip) {
	data, ok := s.clips[c]
	if !ok {
		return
	}
	p := s.ctx.NewPlayerFromBytes(data)
	p.SetVolume(s.settings.MasterVolume)
	p.Play()
}

func (s *Sound) musicVolume() float64 {
	return s.settings.MasterVolume * s.settings.MusicVolume
}

func (s *Sound) PlayMusicLoop(t audio.Track) {
	if s.music != nil && s.track == t {
		return
	}
	if s.missing[t] {
		return
	}
	s.StopMusic()

	path := filepath.Join(s.settings.AssetsDir, t.File())
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("music unavailable", slog.Any("track", t), slog.Any("error", err))
		s.missing[t] = true
		return
	}
	stream, err := vorbis.DecodeWithSampleRate(s.settings.SampleRate, f)
	if err != nil {
		f.Close()
		slog.Warn("music unreadable", slog.Any("track", t), slog.Any("error", err))
		s.missing[t] = true
		return
	}
	player, err := s.ctx.NewPlayer(eaudio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		f.Close()
		slog.Warn("music player", slog.Any("track", t), slog.Any("error", err))
		s.missing[t] = true
		return
	}
	player.SetVolume(s.musicVolume())
	player.Play()
	s.music, s.musicFile, s.track = player, f, t
	s.fadeTotal, s.fadeLeft = 0, 0
}

func (s *Sound) PauseMusic() {
	if s.music != nil {
		s.music.Pause()
	}
}

func (s *Sound) ResumeMusic() {
	if s.music != nil {
		s.music.Play()
	}
}

func (s *Sound) StopMusic() {
	if s.music == nil {
		return
	}
	s.music.Pause()
	if err := s.music.Close(); err != nil {
		slog.Debug("close music player", slog.Any("error", err))
	}
	s.musicFile.Close()
	s.music, s.musicFile = nil, nil
	s.fadeTotal, s.fadeLeft = 0, 0
}

func (s *Sound) FadeoutMusic(d time.Duration) {
	if s.music == nil {
		return
	}
	if d <= 0 {
		s.StopMusic()
		return
	}
	s.fadeTotal, s.fadeLeft = d, d
}

// Update advances an active fade by dt. The game loop calls it once a tick.
func (s *Sound) Update(dt time.Duration) {
	if s.music == nil || s.fadeTotal == 0 {
		return
	}
	s.fadeLeft -= dt
	if s.fadeLeft <= 0 {
		s.StopMusic()
		return
	}
	s.music.SetVolume(s.musicVolume() * float64(s.fadeLeft) / float64(s.fadeTotal))
}

func (s *Sound) MusicBusy() bool {
	return s.music != nil
}

func (s *Sound) Close() error {
	s.StopMusic()
	return nil
}
