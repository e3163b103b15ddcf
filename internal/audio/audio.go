// Package audio defines the sound capability the game drives and its
// terminal backend built on beep.
package audio

import "time"

// Clip identifies a one-shot sound effect.
type Clip int

const (
	PaddleHit Clip = iota
	WallHit
	PlayerScore
	OpponentScore
	Pause
	Unpause
	MenuMove
	MenuSelect
	CriticalError
	Victory
)

var clipFiles = map[Clip]string{
	PaddleHit:     "paddlehit.wav",
	WallHit:       "wallhit.wav",
	PlayerScore:   "playerscore.wav",
	OpponentScore: "aiscore.wav",
	Pause:         "pause.wav",
	Unpause:       "unpause.wav",
	MenuMove:      "menumove.wav",
	MenuSelect:    "menuselect.wav",
	CriticalError: "criticalerror.wav",
	Victory:       "victory.wav",
}

// Clips lists every clip in declaration order.
func Clips() []Clip {
	return []Clip{PaddleHit, WallHit, PlayerScore, OpponentScore, Pause, Unpause,
		MenuMove, MenuSelect, CriticalError, Victory}
}

func (c Clip) File() string {
	return clipFiles[c]
}

func (c Clip) String() string {
	if f, ok := clipFiles[c]; ok {
		return f
	}
	return "unknown"
}

// Track identifies a looping music track.
type Track int

const (
	MenuMusic Track = iota
	GameMusic
)

var trackFiles = map[Track]string{
	MenuMusic: "mainmenu.ogg",
	GameMusic: "music.ogg",
}

func (t Track) File() string {
	return trackFiles[t]
}

func (t Track) String() string {
	if f, ok := trackFiles[t]; ok {
		return f
	}
	return "unknown"
}

// MusicFadeout is how long the menu music takes to fade before a match starts.
const MusicFadeout = 2000 * time.Millisecond

// Player is everything the game needs from an audio backend.
//
// PlayMusicLoop is called every frame of a phase that wants music and must be
// a no-op while that track is already active. MusicBusy reports whether a track is loaded and has not finished, been
// stopped or completed a fade. A paused track still counts as busy.
type Player interface {
	PlayClip(c Clip)
	PlayMusicLoop(t Track)
	PauseMusic()
	ResumeMusic()
	StopMusic()
	FadeoutMusic(d time.Duration)
	MusicBusy() bool
	Close() error
}

// Nop is a silent Player. It never reports busy music, so fades complete
// immediately.
type Nop struct{}

func (Nop) PlayClip(Clip)              {}
func (Nop) PlayMusicLoop(Track)        {}
func (Nop) PauseMusic()                {}
func (Nop) ResumeMusic()               {}
func (Nop) StopMusic()                 {}
func (Nop) FadeoutMusic(time.Duration) {}
func (Nop) MusicBusy() bool            { return false }
func (Nop) Close() error               { return nil }

// Settings configures a backend. Volumes are linear in [0, 1].
type Settings struct {
	AssetsDir         string
	SampleRate        int
	MasterVolume      float64
	MusicVolume       float64
	SynthesizeMissing bool
}

func DefaultSettings() Settings {
	return Settings{
		AssetsDir:         "sounds",
		SampleRate:        44100,
		MasterVolume:      1.0,
		MusicVolume:       0.1,
		SynthesizeMissing: true,
	}
}
