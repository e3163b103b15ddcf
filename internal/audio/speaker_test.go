package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

type nopSeekCloser struct {
	beep.StreamSeeker
}

func (nopSeekCloser) Close() error { return nil }

func testSettings(dir string) Settings {
	return Settings{
		AssetsDir:    dir,
		SampleRate:   44100,
		MasterVolume: 1,
		MusicVolume:  1,
	}
}

func writeWav(t *testing.T, path string, rate beep.SampleRate, d time.Duration) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tone, err := generators.SineTone(rate, 440)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(rate.N(d), tone), format); err != nil {
		t.Fatalf("Failed to encode fixture: %v", err)
	}
}

func TestSpeakerMissingAssetsAreSilent(t *testing.T) {
	sp := newSpeaker(testSettings(t.TempDir()))
	if len(sp.clips) != 0 {
		t.Fatalf("Expected no clips without assets, got %d", len(sp.clips))
	}

	sp.PlayClip(PaddleHit)
	sp.PlayMusicLoop(MenuMusic)
	if sp.MusicBusy() {
		t.Error("Missing music should never report busy")
	}
	if !sp.missing[MenuMusic] {
		t.Error("Expected missing track to be remembered")
	}
	if err := sp.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestSpeakerSynthesizesMissingClips(t *testing.T) {
	s := testSettings(t.TempDir())
	s.SynthesizeMissing = true
	sp := newSpeaker(s)

	for _, c := range Clips() {
		buf, ok := sp.clips[c]
		if !ok {
			t.Errorf("clip %s was not synthesized", c)
			continue
		}
		if buf.Len() == 0 {
			t.Errorf("clip %s is empty", c)
		}
	}
}

func TestSpeakerLoadsAndResamplesWav(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, filepath.Join(dir, PaddleHit.File()), 22050, 100*time.Millisecond)

	sp := newSpeaker(testSettings(dir))
	buf, ok := sp.clips[PaddleHit]
	if !ok {
		t.Fatal("Expected paddle hit clip to load")
	}
	want := sp.rate.N(100 * time.Millisecond)
	if diff := buf.Len() - want; diff < -64 || diff > 64 {
		t.Errorf("Expected about %d samples after resampling, got %d", want, buf.Len())
	}
	if _, ok := sp.clips[WallHit]; ok {
		t.Error("Wall hit has no file and should not load")
	}
}

func TestSpeakerMusicFadeEndsBusy(t *testing.T) {
	sp := newSpeaker(testSettings(t.TempDir()))

	tone, err := generators.SineTone(sp.rate, 220)
	if err != nil {
		t.Fatal(err)
	}
	buf := beep.NewBuffer(sp.format())
	buf.Append(beep.Take(sp.rate.N(50*time.Millisecond), tone))
	sp.startMusic(GameMusic, nopSeekCloser{buf.Streamer(0, buf.Len())}, sp.format())

	if !sp.MusicBusy() {
		t.Fatal("Expected music to be busy after start")
	}

	sp.PauseMusic()
	if !sp.MusicBusy() {
		t.Error("Paused music should still be busy")
	}
	sp.ResumeMusic()

	// Playing the active track again is a no-op.
	current := sp.music
	sp.PlayMusicLoop(GameMusic)
	if sp.music != current {
		t.Error("Expected PlayMusicLoop to keep the active track")
	}

	sp.FadeoutMusic(10 * time.Millisecond)
	samples := make([][2]float64, sp.rate.N(30*time.Millisecond))
	sp.mixer.Stream(samples)
	if sp.MusicBusy() {
		t.Error("Expected music to finish after the fade")
	}
}

func TestSpeakerStopMusic(t *testing.T) {
	sp := newSpeaker(testSettings(t.TempDir()))
	buf := beep.NewBuffer(sp.format())
	buf.Append(generators.Silence(sp.rate.N(10 * time.Millisecond)))
	sp.startMusic(MenuMusic, nopSeekCloser{buf.Streamer(0, buf.Len())}, sp.format())

	sp.StopMusic()
	if sp.MusicBusy() {
		t.Error("Expected stopped music to be idle")
	}
}

func TestFaderRampsToSilence(t *testing.T) {
	constant := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	f := &fader{ctrl: &beep.Ctrl{Streamer: constant}, gain: 1, fadeTotal: 100, fadeLeft: 100}

	samples := make([][2]float64, 256)
	n, ok := f.Stream(samples)
	if ok || n != 100 {
		t.Fatalf("Expected fade to end after 100 samples, got n=%d ok=%v", n, ok)
	}
	for i := 1; i < n; i++ {
		if samples[i][0] >= samples[i-1][0] {
			t.Fatalf("sample %d did not decrease: %f >= %f", i, samples[i][0], samples[i-1][0])
		}
	}
	if !f.done {
		t.Error("Expected fader to be done")
	}
	if n, ok := f.Stream(samples); n != 0 || ok {
		t.Errorf("Done fader streamed n=%d ok=%v", n, ok)
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.PlayMusicLoop(MenuMusic)
	p.FadeoutMusic(MusicFadeout)
	if p.MusicBusy() {
		t.Error("Nop music should never be busy")
	}
}
