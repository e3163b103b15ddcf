package terminal

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"arcadepong/internal/game"
	"arcadepong/internal/input"
)

func TestHoldTrackerFirstPressWaitsForRepeatDelay(t *testing.T) {
	h := newHoldTracker()
	start := time.Unix(0, 0)

	evs := h.Press(input.KeyW, start, true)
	if len(evs) != 1 || evs[0] != input.Down(input.KeyW) {
		t.Fatalf("Expected a single key down, got %v", evs)
	}
	if evs := h.Expire(start.Add(initialHold - time.Millisecond)); len(evs) != 0 {
		t.Fatalf("Expected key still held before the repeat delay, got %v", evs)
	}
	evs = h.Expire(start.Add(initialHold))
	if len(evs) != 1 || evs[0] != input.Up(input.KeyW) {
		t.Fatalf("Expected key up at the repeat delay, got %v", evs)
	}
}

func TestHoldTrackerRepeatsExtendHold(t *testing.T) {
	h := newHoldTracker()
	now := time.Unix(0, 0)
	h.Press(input.ArrowUp, now, true)

	now = now.Add(initialHold - 10*time.Millisecond)
	for i := 0; i < 10; i++ {
		if evs := h.Press(input.ArrowUp, now, true); len(evs) != 0 {
			t.Fatalf("repeat %d: Expected no events, got %v", i, evs)
		}
		now = now.Add(repeatHold / 2)
		if evs := h.Expire(now); len(evs) != 0 {
			t.Fatalf("repeat %d: Expected key still held, got %v", i, evs)
		}
	}

	evs := h.Expire(now.Add(repeatHold))
	if len(evs) != 1 || evs[0] != input.Up(input.ArrowUp) {
		t.Fatalf("Expected release once repeats stop, got %v", evs)
	}
}

func TestHoldTrackerTapsActionKeys(t *testing.T) {
	h := newHoldTracker()
	now := time.Unix(0, 0)
	for _, k := range []input.Key{input.KeyP, input.KeySpace, input.KeyEnter, input.KeyEscape, input.KeyQ} {
		evs := h.Press(k, now, true)
		if len(evs) != 2 || evs[0] != input.Down(k) || evs[1] != input.Up(k) {
			t.Errorf("%s: Expected down then up, got %v", k, evs)
		}
	}
	if evs := h.Expire(now.Add(time.Hour)); len(evs) != 0 {
		t.Errorf("Expected nothing held, got %v", evs)
	}
}

func TestHoldTrackerTapsMovementKeysOutsideMatch(t *testing.T) {
	h := newHoldTracker()
	start := time.Unix(0, 0)
	s := game.NewSession(game.Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Seed:   7,
	})

	// Two quick presses of Down in the menu must each move the selection.
	var evs []input.Event
	evs = append(evs, h.Press(input.ArrowDown, start, false)...)
	evs = append(evs, h.Press(input.ArrowDown, start.Add(150*time.Millisecond), false)...)
	if len(evs) != 4 {
		t.Fatalf("Expected two taps, got %v", evs)
	}
	for _, ev := range evs {
		s.HandleEvent(ev)
	}
	if got := s.Menu().Selected; got != 0 {
		t.Errorf("Expected selection to wrap back to 0, got %d", got)
	}
}

func TestHoldTrackerTapReleasesHeldKey(t *testing.T) {
	h := newHoldTracker()
	now := time.Unix(0, 0)
	h.Press(input.KeyS, now, true)

	evs := h.Press(input.KeyS, now.Add(50*time.Millisecond), false)
	want := []input.Event{input.Up(input.KeyS), input.Down(input.KeyS), input.Up(input.KeyS)}
	if len(evs) != len(want) {
		t.Fatalf("Expected %v, got %v", want, evs)
	}
	for i := range want {
		if evs[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, evs[i], want[i])
		}
	}
	if evs := h.Expire(now.Add(time.Hour)); len(evs) != 0 {
		t.Errorf("Expected nothing held after the tap, got %v", evs)
	}
}
