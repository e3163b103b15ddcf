package terminal

import (
	"time"

	"arcadepong/internal/input"
)

// Terminals only report key presses and auto-repeats. A key counts as held
// until no repeat has arrived within its window; the first window covers the
// keyboard's repeat delay.
const (
	initialHold = 500 * time.Millisecond
	repeatHold  = 100 * time.Millisecond
)

type holdTracker struct {
	initial  time.Duration
	repeat   time.Duration
	deadline map[input.Key]time.Time
}

func newHoldTracker() *holdTracker {
	return &holdTracker{
		initial:  initialHold,
		repeat:   repeatHold,
		deadline: make(map[input.Key]time.Time),
	}
}

func holdable(k input.Key) bool {
	switch k {
	case input.KeyW, input.KeyS, input.KeyA, input.KeyZ, input.ArrowUp, input.ArrowDown:
		return true
	}
	return false
}

// Press records a key report and returns the events it produces. Movement
// keys are held only while hold is set; every other report is an immediate
// tap, releasing the key first if it was still held.
func (h *holdTracker) Press(k input.Key, now time.Time, hold bool) []input.Event {
	if !hold || !holdable(k) {
		if _, held := h.deadline[k]; held {
			delete(h.deadline, k)
			return []input.Event{input.Up(k), input.Down(k), input.Up(k)}
		}
		return []input.Event{input.Down(k), input.Up(k)}
	}
	if _, held := h.deadline[k]; held {
		h.deadline[k] = now.Add(h.repeat)
		return nil
	}
	h.deadline[k] = now.Add(h.initial)
	return []input.Event{input.Down(k)}
}

// Expire releases every key whose window has passed.
func (h *holdTracker) Expire(now time.Time) []input.Event {
	var out []input.Event
	for k, d := range h.deadline {
		if !now.Before(d) {
			delete(h.deadline, k)
			out = append(out, input.Up(k))
		}
	}
	return out
}
