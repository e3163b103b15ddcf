package game

import "time"

const blinkPeriod = 100 * time.Millisecond

// Blink toggles visibility every period of accumulated time.
type Blink struct {
	Period  time.Duration
	elapsed time.Duration
	hidden  bool
}

func (b *Blink) Advance(dt time.Duration) {
	period := b.Period
	if period <= 0 {
		period = blinkPeriod
	}
	b.elapsed += dt
	for b.elapsed >= period {
		b.elapsed -= period
		b.hidden = !b.hidden
	}
}

func (b *Blink) Visible() bool {
	return !b.hidden
}

func (b *Blink) Reset() {
	b.elapsed = 0
	b.hidden = false
}
