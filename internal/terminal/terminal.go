package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"arcadepong/internal/game"
	"arcadepong/internal/input"
	"arcadepong/internal/pong"
	"arcadepong/internal/renderer"
)

// OverrunRecorder counts frames that took longer than a tick.
type OverrunRecorder interface {
	TickOverrun()
}

type Options struct {
	TickRate int
	Overruns OverrunRecorder
}

// NewScreen creates and initialises the terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}

func translate(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return input.KeyUnknown, true
	case tcell.KeyUp:
		return input.ArrowUp, false
	case tcell.KeyDown:
		return input.ArrowDown, false
	case tcell.KeyEnter:
		return input.KeyEnter, false
	case tcell.KeyEscape:
		return input.KeyEscape, false
	case tcell.KeyRune:
		return input.KeyFromRune(ev.Rune()), false
	}
	return input.KeyUnknown, false
}

// steering reports whether movement keys drive paddles in phase p.
func steering(p pong.GamePhase) bool {
	return p == pong.PhasePlaying || p == pong.PhasePaused
}

// Run drives s at the tick rate until the session quits or ctx is done. The
// caller owns the screen and must Fini it afterwards.
func Run(ctx context.Context, screen tcell.Screen, s *game.Session, opts Options) error {
	if opts.TickRate <= 0 {
		opts.TickRate = 70
	}
	period := time.Second / time.Duration(opts.TickRate)
	canvas := NewCanvas(screen, s.Layout())
	holds := newHoldTracker()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	var pending []input.Event
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				key, quit := translate(ev)
				if quit {
					pending = append(pending, input.Event{Kind: input.Quit})
					continue
				}
				slog.Debug("key", slog.Any("key", key), slog.Any("name", ev.Name()))
				if key != input.KeyUnknown {
					pending = append(pending, holds.Press(key, ev.When(), steering(s.Phase()))...)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			pending = append(pending, holds.Expire(now)...)
			s.Tick(pending, now.Sub(last))
			pending = pending[:0]
			last = now
			if s.Done() {
				return nil
			}
			if err := renderer.Draw(canvas, s); err != nil {
				return fmt.Errorf("draw: %w", err)
			}
			if time.Since(now) > period && opts.Overruns != nil {
				opts.Overruns.TickOverrun()
			}
		}
	}
}
