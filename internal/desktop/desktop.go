// Package desktop runs the game in a window through ebiten.
package desktop

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"arcadepong/internal/game"
	"arcadepong/internal/input"
	"arcadepong/internal/pong"
	"arcadepong/internal/renderer"
)

type Options struct {
	TickRate   int
	Scale      float64
	Fullscreen bool
	Sound      *Sound
}

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyW:           input.KeyW,
	ebiten.KeyS:           input.KeyS,
	ebiten.KeyA:           input.KeyA,
	ebiten.KeyZ:           input.KeyZ,
	ebiten.KeyP:           input.KeyP,
	ebiten.KeyQ:           input.KeyQ,
	ebiten.KeySpace:       input.KeySpace,
	ebiten.KeyEnter:       input.KeyEnter,
	ebiten.KeyNumpadEnter: input.KeyEnter,
	ebiten.KeyEscape:      input.KeyEscape,
	ebiten.KeyArrowUp:     input.ArrowUp,
	ebiten.KeyArrowDown:   input.ArrowDown,
}

type canvas struct {
	target *ebiten.Image
}

func rgba(c renderer.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c *canvas) Clear(col renderer.Color) {
	c.target.Fill(rgba(col))
}

func (c *canvas) FillRect(r pong.Rect, col renderer.Color) {
	vector.DrawFilledRect(c.target, float32(r.X), float32(r.Y), float32(r.Width()), float32(r.Height()), rgba(col), false)
}

func (c *canvas) Present() error { return nil }

// Game adapts a Session to ebiten's Update/Draw loop.
type Game struct {
	ctx     context.Context
	session *game.Session
	sound   *Sound
	canvas  canvas
	dt      time.Duration
	keys    []ebiten.Key
	events  []input.Event
}

func NewGame(ctx context.Context, s *game.Session, opts Options) *Game {
	if opts.TickRate <= 0 {
		opts.TickRate = 70
	}
	return &Game{
		ctx:     ctx,
		session: s,
		sound:   opts.Sound,
		dt:      time.Second / time.Duration(opts.TickRate),
	}
}

func (g *Game) Update() error {
	g.events = g.events[:0]
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keyMap[k]; ok {
			g.events = append(g.events, input.Down(key))
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keyMap[k]; ok {
			g.events = append(g.events, input.Up(key))
		}
	}
	if ebiten.IsWindowBeingClosed() || g.ctx.Err() != nil {
		g.events = append(g.events, input.Event{Kind: input.Quit})
	}

	g.session.Tick(g.events, g.dt)
	if g.sound != nil {
		g.sound.Update(g.dt)
	}
	if g.session.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.target = screen
	if err := renderer.Draw(&g.canvas, g.session); err != nil {
		slog.Error("draw", slog.Any("error", err))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	l := g.session.Layout()
	return int(l.ScreenWidth), int(l.ScreenHeight)
}

// Run opens the window and blocks until the session is done.
func Run(ctx context.Context, s *game.Session, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	l := s.Layout()
	g := NewGame(ctx, s, opts)

	ebiten.SetWindowSize(int(l.ScreenWidth*opts.Scale), int(l.ScreenHeight*opts.Scale))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(int(time.Second / g.dt))
	ebiten.SetFullscreen(opts.Fullscreen)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
