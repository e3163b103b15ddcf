// Package renderer draws a game session onto any Canvas.
package renderer

import (
	"arcadepong/internal/game"
	"arcadepong/internal/pong"
)

type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// Canvas is a drawing surface in the game's logical pixel space.
type Canvas interface {
	Clear(c Color)
	FillRect(r pong.Rect, c Color)
	Present() error
}

const (
	netSquare     = 23
	netGap        = 16
	digitBlock    = 20
	scoreXBuffer  = 100
	scoreYBuffer  = 20
	titleBlock    = 20
	titleY        = 100
	optionsBlock  = 3
	optionsBuffer = 5
	letterHeight  = 6
	bannerBlock   = 10
	promptBlock   = 6
)

// Draw renders the frame for the session's current phase and presents it.
func Draw(c Canvas, s *game.Session) error {
	c.Clear(Black)
	l := s.Layout()

	switch s.Phase() {
	case pong.PhaseMenu, pong.PhaseTransitioning:
		drawMenu(c, s, l)
	case pong.PhasePlaying:
		drawCourt(c, s, l)
		c.FillRect(s.Ball().Rect, White)
	case pong.PhasePaused:
		drawCourt(c, s, l)
		c.FillRect(s.Ball().Rect, White)
		DrawText(c, "PAUSED", l.ScreenWidth/2-120, l.ScreenHeight/2-40, 8, White)
	case pong.PhaseGameOver:
		drawCourt(c, s, l)
		drawBanner(c, "YOU LOSE")
	case pong.PhaseWin:
		drawCourt(c, s, l)
		drawBanner(c, "YOU WIN")
	}
	return c.Present()
}

func drawCourt(c Canvas, s *game.Session, l pong.Layout) {
	width := l.ScreenWidth - 2*l.BarrierX
	c.FillRect(pong.NewRect(l.BarrierX, l.BarrierOffset, width, l.BarrierHeight), White)
	c.FillRect(pong.NewRect(l.BarrierX, l.CourtBottom(), width, l.BarrierHeight), White)

	netX := l.ScreenWidth/2 - netSquare/2
	for y := l.CourtTop(); y < l.CourtBottom(); y += netSquare + netGap {
		c.FillRect(pong.NewRect(netX, y, netSquare, netSquare), White)
	}

	c.FillRect(s.Paddle(pong.Left).Rect, White)
	c.FillRect(s.Paddle(pong.Right).Rect, White)

	board := s.Scoreboard()
	y := l.CourtTop() + scoreYBuffer
	DrawGlyph(c, scoreGlyph(board.Left), l.ScreenWidth/2-digitBlock*3-scoreXBuffer, y, digitBlock, White)
	DrawGlyph(c, scoreGlyph(board.Right), l.ScreenWidth/2+scoreXBuffer, y, digitBlock, White)
}

func drawBanner(c Canvas, headline string) {
	DrawText(c, headline, 485, 200, bannerBlock, White)
	DrawText(c, "PRESS SPACE", 520, 280, promptBlock, White)
}

func drawMenu(c Canvas, s *game.Session, l pong.Layout) {
	titleX := l.ScreenWidth/2 - titleBlock*(letterLength*2+1)
	DrawText(c, "PONG", titleX, titleY, titleBlock, White)

	m := s.Menu()
	c.FillRect(pong.NewRect(titleX+190-m.Underline/2, titleY+140, m.Underline, 5), White)

	optionsX := l.ScreenWidth/2 - 50
	optionsY := float64(titleY + 200)
	lineHeight := float64((letterHeight + optionsBuffer) * optionsBlock)
	for i, opt := range m.Options {
		DrawText(c, opt, optionsX, optionsY+lineHeight*float64(i), optionsBlock, White)
	}
	if s.MarkerVisible() {
		DrawGlyph(c, '>', optionsX-30, optionsY+lineHeight*float64(m.Selected), optionsBlock, White)
	}
}
