// Package terminal runs the game in a text terminal through tcell.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"arcadepong/internal/pong"
	"arcadepong/internal/renderer"
)

// Canvas scales the logical screen onto terminal cells. Every cell holds two
// vertically stacked pixels drawn with an upper half block.
type Canvas struct {
	screen  tcell.Screen
	width   float64
	height  float64
	cols    int
	rows    int // pixel rows, twice the cell rows
	pixels  []renderer.Color
	palette map[renderer.Color]tcell.Color
}

func NewCanvas(screen tcell.Screen, l pong.Layout) *Canvas {
	return &Canvas{
		screen:  screen,
		width:   l.ScreenWidth,
		height:  l.ScreenHeight,
		palette: make(map[renderer.Color]tcell.Color),
	}
}

func (c *Canvas) resize() {
	cols, cells := c.screen.Size()
	if cols == c.cols && cells*2 == c.rows {
		return
	}
	c.cols, c.rows = cols, cells*2
	c.pixels = make([]renderer.Color, c.cols*c.rows)
}

func (c *Canvas) Clear(col renderer.Color) {
	c.resize()
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// FillRect covers every pixel whose centre lies inside r. Rects smaller than
// a pixel still cover the one containing their centre.
func (c *Canvas) FillRect(r pong.Rect, col renderer.Color) {
	if c.cols == 0 || c.rows == 0 {
		return
	}
	sx := float64(c.cols) / c.width
	sy := float64(c.rows) / c.height

	x0, x1 := span(r.X*sx, r.Right()*sx, c.cols)
	y0, y1 := span(r.Y*sy, r.Bottom()*sy, c.rows)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.pixels[y*c.cols+x] = col
		}
	}
}

func span(lo, hi float64, limit int) (int, int) {
	a := int(math.Round(lo))
	b := int(math.Round(hi))
	if b <= a {
		a = int(math.Floor((lo + hi) / 2))
		b = a + 1
	}
	return max(a, 0), min(b, limit)
}

func (c *Canvas) color(col renderer.Color) tcell.Color {
	tc, ok := c.palette[col]
	if !ok {
		tc = tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))
		c.palette[col] = tc
	}
	return tc
}

// Pixel returns the colour at pixel x, y in canvas space.
func (c *Canvas) Pixel(x, y int) renderer.Color {
	return c.pixels[y*c.cols+x]
}

func (c *Canvas) Present() error {
	for row := 0; row < c.rows/2; row++ {
		for x := 0; x < c.cols; x++ {
			top := c.pixels[(row*2)*c.cols+x]
			bottom := c.pixels[(row*2+1)*c.cols+x]
			style := tcell.StyleDefault.Foreground(c.color(top)).Background(c.color(bottom))
			c.screen.SetContent(x, row, '▀', nil, style)
		}
	}
	c.screen.Show()
	return nil
}
