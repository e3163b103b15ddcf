package renderer

import "arcadepong/internal/pong"

// Glyph rows, '#' is a filled block. Digits are three blocks wide, letters
// four; every glyph advances by letterLength+1 blocks.
var glyphs = map[rune][]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", ".#."},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "..#"},

	'A': {".##.", "#..#", "####", "#..#", "#..#", "#..#"},
	'B': {"###.", "#..#", "###.", "#..#", "#..#", "###."},
	'C': {".###", "#...", "#...", "#...", "#...", ".###"},
	'D': {"###.", "#..#", "#..#", "#..#", "#..#", "###."},
	'E': {"####", "#...", "###.", "#...", "#...", "####"},
	'G': {".##.", "#..#", "#...", "#.#.", "#..#", ".##."},
	'I': {"###.", ".#..", ".#..", ".#..", ".#..", "###."},
	'K': {"#..#", "#.#.", "##..", "##..", "#.#.", "#..#"},
	'L': {"#...", "#...", "#...", "#...", "#...", "####"},
	'M': {"#..#", "####", "#..#", "#..#", "#..#", "#..#"},
	'N': {"#..#", "#..#", "##.#", "#.##", "#..#", "#..#"},
	'O': {".##.", "#..#", "#..#", "#..#", "#..#", ".##."},
	'P': {"###.", "#..#", "#..#", "###.", "#...", "#..."},
	'R': {"###.", "#..#", "#..#", "###.", "#..#", "#..#"},
	'S': {".##.", "#..#", ".#..", "..#.", "#..#", ".##."},
	'T': {"###.", ".#..", ".#..", ".#..", ".#..", ".#.."},
	'U': {"#..#", "#..#", "#..#", "#..#", "#..#", ".##."},
	'W': {"#..#", "#..#", "#..#", "#..#", "####", "#..#"},
	'Y': {"#.#.", "#.#.", ".#..", ".#..", ".#..", ".#.."},

	' ': {"....", "....", "....", "....", "....", "...."},
	'>': {"#...", "##..", "###.", "###.", "##..", "#..."},
	'-': {"....", "....", "####", "....", "....", "...."},
}

const letterLength = 4

// DrawGlyph fills the blocks of r with its top-left corner at x, y.
// Unknown runes draw nothing.
func DrawGlyph(c Canvas, r rune, x, y, block float64, col Color) {
	for row, line := range glyphs[r] {
		for i, cell := range line {
			if cell != '#' {
				continue
			}
			c.FillRect(pong.NewRect(x+block*float64(i), y+block*float64(row), block, block), col)
		}
	}
}

// DrawText draws s left to right as block glyphs.
func DrawText(c Canvas, s string, x, y, block float64, col Color) {
	advance := block * (letterLength + 1)
	i := 0
	for _, r := range s {
		DrawGlyph(c, r, x+advance*float64(i), y, block, col)
		i++
	}
}

// scoreGlyph returns the rune shown for a score. Only single digits have a
// glyph; anything past nine is drawn as a dash.
func scoreGlyph(n int) rune {
	if n >= 0 && n <= 9 {
		return rune('0' + n)
	}
	return '-'
}
