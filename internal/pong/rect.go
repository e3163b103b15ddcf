package pong

// Rect is an axis-aligned rectangle. Size is fixed at construction; only the
// position is mutated.
type Rect struct {
	X, Y float64
	w, h float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, w: w, h: h}
}

func (r Rect) Width() float64  { return r.w }
func (r Rect) Height() float64 { return r.h }
func (r Rect) Right() float64  { return r.X + r.w }
func (r Rect) Bottom() float64 { return r.Y + r.h }

func (r Rect) CenterY() float64 {
	return r.Y + r.h/2
}

// Moved returns a copy translated by dx, dy.
func (r Rect) Moved(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Move translates the rectangle in place.
func (r *Rect) Move(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Overlaps reports a strict intersection. Rectangles that only share an edge
// do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// SpansY reports whether the vertical extents touch or overlap.
func (r Rect) SpansY(o Rect) bool {
	return r.Bottom() >= o.Y && r.Y <= o.Bottom()
}
