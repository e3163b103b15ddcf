package pong

import "math"

// Events reports what happened during one ball step so the caller can apply
// sounds and scoring.
type Events struct {
	WallHit   bool
	PaddleHit bool
	HitSide   Side
	Scored    bool
	Scorer    Side
}

type Ball struct {
	Rect Rect
	VX   float64
	VY   float64

	BaseSpeed    float64
	ServeSpeed   float64
	Acceleration float64

	// out latches after a score so the crossing is reported once.
	out bool
}

func NewBall(rect Rect, ph Physics) *Ball {
	return &Ball{
		Rect:         rect,
		VX:           -ph.BallBaseSpeed,
		VY:           ph.BallServeSpeed,
		BaseSpeed:    ph.BallBaseSpeed,
		ServeSpeed:   ph.BallServeSpeed,
		Acceleration: ph.Acceleration,
	}
}

// Launch puts the ball at rect travelling toward the given side at base speed.
func (b *Ball) Launch(rect Rect, toward Side) {
	b.Rect = rect
	b.VX = b.BaseSpeed
	if toward == Left {
		b.VX = -b.BaseSpeed
	}
	b.VY = b.ServeSpeed
	b.out = false
}

// Reset serves toward serveTo from the opposite paddle. The ball sits flush
// against the server's face with its top edge at the paddle's centre line.
func (b *Ball) Reset(serveTo Side, left, right *Paddle) {
	server := right
	if serveTo == Right {
		server = left
	}
	x := server.Face()
	if server.Side == Right {
		x -= b.Rect.Width()
	}
	b.Launch(b.Rect, serveTo)
	b.Rect.X = x
	b.Rect.Y = server.Rect.Y + server.Rect.Height()/2
}

// Out reports whether the ball has crossed a goal line and awaits a serve.
func (b *Ball) Out() bool {
	return b.out
}

// Speed is the horizontal speed magnitude.
func (b *Ball) Speed() float64 {
	return math.Abs(b.VX)
}

// Step advances the ball one tick against both paddles.
func (b *Ball) Step(left, right *Paddle, c Court) Events {
	var ev Events
	if b.out {
		return ev
	}

	if b.Rect.Y+b.VY <= c.Top {
		b.Rect.Y = c.Top
		b.VY = -b.VY
		ev.WallHit = true
	} else if b.Rect.Bottom()+b.VY >= c.Bottom {
		b.Rect.Y = c.Bottom - b.Rect.Height()
		b.VY = -b.VY
		ev.WallHit = true
	}

	switch {
	case b.VX > 0 && b.meets(right):
		b.Rect.X = right.Face() - b.Rect.Width()
		b.VX = -b.VX - b.Acceleration
		ev.PaddleHit, ev.HitSide = true, Right
	case b.VX < 0 && b.meets(left):
		b.Rect.X = left.Face()
		b.VX = -b.VX + b.Acceleration
		ev.PaddleHit, ev.HitSide = true, Left
	}

	nextX := b.Rect.X + b.VX
	switch {
	case nextX <= 0:
		ev.Scored, ev.Scorer = true, Right
		b.out = true
	case nextX+b.Rect.Width() >= c.Width:
		ev.Scored, ev.Scorer = true, Left
		b.out = true
	default:
		b.Rect.Move(b.VX, b.VY)
	}

	invariant(b.Rect.Y >= c.Top && b.Rect.Bottom() <= c.Bottom,
		"ball at y=%.1f outside court [%.1f, %.1f]", b.Rect.Y, c.Top, c.Bottom)
	return ev
}

// meets combines the projected overlap test with the phasing test.
func (b *Ball) meets(p *Paddle) bool {
	if b.Rect.Overlaps(p.Rect.Moved(-b.VX, 0)) {
		return true
	}
	return b.phased(p)
}

// phased catches a ball fast enough to jump over the paddle in one tick: the
// leading edge ends up past the face while the paddle spans the ball's row.
// A ball already behind the paddle is not pulled back.
func (b *Ball) phased(p *Paddle) bool {
	if !b.Rect.SpansY(p.Rect) {
		return false
	}
	if p.Side == Right {
		return b.Rect.X < p.Rect.Right() && b.Rect.Right()+b.VX >= p.Face()
	}
	return b.Rect.Right() > p.Rect.X && b.Rect.X+b.VX <= p.Face()
}
