package pong

// Paddle is a vertical actor. Velocity keeps its sign while the paddle is idle
// so the next engagement resumes in the last direction.
type Paddle struct {
	Side     Side
	Rect     Rect
	MaxSpeed float64
	Velocity float64

	MovingUp   bool
	MovingDown bool
	Moving     bool
}

func NewPaddle(side Side, rect Rect, maxSpeed float64) *Paddle {
	return &Paddle{
		Side:     side,
		Rect:     rect,
		MaxSpeed: maxSpeed,
		Velocity: maxSpeed,
	}
}

// Press registers a held direction key. The most recent press wins.
func (p *Paddle) Press(dir Direction) {
	switch dir {
	case Up:
		p.MovingUp = true
		p.Velocity = -p.MaxSpeed
	case Down:
		p.MovingDown = true
		p.Velocity = p.MaxSpeed
	}
	p.Moving = true
}

// Release drops a held direction key. If the other key is still held the
// paddle turns around instead of stopping.
func (p *Paddle) Release(dir Direction) {
	switch dir {
	case Up:
		p.MovingUp = false
		if p.MovingDown {
			p.Velocity = p.MaxSpeed
		}
	case Down:
		p.MovingDown = false
		if p.MovingUp {
			p.Velocity = -p.MaxSpeed
		}
	}
	if !p.MovingUp && !p.MovingDown {
		p.Moving = false
	}
}

// SetDirection applies a full held-key snapshot as release and press edges.
func (p *Paddle) SetDirection(up, down bool) {
	if !up && p.MovingUp {
		p.Release(Up)
	}
	if !down && p.MovingDown {
		p.Release(Down)
	}
	if up && !p.MovingUp {
		p.Press(Up)
	}
	if down && !p.MovingDown {
		p.Press(Down)
	}
}

// Drive sets motion without touching the held-key flags. Used by the AI.
func (p *Paddle) Drive(engaged bool, velocity float64) {
	p.Moving = engaged
	p.Velocity = velocity
}

// Stop clears every held key and halts the paddle.
func (p *Paddle) Stop() {
	p.MovingUp = false
	p.MovingDown = false
	p.Moving = false
}

// Advance moves the paddle one tick, snapping to a buffered position when the
// move would reach either barrier. Returns true if the paddle was moving.
func (p *Paddle) Advance(courtTop, courtBottom, buffer float64) bool {
	if !p.Moving {
		return false
	}
	next := p.Rect.Y + p.Velocity
	switch {
	case next <= courtTop:
		p.Rect.Y = courtTop + buffer
	case next+p.Rect.Height() >= courtBottom:
		p.Rect.Y = courtBottom - p.Rect.Height() - buffer
	default:
		p.Rect.Y = next
	}
	invariant(p.Rect.Y >= courtTop && p.Rect.Bottom() <= courtBottom,
		"%s paddle at y=%.1f outside court [%.1f, %.1f]", p.Side, p.Rect.Y, courtTop, courtBottom)
	return true
}

// Face is the x coordinate of the edge the ball bounces off.
func (p *Paddle) Face() float64 {
	if p.Side == Left {
		return p.Rect.Right()
	}
	return p.Rect.X
}
