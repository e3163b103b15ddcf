package pong

import "testing"

func TestTrack(t *testing.T) {
	l := DefaultLayout()
	ph := DefaultPhysics()

	tests := []struct {
		name     string
		ballY    float64
		ballVX   float64
		velocity float64
		engaged  bool
		want     float64
	}{
		{"ball moving away", 500, -15, 8, false, 8},
		{"ball below", 500, 15, 8, true, 8},
		{"ball below while heading up", 500, 15, -8, true, 8},
		{"ball above", 40, 15, 8, true, -8},
		{"ball level keeps velocity", 290, 15, -8, true, -8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaddle(Right, l.PaddleStart(Right), ph.AIMaxSpeed)
			p.Velocity = tt.velocity
			b := NewBall(l.BallStart(), ph)
			b.Rect.Y = tt.ballY
			b.VX = tt.ballVX

			engaged, velocity := Track(*b, *p)
			if engaged != tt.engaged {
				t.Errorf("engaged = %v, want %v", engaged, tt.engaged)
			}
			if velocity != tt.want {
				t.Errorf("velocity = %.1f, want %.1f", velocity, tt.want)
			}
		})
	}
}

func TestTrackFollowsBall(t *testing.T) {
	l := DefaultLayout()
	ph := DefaultPhysics()
	p := NewPaddle(Left, l.PaddleStart(Left), ph.AIMaxSpeed)
	b := NewBall(l.BallStart(), ph)
	b.VX = -15
	b.Rect.Y = l.CourtBottom() - b.Rect.Height()

	for i := 0; i < 60; i++ {
		p.Drive(Track(*b, *p))
		p.Advance(l.CourtTop(), l.CourtBottom(), l.PaddleBuffer)
	}
	if !b.Rect.SpansY(p.Rect) {
		t.Errorf("paddle [%.1f, %.1f] did not reach ball at %.1f", p.Rect.Y, p.Rect.Bottom(), b.Rect.Y)
	}
}
