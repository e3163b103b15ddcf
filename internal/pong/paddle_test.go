package pong

import "testing"

func newTestPaddle(side Side) *Paddle {
	l := DefaultLayout()
	return NewPaddle(side, l.PaddleStart(side), DefaultPhysics().PlayerMaxSpeed)
}

func TestPaddleStaysInCourt(t *testing.T) {
	l := DefaultLayout()
	top, bottom := l.CourtTop(), l.CourtBottom()

	speeds := []float64{1, 5, 12, 37, 250, 1000}
	for _, speed := range speeds {
		for _, dir := range []Direction{Up, Down} {
			p := NewPaddle(Left, l.PaddleStart(Left), speed)
			p.Press(dir)
			for i := 0; i < 200; i++ {
				p.Advance(top, bottom, l.PaddleBuffer)
				if p.Rect.Y < top || p.Rect.Bottom() > bottom {
					t.Fatalf("speed %.0f dir %d tick %d: paddle [%.1f, %.1f] outside [%.1f, %.1f]",
						speed, dir, i, p.Rect.Y, p.Rect.Bottom(), top, bottom)
				}
			}
		}
	}
}

func TestPaddleSnapsToBuffer(t *testing.T) {
	l := DefaultLayout()
	p := newTestPaddle(Right)

	p.Press(Up)
	for i := 0; i < 100; i++ {
		p.Advance(l.CourtTop(), l.CourtBottom(), l.PaddleBuffer)
	}
	if want := l.CourtTop() + l.PaddleBuffer; p.Rect.Y != want {
		t.Errorf("Expected paddle at top %.1f, got %.1f", want, p.Rect.Y)
	}

	p.Release(Up)
	p.Press(Down)
	for i := 0; i < 100; i++ {
		p.Advance(l.CourtTop(), l.CourtBottom(), l.PaddleBuffer)
	}
	if want := l.CourtBottom() - l.PaddleHeight - l.PaddleBuffer; p.Rect.Y != want {
		t.Errorf("Expected paddle at bottom %.1f, got %.1f", want, p.Rect.Y)
	}
}

func TestPaddleReleaseResumesOtherKey(t *testing.T) {
	p := newTestPaddle(Left)

	p.Press(Down)
	p.Press(Up)
	if p.Velocity != -p.MaxSpeed {
		t.Fatalf("Expected latest press (up) to win, velocity %.1f", p.Velocity)
	}

	p.Release(Up)
	if !p.Moving || p.Velocity != p.MaxSpeed {
		t.Errorf("Expected paddle to resume downward, moving=%v velocity=%.1f", p.Moving, p.Velocity)
	}

	p.Release(Down)
	if p.Moving {
		t.Error("Expected paddle to stop when no key is held")
	}

	y := p.Rect.Y
	if p.Advance(0, 1000, 5) {
		t.Error("Expected Advance to report no movement")
	}
	if p.Rect.Y != y {
		t.Errorf("Stopped paddle moved from %.1f to %.1f", y, p.Rect.Y)
	}
}

func TestPaddleSetDirection(t *testing.T) {
	tests := []struct {
		name     string
		steps    [][2]bool
		moving   bool
		velocity float64
	}{
		{"up only", [][2]bool{{true, false}}, true, -12},
		{"down only", [][2]bool{{false, true}}, true, 12},
		{"down then both", [][2]bool{{false, true}, {true, true}}, true, -12},
		{"both then down", [][2]bool{{true, true}, {false, true}}, true, 12},
		{"released", [][2]bool{{true, false}, {false, false}}, false, -12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPaddle(Left)
			for _, s := range tt.steps {
				p.SetDirection(s[0], s[1])
			}
			if p.Moving != tt.moving {
				t.Errorf("moving = %v, want %v", p.Moving, tt.moving)
			}
			if p.Velocity != tt.velocity {
				t.Errorf("velocity = %.1f, want %.1f", p.Velocity, tt.velocity)
			}
		})
	}
}

func TestPaddleFace(t *testing.T) {
	left := newTestPaddle(Left)
	right := newTestPaddle(Right)
	if left.Face() != left.Rect.Right() {
		t.Errorf("left face %.1f, want %.1f", left.Face(), left.Rect.Right())
	}
	if right.Face() != right.Rect.X {
		t.Errorf("right face %.1f, want %.1f", right.Face(), right.Rect.X)
	}
}
