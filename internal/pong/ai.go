package pong

// Track decides how a computer paddle should move this tick. It only engages
// while the ball heads toward the paddle. The current velocity is folded into
// the thresholds, so the paddle over- and undershoots a little.
func Track(ball Ball, paddle Paddle) (engaged bool, velocity float64) {
	velocity = paddle.Velocity
	if paddle.Side == Left {
		engaged = ball.VX < 0
	} else {
		engaged = ball.VX > 0
	}
	if !engaged {
		return false, velocity
	}

	center := ball.Rect.CenterY()
	switch {
	case center > paddle.Rect.Bottom()+paddle.Velocity:
		velocity = paddle.MaxSpeed
	case center < paddle.Rect.Y-paddle.Velocity:
		velocity = -paddle.MaxSpeed
	}
	return true, velocity
}
