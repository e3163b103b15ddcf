package input

import "arcadepong/internal/pong"

// IntentType discriminates semantic actions.
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit
	IntentEscape
	IntentMenuUp
	IntentMenuDown
	IntentConfirm
	IntentPause
	IntentPaddle // paddle direction edge
)

// Intent is a phase-aware action produced from raw events.
type Intent struct {
	Type IntentType

	// Paddle edges only.
	Side    pong.Side
	Dir     pong.Direction
	Pressed bool
}
