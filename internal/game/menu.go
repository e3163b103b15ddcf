package game

import "arcadepong/internal/pong"

const (
	underlineStart = 5
	underlineStep  = 10
	underlineMax   = 420
)

// Menu is the mode selection screen state.
type Menu struct {
	Options   []string
	Selected  int
	Underline float64 // title underline width, grows each tick
}

func NewMenu() *Menu {
	return &Menu{
		Options:   []string{"1 PLAYER", "2 PLAYER"},
		Underline: underlineStart,
	}
}

// Move shifts the selection by delta, wrapping at both ends.
func (m *Menu) Move(delta int) {
	n := len(m.Options)
	m.Selected = ((m.Selected+delta)%n + n) % n
}

// Mode is the game mode the current selection stands for.
func (m *Menu) Mode() pong.GameMode {
	if m.Selected == 1 {
		return pong.TwoPlayer
	}
	return pong.SinglePlayer
}

func (m *Menu) grow() {
	m.Underline = min(m.Underline+underlineStep, underlineMax)
}
