package input

import "arcadepong/internal/pong"

type binding struct {
	side pong.Side
	dir  pong.Direction
}

// Mapper turns raw key events into intents for the current phase. It tracks
// which keys are down so repeated key-downs are ignored and a paddle
// direction is only released once every key bound to it is up.
type Mapper struct {
	held  map[Key]binding
	count map[binding]int
}

func NewMapper() *Mapper {
	return &Mapper{
		held:  make(map[Key]binding),
		count: make(map[binding]int),
	}
}

func paddleBinding(k Key, mode pong.GameMode) (binding, bool) {
	switch k {
	case KeyW, KeyA:
		return binding{pong.Left, pong.Up}, true
	case KeyS, KeyZ:
		return binding{pong.Left, pong.Down}, true
	case ArrowUp:
		if mode == pong.SinglePlayer {
			return binding{pong.Left, pong.Up}, true
		}
		return binding{pong.Right, pong.Up}, true
	case ArrowDown:
		if mode == pong.SinglePlayer {
			return binding{pong.Left, pong.Down}, true
		}
		return binding{pong.Right, pong.Down}, true
	}
	return binding{}, false
}

// Held reports whether k is currently down.
func (m *Mapper) Held(k Key) bool {
	_, ok := m.held[k]
	return ok
}

var paddleKeys = []Key{KeyW, KeyA, KeyS, KeyZ, ArrowUp, ArrowDown}

// Rebind recomputes the bindings of held paddle keys for mode and returns a
// press intent for every direction still held, in key order. Sessions call it
// after replacing their paddles.
func (m *Mapper) Rebind(mode pong.GameMode) []Intent {
	clear(m.count)
	var out []Intent
	for _, k := range paddleKeys {
		if _, ok := m.held[k]; !ok {
			continue
		}
		b, _ := paddleBinding(k, mode)
		m.held[k] = b
		m.count[b]++
		if m.count[b] == 1 {
			out = append(out, Intent{Type: IntentPaddle, Side: b.side, Dir: b.dir, Pressed: true})
		}
	}
	return out
}

// Map translates one event. Paddle edges are only emitted while a match is
// in progress, but held keys are tracked in every phase.
func (m *Mapper) Map(ev Event, phase pong.GamePhase, mode pong.GameMode) []Intent {
	switch ev.Kind {
	case Quit:
		return []Intent{{Type: IntentQuit}}
	case KeyUp:
		return m.release(ev.Key, phase)
	case KeyDown:
		if _, repeat := m.held[ev.Key]; repeat {
			return nil
		}
	default:
		return nil
	}

	var out []Intent
	if b, ok := paddleBinding(ev.Key, mode); ok {
		m.held[ev.Key] = b
		m.count[b]++
		if m.count[b] == 1 && inMatch(phase) {
			out = append(out, Intent{Type: IntentPaddle, Side: b.side, Dir: b.dir, Pressed: true})
		}
	} else {
		m.held[ev.Key] = binding{side: -1}
	}

	switch ev.Key {
	case KeyQ:
		return append(out, Intent{Type: IntentQuit})
	case KeyEscape:
		return append(out, Intent{Type: IntentEscape})
	}

	switch phase {
	case pong.PhaseMenu:
		switch ev.Key {
		case ArrowUp, KeyW:
			out = append(out, Intent{Type: IntentMenuUp})
		case ArrowDown, KeyS:
			out = append(out, Intent{Type: IntentMenuDown})
		case KeySpace, KeyEnter:
			out = append(out, Intent{Type: IntentConfirm})
		}
	case pong.PhasePlaying, pong.PhasePaused:
		if ev.Key == KeyP || ev.Key == KeySpace {
			out = append(out, Intent{Type: IntentPause})
		}
	case pong.PhaseGameOver, pong.PhaseWin:
		if ev.Key == KeySpace || ev.Key == KeyEnter {
			out = append(out, Intent{Type: IntentConfirm})
		}
	}
	return out
}

func (m *Mapper) release(k Key, phase pong.GamePhase) []Intent {
	b, ok := m.held[k]
	if !ok {
		return nil
	}
	delete(m.held, k)
	if b.side < 0 {
		return nil
	}
	m.count[b]--
	if m.count[b] > 0 {
		return nil
	}
	delete(m.count, b)
	if !inMatch(phase) {
		return nil
	}
	return []Intent{{Type: IntentPaddle, Side: b.side, Dir: b.dir, Pressed: false}}
}

func inMatch(phase pong.GamePhase) bool {
	return phase == pong.PhasePlaying || phase == pong.PhasePaused
}
