package input

// Key is a frontend-independent key code. Frontends translate their native
// key events into these.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyS
	KeyA
	KeyZ
	KeyP
	KeyQ
	KeySpace
	KeyEnter
	KeyEscape
	ArrowUp
	ArrowDown
)

var keyNames = map[Key]string{
	KeyW:      "w",
	KeyS:      "s",
	KeyA:      "a",
	KeyZ:      "z",
	KeyP:      "p",
	KeyQ:      "q",
	KeySpace:  "space",
	KeyEnter:  "enter",
	KeyEscape: "escape",
	ArrowUp:   "up",
	ArrowDown: "down",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// KeyFromRune maps a typed character to a Key, ignoring case.
func KeyFromRune(r rune) Key {
	// Convert to UpperCase
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	switch r {
	case 'W':
		return KeyW
	case 'S':
		return KeyS
	case 'A':
		return KeyA
	case 'Z':
		return KeyZ
	case 'P':
		return KeyP
	case 'Q':
		return KeyQ
	case ' ':
		return KeySpace
	}
	return KeyUnknown
}

type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	Quit
)

// Event is a raw input event from a frontend.
type Event struct {
	Kind EventKind
	Key  Key
}

func Down(k Key) Event { return Event{Kind: KeyDown, Key: k} }
func Up(k Key) Event   { return Event{Kind: KeyUp, Key: k} }
