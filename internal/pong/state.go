package pong

// Side tags the two halves of the court. Player one is always Left.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Direction is a vertical paddle direction.
type Direction int

const (
	Up Direction = iota
	Down
)

type GameMode int

const (
	SinglePlayer GameMode = iota
	TwoPlayer
)

func (m GameMode) String() string {
	if m == TwoPlayer {
		return "two_player"
	}
	return "single_player"
}

type GamePhase int

const (
	PhaseMenu GamePhase = iota
	PhaseTransitioning
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseWin
)

var phaseNames = map[GamePhase]string{
	PhaseMenu:          "menu",
	PhaseTransitioning: "transitioning",
	PhasePlaying:       "playing",
	PhasePaused:        "paused",
	PhaseGameOver:      "game_over",
	PhaseWin:           "win",
}

func (p GamePhase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Layout holds the fixed screen geometry in logical pixels.
type Layout struct {
	ScreenWidth   float64
	ScreenHeight  float64
	PaddleWidth   float64
	PaddleHeight  float64
	PaddleOffset  float64 // gap between paddle and screen side
	PaddleBuffer  float64 // gap kept between paddle and barrier when clamped
	BallSize      float64
	BarrierHeight float64
	BarrierOffset float64
	BarrierX      float64
}

func DefaultLayout() Layout {
	return Layout{
		ScreenWidth:   900,
		ScreenHeight:  600,
		PaddleWidth:   20,
		PaddleHeight:  100,
		PaddleOffset:  25,
		PaddleBuffer:  5,
		BallSize:      20,
		BarrierHeight: 25,
		BarrierOffset: 10,
		BarrierX:      10,
	}
}

// CourtTop is the y coordinate just below the upper barrier.
func (l Layout) CourtTop() float64 {
	return l.BarrierHeight + l.BarrierOffset
}

// CourtBottom is the y coordinate just above the lower barrier.
func (l Layout) CourtBottom() float64 {
	return l.ScreenHeight - l.BarrierHeight - l.BarrierOffset
}

// PaddleStart returns the serve-independent starting rectangle for a side.
func (l Layout) PaddleStart(side Side) Rect {
	y := l.ScreenHeight/2 - l.PaddleHeight/2
	x := l.PaddleOffset
	if side == Right {
		x = l.ScreenWidth - l.PaddleWidth - l.PaddleOffset
	}
	return NewRect(x, y, l.PaddleWidth, l.PaddleHeight)
}

// BallStart is the centred ball rectangle used for the opening serve.
func (l Layout) BallStart() Rect {
	return NewRect(l.ScreenWidth/2-l.BallSize/2, l.ScreenHeight/2-l.BallSize/2, l.BallSize, l.BallSize)
}

// Physics holds per-tick speeds. All values are logical pixels per tick.
type Physics struct {
	PlayerMaxSpeed float64
	AIMaxSpeed     float64
	BallBaseSpeed  float64
	BallServeSpeed float64 // vertical speed after a serve
	Acceleration   float64 // added to |vx| on every paddle contact
	WinThreshold   int
}

func DefaultPhysics() Physics {
	return Physics{
		PlayerMaxSpeed: 12,
		AIMaxSpeed:     8,
		BallBaseSpeed:  15,
		BallServeSpeed: 5,
		Acceleration:   1,
		WinThreshold:   9,
	}
}

// Court is the playfield the ball is confined to vertically and scores past
// horizontally.
type Court struct {
	Top    float64
	Bottom float64
	Width  float64
}

func (l Layout) Court() Court {
	return Court{Top: l.CourtTop(), Bottom: l.CourtBottom(), Width: l.ScreenWidth}
}
