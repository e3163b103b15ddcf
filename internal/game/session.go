// Package game runs the phase state machine that owns a match.
package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"arcadepong/internal/audio"
	"arcadepong/internal/input"
	"arcadepong/internal/pong"
)

// Options configures a Session. Zero values select the defaults.
type Options struct {
	Layout   pong.Layout
	Physics  pong.Physics
	Audio    audio.Player
	Recorder Recorder
	Logger   *slog.Logger
	Seed     uint64
}

// Session owns every entity of the game and advances it one tick at a time.
// It is not safe for concurrent use; frontends drive it from one goroutine.
type Session struct {
	layout  pong.Layout
	physics pong.Physics
	court   pong.Court

	audio  audio.Player
	rec    Recorder
	base   *slog.Logger
	log    *slog.Logger
	rng    *rand.Rand
	mapper *input.Mapper

	phase pong.GamePhase
	mode  pong.GameMode
	menu  *Menu
	blink Blink

	left  *pong.Paddle
	right *pong.Paddle
	ball  *pong.Ball
	board *pong.Scoreboard

	matchID uuid.UUID
	rally   int
	quit    bool
}

func NewSession(opts Options) *Session {
	if opts.Layout.ScreenWidth == 0 {
		opts.Layout = pong.DefaultLayout()
	}
	if opts.Physics.BallBaseSpeed == 0 {
		opts.Physics = pong.DefaultPhysics()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	s := &Session{
		layout:  opts.Layout,
		physics: opts.Physics,
		court:   opts.Layout.Court(),
		audio:   opts.Audio,
		rec:     opts.Recorder,
		base:    opts.Logger,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		mapper:  input.NewMapper(),
	}
	s.reset(pong.SinglePlayer)
	s.phase = pong.PhaseMenu
	return s
}

// reset recreates every entity for a fresh match in mode.
func (s *Session) reset(mode pong.GameMode) {
	s.mode = mode
	s.menu = NewMenu()
	s.blink.Reset()
	s.rally = 0

	aiSpeed := s.physics.PlayerMaxSpeed
	if mode == pong.SinglePlayer {
		aiSpeed = s.physics.AIMaxSpeed
	}
	s.left = pong.NewPaddle(pong.Left, s.layout.PaddleStart(pong.Left), s.physics.PlayerMaxSpeed)
	s.right = pong.NewPaddle(pong.Right, s.layout.PaddleStart(pong.Right), aiSpeed)
	s.board = pong.NewScoreboard(s.physics.WinThreshold)

	toward := pong.Left
	if s.rng.Intn(2) == 1 {
		toward = pong.Right
	}
	s.ball = pong.NewBall(s.layout.BallStart(), s.physics)
	s.ball.Launch(s.layout.BallStart(), toward)

	for _, in := range s.mapper.Rebind(mode) {
		if in.Side == pong.Right && mode == pong.SinglePlayer {
			continue
		}
		s.Paddle(in.Side).Press(in.Dir)
	}

	s.matchID = uuid.New()
	s.log = s.base.With(slog.String("match", s.matchID.String()))
	s.log.Debug("match reset", slog.Any("mode", mode), slog.Any("serve", toward))
}

func (s *Session) setPhase(p pong.GamePhase) {
	if p == s.phase {
		return
	}
	s.log.Debug("phase", slog.Any("from", s.phase), slog.Any("to", p))
	s.phase = p
}

// Tick handles every pending event and then advances one frame.
func (s *Session) Tick(events []input.Event, dt time.Duration) {
	for _, ev := range events {
		s.HandleEvent(ev)
	}
	if !s.quit {
		s.Update(dt)
	}
}

// HandleEvent maps a raw event for the current phase and applies the result.
func (s *Session) HandleEvent(ev input.Event) {
	for _, in := range s.mapper.Map(ev, s.phase, s.mode) {
		s.Apply(in)
	}
}

// Apply performs one intent. Intents that do not fit the phase are ignored.
func (s *Session) Apply(in input.Intent) {
	switch in.Type {
	case input.IntentQuit:
		s.log.Info("quit requested", slog.Any("phase", s.phase))
		s.quit = true
	case input.IntentEscape:
		s.escape()
	case input.IntentMenuUp, input.IntentMenuDown:
		if s.phase != pong.PhaseMenu {
			return
		}
		delta := 1
		if in.Type == input.IntentMenuUp {
			delta = -1
		}
		s.menu.Move(delta)
		s.audio.PlayClip(audio.MenuMove)
	case input.IntentConfirm:
		s.confirm()
	case input.IntentPause:
		s.togglePause()
	case input.IntentPaddle:
		s.steer(in)
	}
}

func (s *Session) escape() {
	switch s.phase {
	// A finished match also returns to the menu.
	case pong.PhasePlaying, pong.PhasePaused, pong.PhaseGameOver, pong.PhaseWin:
		s.audio.StopMusic()
		s.setPhase(pong.PhaseMenu)
	}
}

func (s *Session) confirm() {
	switch s.phase {
	case pong.PhaseMenu:
		s.mode = s.menu.Mode()
		s.audio.PlayClip(audio.MenuSelect)
		s.audio.FadeoutMusic(audio.MusicFadeout)
		s.blink.Reset()
		s.setPhase(pong.PhaseTransitioning)
	case pong.PhaseGameOver, pong.PhaseWin:
		s.reset(s.mode)
		s.setPhase(pong.PhasePlaying)
	}
}

func (s *Session) togglePause() {
	switch s.phase {
	case pong.PhasePlaying:
		s.audio.PauseMusic()
		s.audio.PlayClip(audio.Pause)
		s.setPhase(pong.PhasePaused)
	case pong.PhasePaused:
		s.audio.ResumeMusic()
		s.audio.PlayClip(audio.Unpause)
		s.setPhase(pong.PhasePlaying)
	}
}

func (s *Session) steer(in input.Intent) {
	if s.phase != pong.PhasePlaying && s.phase != pong.PhasePaused {
		return
	}
	p := s.left
	if in.Side == pong.Right {
		if s.mode == pong.SinglePlayer {
			return
		}
		p = s.right
	}
	if in.Pressed {
		p.Press(in.Dir)
	} else {
		p.Release(in.Dir)
	}
}

// Update advances the current phase by one frame of dt.
func (s *Session) Update(dt time.Duration) {
	switch s.phase {
	case pong.PhaseMenu:
		s.audio.PlayMusicLoop(audio.MenuMusic)
		s.menu.grow()
	case pong.PhaseTransitioning:
		s.menu.grow()
		s.blink.Advance(dt)
		if !s.audio.MusicBusy() {
			s.reset(s.mode)
			s.setPhase(pong.PhasePlaying)
			s.log.Info("match started", slog.Any("mode", s.mode))
		}
	case pong.PhasePlaying:
		s.audio.PlayMusicLoop(audio.GameMusic)
		s.play()
	}
}

func (s *Session) play() {
	if s.mode == pong.SinglePlayer {
		s.right.Drive(pong.Track(*s.ball, *s.right))
	}
	s.left.Advance(s.court.Top, s.court.Bottom, s.layout.PaddleBuffer)
	s.right.Advance(s.court.Top, s.court.Bottom, s.layout.PaddleBuffer)

	ev := s.ball.Step(s.left, s.right, s.court)
	if ev.WallHit {
		s.audio.PlayClip(audio.WallHit)
		s.rec.WallHit()
	}
	if ev.PaddleHit {
		s.audio.PlayClip(audio.PaddleHit)
		s.rec.PaddleHit(ev.HitSide)
		s.rally++
	}
	if ev.Scored {
		s.score(ev.Scorer)
	}
}

func (s *Session) score(side pong.Side) {
	out := s.board.Award(side)
	if side == pong.Left {
		s.audio.PlayClip(audio.PlayerScore)
	} else {
		s.audio.PlayClip(audio.OpponentScore)
	}
	s.rec.Point(side)
	s.rec.Rally(s.rally)
	s.log.Debug("point", slog.Any("side", side), slog.Any("left", s.board.Left),
		slog.Any("right", s.board.Right), slog.Any("rally", s.rally))
	s.rally = 0
	s.ball.Reset(side.Opposite(), s.left, s.right)

	if !out.Decided {
		return
	}
	if out.Winner == pong.Left {
		s.audio.PlayClip(audio.Victory)
		s.setPhase(pong.PhaseWin)
	} else {
		s.audio.PlayClip(audio.CriticalError)
		s.setPhase(pong.PhaseGameOver)
	}
	s.rec.MatchFinished(s.mode, out.Winner)
	s.log.Info("match finished", slog.Any("winner", out.Winner),
		slog.Int("left", s.board.Left), slog.Int("right", s.board.Right))
}

func (s *Session) Phase() pong.GamePhase { return s.phase }
func (s *Session) Mode() pong.GameMode   { return s.mode }
func (s *Session) Done() bool            { return s.quit }
func (s *Session) MatchID() uuid.UUID    { return s.matchID }
func (s *Session) Layout() pong.Layout   { return s.layout }
func (s *Session) Paddle(side pong.Side) *pong.Paddle {
	if side == pong.Left {
		return s.left
	}
	return s.right
}
func (s *Session) Ball() *pong.Ball             { return s.ball }
func (s *Session) Scoreboard() *pong.Scoreboard { return s.board }
func (s *Session) Menu() *Menu                  { return s.menu }

// MarkerVisible reports whether the menu pointer should be drawn this frame.
func (s *Session) MarkerVisible() bool {
	return s.phase != pong.PhaseTransitioning || s.blink.Visible()
}
