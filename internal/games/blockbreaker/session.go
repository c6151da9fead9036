package blockbreaker

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
)

// FrameResult reports what one frame did.
type FrameResult struct {
	DT    float64 // seconds simulated, 0 when paused or frozen
	Prev  State   // state before the frame's commands were applied
	State State
	Score int
	Hits  []Hit
	Edges Edge
}

// Session is one game instance. It owns the paddle, ball, bricks and score;
// input arrives only through its command queue, drained at the start of
// each frame.
type Session struct {
	cfg        config.BlockBreakerConfig
	resolver   Resolver
	difficulty *config.DifficultyManager
	listener   HitListener
	rng        *rand.Rand

	bounds core.Bounds
	paddle *Paddle
	ball   *Ball
	field  *Field

	state   State
	score   int
	frames  int
	elapsed float64

	clock *FrameClock
	queue core.CommandQueue
	input core.InputSource
}

// NewSession creates a session in the Title state. Call Init to build the
// playfield. The seed drives pointer launch angles.
func NewSession(cfg config.BlockBreakerConfig, seed uint64, listener HitListener) (*Session, error) {
	if listener == nil {
		return nil, errors.New("blockbreaker: nil hit listener (use NopHitListener)")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("blockbreaker: %w", err)
	}
	return &Session{
		cfg: cfg,
		resolver: Resolver{
			MaxBounceAngle: cfg.Physics.MaxBounceAngle,
			Separation:     cfg.Physics.Separation,
			PaddleGap:      cfg.Ball.StickGap,
		},
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		listener:   listener,
		rng:        rand.New(rand.NewPCG(seed, seed^0x517cc1b727220a95)),
		bounds:     core.NewBounds(cfg.Playfield.Width, cfg.Playfield.Height),
		state:      StateTitle,
		clock:      NewFrameClock(cfg.Physics.MaxFrameDelta),
	}, nil
}

// Init builds the paddle, ball and bricks, parks the ball on the paddle and
// moves Title -> Ready.
func (s *Session) Init() error {
	if s.state != StateTitle {
		return fmt.Errorf("%w: init from %s", ErrInvalidTransition, s.state)
	}

	w, h := s.bounds.Width(), s.bounds.Height()

	pw := math.Floor(w * s.cfg.Paddle.WidthRatio)
	px := math.Floor(w / 2)
	py := h - s.cfg.Paddle.BottomOffset
	s.paddle = NewPaddle(px, py, pw, s.cfg.Paddle.Height, &s.bounds)

	s.ball = NewBall(w/2, h/2, s.cfg.Ball.Radius, &s.bounds)
	s.ball.BaseSpeed = s.cfg.Ball.Speed
	s.ball.StickGap = s.cfg.Ball.StickGap
	s.ball.StickToPaddle(s.paddle)

	bc := s.cfg.Bricks
	s.field = NewField(FieldLayout{
		Cols:    bc.Cols,
		Rows:    bc.Rows,
		TileW:   math.Floor(w / float64(bc.Cols)),
		TileH:   bc.TileHeight,
		OffsetX: bc.OffsetX,
		OffsetY: bc.OffsetY,
		Score:   bc.Score,
	})

	s.score = 0
	s.frames = 0
	s.elapsed = 0
	return s.Transition(StateReady)
}

// Reset throws the current run away and starts a new one in Ready.
// The attached input source and the RNG stream are kept.
func (s *Session) Reset() error {
	s.state = StateTitle
	s.clock.Reset()
	return s.Init()
}

// Transition moves to the next state if the table allows it.
func (s *Session) Transition(to State) error {
	if !CanTransition(s.state, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, to)
	}
	s.state = to
	return nil
}

// Push queues a command for the next frame. Safe for concurrent use.
func (s *Session) Push(cmd core.Command) {
	s.queue.Push(cmd)
}

// AttachInput connects src to the command queue, detaching any previous source.
func (s *Session) AttachInput(src core.InputSource) {
	if s.input != nil {
		s.input.Detach()
	}
	s.input = src
	if src != nil {
		src.Attach(&s.queue)
	}
}

// Dispose detaches the input source. Call it before dropping the session.
func (s *Session) Dispose() {
	if s.input != nil {
		s.input.Detach()
		s.input = nil
	}
}

// Frame runs one display frame stamped now: it advances the clock, applies
// queued commands and updates the simulation unless paused.
func (s *Session) Frame(now time.Time) FrameResult {
	dt := s.clock.Tick(now)
	prev := s.state

	for _, cmd := range s.queue.Drain() {
		s.apply(cmd)
	}

	var res FrameResult
	if s.state == StatePaused {
		res = s.result()
	} else {
		res = s.Update(dt)
	}
	res.Prev = prev
	return res
}

// Update advances the simulation by dt seconds. Only Ready and Playing
// sessions move; the order is paddle, ball, paddle bounce, bricks, then
// the end-of-run checks.
func (s *Session) Update(dt float64) FrameResult {
	if s.state != StateReady && s.state != StatePlaying {
		return s.result()
	}

	res := FrameResult{DT: dt}
	s.frames++
	s.elapsed += dt

	if s.paddle != nil {
		s.paddle.Update(dt)
	}

	if s.ball != nil {
		if s.state == StateReady && s.paddle != nil {
			s.ball.StickToPaddle(s.paddle)
		} else {
			res.Edges = s.ball.Update(dt)
		}
	}

	if s.state == StatePlaying {
		s.resolver.Paddle(s.ball, s.paddle)

		if hit, ok := s.resolver.Bricks(s.ball, s.field); ok {
			s.score += hit.Brick.Score
			res.Hits = append(res.Hits, hit)
			s.listener.OnBrickHit(hit, s.score)
			s.speedUp()
		}

		// Both transitions are always legal from Playing.
		switch {
		case s.field != nil && s.field.Remaining() == 0:
			_ = s.Transition(StateClear)
		case res.Edges.Has(EdgeBottom) && s.cfg.Gameplay.BottomEdge == config.BottomEdgeGameOver:
			_ = s.Transition(StateGameOver)
		}
	}

	res.State = s.state
	res.Score = s.score
	return res
}

func (s *Session) result() FrameResult {
	return FrameResult{State: s.state, Score: s.score}
}

// speedUp rescales the ball to the current difficulty speed.
func (s *Session) speedUp() {
	if s.ball == nil || !s.difficulty.IsEnabled() {
		return
	}
	s.ball.SetSpeed(s.difficulty.Speed(s.cfg.Ball.Speed, s.score, s.frames))
}

func (s *Session) apply(cmd core.Command) {
	switch c := cmd.(type) {
	case core.PointerMoved:
		if s.paddle != nil {
			s.paddle.SetTarget(c.X)
		}
	case core.ActionPressed:
		s.handleAction(c)
	}
}

func (s *Session) handleAction(a core.ActionPressed) {
	switch a.Action {
	case core.ActionLeft:
		if s.paddle != nil {
			s.paddle.Nudge(-s.cfg.Paddle.KeyStep)
		}
	case core.ActionRight:
		if s.paddle != nil {
			s.paddle.Nudge(s.cfg.Paddle.KeyStep)
		}
	case core.ActionLaunch:
		if s.state == StateReady {
			s.launch(a.Pointer)
		}
	case core.ActionPause:
		switch s.state {
		case StatePlaying:
			_ = s.Transition(StatePaused)
		case StatePaused:
			_ = s.Transition(StatePlaying)
		}
	case core.ActionRestart:
		if s.state.Finished() {
			_ = s.Reset()
		}
	}
}

// launch releases the ball. Clicks pick a random upward angle, keys use a
// fixed one.
func (s *Session) launch(pointer bool) {
	if s.ball == nil {
		return
	}
	angle := s.cfg.Launch.KeyAngle
	if pointer {
		lo, hi := s.cfg.Launch.PointerMinAngle, s.cfg.Launch.PointerMaxAngle
		angle = lo + s.rng.Float64()*(hi-lo)
	}
	speed := s.difficulty.Speed(s.cfg.Ball.Speed, s.score, s.frames)
	if err := s.Transition(StatePlaying); err != nil {
		return
	}
	s.ball.Launch(angle, speed)
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Frames returns the number of simulated frames since Init.
func (s *Session) Frames() int { return s.frames }

// Elapsed returns simulated seconds since Init.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Bounds returns the playfield.
func (s *Session) Bounds() core.Bounds { return s.bounds }

// Ball returns the ball, or nil before Init.
func (s *Session) Ball() *Ball { return s.ball }

// Paddle returns the paddle, or nil before Init.
func (s *Session) Paddle() *Paddle { return s.paddle }

// Field returns the brick grid, or nil before Init.
func (s *Session) Field() *Field { return s.field }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.BlockBreakerConfig { return s.cfg }
