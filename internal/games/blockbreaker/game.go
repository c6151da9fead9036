// Package blockbreaker implements a single-ball brick breaker: a paddle
// that tracks the pointer, a ball with wall reflection and angle-controlled
// paddle bounces, and a grid of one-hit bricks.
package blockbreaker

import (
	"time"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/registry"
)

// Variant selects the bottom-edge rule.
type Variant int

const (
	VariantClassic Variant = iota // bottom edge per config (reflect by default)
	VariantSudden                 // touching the bottom ends the run
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An unknown name is
// rejected and the current preset stays in place.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// LoadConfig resolves the configuration the way Reset does, including the
// variant's rule overrides. On error it returns the defaults together with
// the error.
func LoadConfig(v Variant) (config.BlockBreakerConfig, error) {
	cfg, err := config.LoadBlockBreaker(configPath)
	if err != nil {
		cfg = config.DefaultBlockBreakerConfig()
	} else {
		config.ApplyBlockBreakerPreset(&cfg, difficultyPreset)
	}
	if v == VariantSudden {
		cfg.Gameplay.BottomEdge = config.BottomEdgeGameOver
	}
	return cfg, err
}

// Game adapts a Session to the registry interface.
type Game struct {
	variant   Variant
	session   *Session
	input     core.InputSource
	configErr error
	frameHits int
}

// New creates the classic variant.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewSuddenDeath creates the variant where a missed ball ends the run.
func NewSuddenDeath() *Game {
	return &Game{variant: VariantSudden}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantSudden {
		return "blockbreaker_sudden"
	}
	return "blockbreaker"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantSudden {
		return "Block Breaker (Sudden Death)"
	}
	return "Block Breaker"
}

// Reset builds a fresh session in the Ready state. A broken config file
// falls back to the defaults; ConfigError reports what went wrong.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := LoadConfig(g.variant)
	g.configErr = err

	if g.session != nil {
		g.session.Dispose()
	}
	s, err := NewSession(cfg, uint64(runtime.Seed), HitListenerFunc(g.onHit)) //#nosec G115 -- seed bits are reinterpreted
	if err != nil {
		// Defaults always validate.
		s, _ = NewSession(config.DefaultBlockBreakerConfig(), uint64(runtime.Seed), HitListenerFunc(g.onHit)) //#nosec G115
		g.configErr = err
	}
	_ = s.Init()
	g.session = s
	if g.input != nil {
		s.AttachInput(g.input)
	}
}

func (g *Game) onHit(Hit, int) {
	g.frameHits++
}

// ConfigError returns the config load error from the last Reset, if any.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Session returns the underlying session, or nil before Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Bounds returns the playfield.
func (g *Game) Bounds() core.Bounds {
	if g.session == nil {
		return core.Bounds{}
	}
	return g.session.Bounds()
}

// AttachInput connects an input source. It survives Reset.
func (g *Game) AttachInput(src core.InputSource) {
	g.input = src
	if g.session != nil {
		g.session.AttachInput(src)
	}
}

// Frame advances one display frame.
func (g *Game) Frame(now time.Time) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}
	g.frameHits = 0
	g.session.Frame(now)
	return core.StepResult{State: g.State(), Hits: g.frameHits}
}

// Render draws the current game state.
func (g *Game) Render(dst core.Canvas) {
	if g.session != nil {
		g.session.Render(dst)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		Phase:    st.String(),
		GameOver: st.Finished(),
		Cleared:  st == StateClear,
		Paused:   st == StatePaused,
	}
}

// Snapshot returns the session snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	return g.session.Snapshot()
}

// Dispose detaches input. The game must not be used afterwards.
func (g *Game) Dispose() {
	if g.session != nil {
		g.session.Dispose()
	}
	g.input = nil
}

// Register the games with the registry
func init() {
	registry.Register("blockbreaker", func() registry.Game {
		return New()
	})
	registry.Register("blockbreaker_sudden", func() registry.Game {
		return NewSuddenDeath()
	})
}
