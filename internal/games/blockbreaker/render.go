package blockbreaker

import (
	"fmt"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// HUD layout in playfield pixels.
const (
	hudX       = 12
	hudY       = 20
	lineHeight = 30
)

// Render draws bricks, paddle, ball, the score line and any state overlay.
func (s *Session) Render(c core.Canvas) {
	if s.field != nil {
		s.field.Draw(c)
	}
	if s.paddle != nil {
		s.paddle.Draw(c)
	}
	if s.ball != nil {
		s.ball.Draw(c)
	}

	c.DrawText(fmt.Sprintf("SCORE: %06d", s.score), hudX, hudY, core.TextStyle{Color: core.ColorHUD})
	s.renderOverlay(c)
}

func (s *Session) renderOverlay(c core.Canvas) {
	cx := (s.bounds.Left + s.bounds.Right) / 2
	cy := (s.bounds.Top + s.bounds.Bottom) / 2
	center := core.TextStyle{Color: core.ColorHUD, Align: core.AlignCenter}
	title := core.TextStyle{Color: core.ColorWhite, Align: core.AlignCenter}

	switch s.state {
	case StateReady:
		c.DrawText("Click or Space to launch", cx, cy+2*lineHeight, center)
	case StatePaused:
		c.DrawText("PAUSED", cx, cy, title)
		c.DrawText("Press P to resume", cx, cy+lineHeight, center)
	case StateClear:
		c.DrawText("CLEAR!", cx, cy, core.TextStyle{Color: core.ColorGreen, Align: core.AlignCenter})
		c.DrawText(fmt.Sprintf("Score: %d  |  Press R to restart", s.score), cx, cy+lineHeight, center)
	case StateGameOver:
		c.DrawText("GAME OVER", cx, cy, core.TextStyle{Color: core.ColorRed, Align: core.AlignCenter})
		c.DrawText(fmt.Sprintf("Score: %d  |  Press R to restart", s.score), cx, cy+lineHeight, center)
	}
}
