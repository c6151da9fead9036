package blockbreaker

import (
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a copy of the session state in primitive types, used for
// determinism checks and headless runs.
type Snapshot struct {
	Frame   uint64  `msgpack:"frame"`
	Elapsed float64 `msgpack:"elapsed"`
	State   string  `msgpack:"state"`
	Score   int     `msgpack:"score"`

	BallX    float64 `msgpack:"ball_x"`
	BallY    float64 `msgpack:"ball_y"`
	BallVX   float64 `msgpack:"ball_vx"`
	BallVY   float64 `msgpack:"ball_vy"`
	Launched bool    `msgpack:"launched"`

	PaddleX float64 `msgpack:"paddle_x"`
	PaddleY float64 `msgpack:"paddle_y"`
	PaddleW float64 `msgpack:"paddle_w"`

	BricksRemaining int `msgpack:"bricks_remaining"`
	// Row-major alive flags
	BrickData []bool `msgpack:"bricks"`
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:   uint64(s.frames), //#nosec G115 -- frame count is never negative
		Elapsed: s.elapsed,
		State:   s.state.String(),
		Score:   s.score,
	}
	if s.ball != nil {
		snap.BallX, snap.BallY = s.ball.X, s.ball.Y
		snap.BallVX, snap.BallVY = s.ball.VX, s.ball.VY
		snap.Launched = s.ball.Launched
	}
	if s.paddle != nil {
		snap.PaddleX, snap.PaddleY, snap.PaddleW = s.paddle.X, s.paddle.Y, s.paddle.W
	}
	if s.field != nil {
		layout := s.field.Layout()
		snap.BrickData = make([]bool, 0, layout.Cols*layout.Rows)
		for row := range layout.Rows {
			for col := range layout.Cols {
				alive := s.field.IsAlive(col, row)
				snap.BrickData = append(snap.BrickData, alive)
				if alive {
					snap.BricksRemaining++
				}
			}
		}
	}
	return snap
}

// Hash returns an FNV-64a hash of the msgpack encoding.
func (snap *Snapshot) Hash() uint64 {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64()
}
