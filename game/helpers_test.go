package game

import (
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/wvoliveira/pong/configs"
)

func newTestState(opts ...Option) *State {
	base := []Option{
		WithRand(rand.New(rand.NewPCG(42, 7))),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	return New(configs.New(), append(base, opts...)...)
}

// running devolve um estado já em jogo, com a bola parada no centro.
func running(opts ...Option) *State {
	s := newTestState(opts...)
	s.Reset()
	s.Toggle()
	s.Ball.VX, s.Ball.VY = 0, 0
	return s
}

type sinkCall struct {
	side  Side
	value int
}

type recordingSink struct {
	calls []sinkCall
}

func (r *recordingSink) ShowScore(side Side, value int) {
	r.calls = append(r.calls, sinkCall{side, value})
}
