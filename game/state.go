package game

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/wvoliveira/pong/configs"
)

type RunState int

const (
	NotStarted RunState = iota
	Running
	Paused
	GameOver
)

func (r RunState) String() string {
	switch r {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

// Valores antes do primeiro resize.
const (
	initialPaddleWidth  = 14
	initialPaddleHeight = 100
	initialPaddleSpeed  = 7
	initialPaddleOffset = 22
	initialBallRadius   = 10
	initialBallSpeed    = 6
	initialBallVX       = 6
	initialBallVY       = 3
)

// Estado do mundo. Pertence ao loop de frames; só uma goroutine escreve nele.
type State struct {
	cfg  configs.Config
	log  *slog.Logger
	rng  *rand.Rand
	sink ScoreSink

	Width  float64
	Height float64

	Left  Paddle
	Right Paddle
	Ball  Ball
	Score Score
	Input Input

	run RunState
}

type Option func(*State)

func WithRand(r *rand.Rand) Option {
	return func(s *State) { s.rng = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *State) { s.log = l }
}

func WithScoreSink(sink ScoreSink) Option {
	return func(s *State) { s.sink = sink }
}

func New(cfg configs.Config, opts ...Option) *State {
	s := &State{
		cfg:    cfg,
		log:    slog.Default(),
		Width:  cfg.CanvasWidth,
		Height: cfg.CanvasHeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	paddle := Paddle{
		Width:  initialPaddleWidth,
		Height: initialPaddleHeight,
		Speed:  initialPaddleSpeed,
		Y:      s.Height/2 - initialPaddleHeight/2,
	}
	s.Left, s.Right = paddle, paddle
	s.Left.X = initialPaddleOffset
	s.Right.X = s.Width - initialPaddleOffset - initialPaddleWidth

	s.Ball = Ball{
		X:      s.Width / 2,
		Y:      s.Height / 2,
		Radius: initialBallRadius,
		Speed:  initialBallSpeed,
		VX:     initialBallVX,
		VY:     initialBallVY,
	}
	return s
}

func (s *State) Config() configs.Config { return s.cfg }

func (s *State) Run() RunState { return s.run }

// Toggle alterna entre Running e Paused. Não faz nada com o jogo encerrado.
func (s *State) Toggle() {
	switch s.run {
	case NotStarted, Paused:
		s.setRun(Running)
	case Running:
		s.setRun(Paused)
	}
}

// Reset zera o placar, centraliza as raquetes e saca para um lado aleatório.
func (s *State) Reset() {
	s.Score = Score{}
	s.showScore(Left)
	s.showScore(Right)

	s.Left.Y = s.Height/2 - s.Left.Height/2
	s.Right.Y = s.Height/2 - s.Right.Height/2

	dir := -1.0
	if s.rng.Float64() > 0.5 {
		dir = 1
	}
	s.serve(dir)
	s.setRun(NotStarted)
}

// Winner devolve o lado com mais pontos.
func (s *State) Winner() Side {
	if s.Score.Left > s.Score.Right {
		return Left
	}
	return Right
}

// ToggleLabel é o texto do botão de iniciar/pausar.
func ToggleLabel(r RunState) string {
	if r == Running {
		return "Pause"
	}
	return "Start"
}

// serve recoloca a bola no centro indo na direção dir (+1 direita, -1 esquerda).
func (s *State) serve(dir float64) {
	s.Ball.X = s.Width / 2
	s.Ball.Y = s.Height / 2
	s.Ball.VX = dir * s.Ball.Speed
	s.Ball.VY = RandRange(s.rng, -s.cfg.ServeVY, s.cfg.ServeVY)
	if s.Ball.VY == 0 {
		s.Ball.VY = s.cfg.ServeFallback
	}
}

func (s *State) setRun(r RunState) {
	if s.run == r {
		return
	}
	s.log.Debug("run state changed", "from", s.run, "to", r)
	s.run = r
}

func (s *State) showScore(side Side) {
	if s.sink != nil {
		s.sink.ShowScore(side, s.Score.Of(side))
	}
}
