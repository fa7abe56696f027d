package game

import (
	"math"
	"testing"
)

func TestStepIdleWhenNotRunning(t *testing.T) {
	for _, r := range []RunState{NotStarted, Paused, GameOver} {
		s := newTestState()
		s.run = r
		s.Input.Up = true
		ball, left, right := s.Ball, s.Left, s.Right

		s.Step()

		if s.Ball != ball || s.Left != left || s.Right != right {
			t.Errorf("%v: Step changed the world", r)
		}
	}
}

func TestCPUReaction(t *testing.T) {
	s := running()
	s.Ball.X, s.Ball.Y = s.Width/2, s.Height/2
	s.Ball.VX, s.Ball.VY = 6, 3
	s.Right.Y = 0

	s.Step()

	target := s.Height/2 - s.Right.Height/2
	want := (target - 0) * 0.1
	if math.Abs(s.Right.Y-want) > 1e-9 {
		t.Errorf("cpu paddle y = %g, want %g", s.Right.Y, want)
	}
}

func TestPlayerKeys(t *testing.T) {
	s := running()
	start := s.Left.Y

	s.Input.Up = true
	s.Step()
	if s.Left.Y != start-s.Left.Speed {
		t.Errorf("up: y = %g, want %g", s.Left.Y, start-s.Left.Speed)
	}

	s.Input.Up, s.Input.Down = false, true
	s.Step()
	s.Step()
	if s.Left.Y != start+s.Left.Speed {
		t.Errorf("down: y = %g, want %g", s.Left.Y, start+s.Left.Speed)
	}

	s.Input.Down = false
	s.Input.Up = true
	for i := 0; i < 200; i++ {
		s.Step()
	}
	if s.Left.Y != 0 {
		t.Errorf("held up: y = %g, want clamped to 0", s.Left.Y)
	}
}

func TestWallBounce(t *testing.T) {
	s := running()
	s.Ball.Y = s.Ball.Radius + 1
	s.Ball.VY = -3

	s.Step()

	if s.Ball.VY != 3 {
		t.Errorf("top wall: vy = %g, want 3", s.Ball.VY)
	}

	s.Ball.Y = s.Height - s.Ball.Radius - 1
	s.Ball.VY = 3
	s.Step()
	if s.Ball.VY != -3 {
		t.Errorf("bottom wall: vy = %g, want -3", s.Ball.VY)
	}
}

func TestPaddleHit(t *testing.T) {
	tests := []struct {
		name   string
		offset float64 // contato em relação ao centro da raquete
		wantVY float64
	}{
		{"centre", 0, 0},
		{"upper half", -25, -0.5 * 2.1},
		{"lower edge", 50, 2.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := running()
			s.Left.Y = 200
			s.Ball.VX, s.Ball.VY = -6, 0
			s.Ball.X = s.Left.X + s.Left.Width + s.Ball.Radius + 2
			s.Ball.Y = s.Left.CenterY() + tt.offset

			s.Step()

			if want := 6 * 1.03; math.Abs(s.Ball.VX-want) > 1e-9 {
				t.Errorf("vx = %g, want %g", s.Ball.VX, want)
			}
			if math.Abs(s.Ball.VY-tt.wantVY) > 1e-9 {
				t.Errorf("vy = %g, want %g", s.Ball.VY, tt.wantVY)
			}
		})
	}
}

func TestPaddleHitGatedByDirection(t *testing.T) {
	s := running()
	s.Left.Y = 200
	s.Ball.X = s.Left.X + s.Left.Width/2
	s.Ball.Y = s.Left.CenterY()
	s.Ball.VX = 2

	s.Step()

	if s.Ball.VX != 2 {
		t.Errorf("ball leaving the left paddle bounced again: vx = %g", s.Ball.VX)
	}
}

func TestScoring(t *testing.T) {
	tests := []struct {
		name      string
		x, vx     float64
		wantScore Score
		wantDir   float64
	}{
		{"past left edge", -10, -6, Score{Right: 1}, 1},
		{"past right edge", 910, 6, Score{Left: 1}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			s := running(WithScoreSink(sink))
			sink.calls = nil
			s.Ball.X, s.Ball.VX = tt.x, tt.vx

			s.Step()

			if s.Score != tt.wantScore {
				t.Errorf("score = %+v, want %+v", s.Score, tt.wantScore)
			}
			if len(sink.calls) != 1 {
				t.Errorf("sink called %d times, want 1", len(sink.calls))
			}
			if s.Ball.X != s.Width/2 || s.Ball.Y != s.Height/2 {
				t.Errorf("ball not served from centre: (%g, %g)", s.Ball.X, s.Ball.Y)
			}
			if s.Ball.VX != tt.wantDir*s.Ball.Speed {
				t.Errorf("serve vx = %g, want %g", s.Ball.VX, tt.wantDir*s.Ball.Speed)
			}
			if s.Run() != Running {
				t.Errorf("run = %v after a single point", s.Run())
			}
		})
	}
}

func TestGameOver(t *testing.T) {
	s := running()
	s.Score = Score{Left: 6, Right: 3}
	s.Ball.X, s.Ball.VX = s.Width+s.Ball.Radius, 6

	s.Step()

	if s.Score != (Score{Left: 7, Right: 3}) {
		t.Fatalf("score = %+v, want 7-3", s.Score)
	}
	if s.Run() != GameOver {
		t.Fatalf("run = %v, want GameOver", s.Run())
	}
	if s.Winner() != Left {
		t.Errorf("winner = %v, want left", s.Winner())
	}

	s.Toggle()
	ball, left, right, score := s.Ball, s.Left, s.Right, s.Score
	for i := 0; i < 10; i++ {
		s.Step()
	}
	if s.Ball != ball || s.Left != left || s.Right != right || s.Score != score {
		t.Error("state changed after game over")
	}

	s.Reset()
	if s.Run() != NotStarted || s.Score != (Score{}) {
		t.Errorf("reset after game over: run %v score %+v", s.Run(), s.Score)
	}
}

// Roda muitas partidas e confere os invariantes a cada frame.
func TestInvariantsOverManyFrames(t *testing.T) {
	s := running()
	s.Reset()
	s.Toggle()

	prevAbsVX := math.Abs(s.Ball.VX)
	prevTotal := 0
	games := 0

	for frame := 0; frame < 50000; frame++ {
		switch {
		case frame%300 < 100:
			s.Input.Up, s.Input.Down = true, false
		case frame%300 < 200:
			s.Input.Up, s.Input.Down = false, true
		default:
			s.Input.Up, s.Input.Down = false, false
		}
		if frame%7 == 0 {
			s.TouchStart(Rect{Height: s.Height}, []float64{s.Ball.Y})
		} else {
			s.TouchEnd()
		}

		s.Step()

		for _, p := range []Paddle{s.Left, s.Right} {
			if p.Y < 0 || p.Y > s.Height-p.Height {
				t.Fatalf("frame %d: paddle y %g out of [0, %g]", frame, p.Y, s.Height-p.Height)
			}
		}
		if math.Abs(s.Ball.VY) > 8 {
			t.Fatalf("frame %d: vy %g out of range", frame, s.Ball.VY)
		}

		total := s.Score.Left + s.Score.Right
		absVX := math.Abs(s.Ball.VX)
		switch total - prevTotal {
		case 0:
			if absVX < prevAbsVX {
				t.Fatalf("frame %d: |vx| dropped within a rally: %g -> %g", frame, prevAbsVX, absVX)
			}
		case 1:
			if absVX != s.Ball.Speed {
				t.Fatalf("frame %d: serve |vx| = %g, want %g", frame, absVX, s.Ball.Speed)
			}
		default:
			t.Fatalf("frame %d: score jumped by %d", frame, total-prevTotal)
		}
		prevAbsVX, prevTotal = absVX, total

		if s.Run() == GameOver {
			if s.Score.Left != 7 && s.Score.Right != 7 {
				t.Fatalf("game over at %+v", s.Score)
			}
			games++
			s.Reset()
			s.Toggle()
			prevAbsVX, prevTotal = math.Abs(s.Ball.VX), 0
		}
	}
	if games == 0 {
		t.Error("no game finished in 50000 frames")
	}
}
