package game

import "testing"

func TestLoopTickAndStop(t *testing.T) {
	s := running()
	s.Ball.VX = 3
	l := NewLoop(s)

	if !l.Tick() {
		t.Fatal("Tick() = false before Stop")
	}
	if s.Ball.X != s.Width/2+3 {
		t.Errorf("ball x = %g after one tick", s.Ball.X)
	}

	calls := 0
	l.OnStop(func() { calls++ })
	l.Stop()
	l.Stop()

	if calls != 1 {
		t.Errorf("stop hook ran %d times, want 1", calls)
	}
	x := s.Ball.X
	if l.Tick() {
		t.Error("Tick() = true after Stop")
	}
	if s.Ball.X != x {
		t.Error("tick after stop moved the ball")
	}
}

func TestLoopQuitKey(t *testing.T) {
	l := NewLoop(running())

	l.KeyDown("w")
	if !l.State().Input.Up {
		t.Error("w not forwarded to state")
	}
	l.KeyUp("w")
	if l.State().Input.Up {
		t.Error("key up not forwarded to state")
	}

	l.KeyDown("Escape")
	if !l.Stopped() {
		t.Error("escape did not stop the loop")
	}
}
