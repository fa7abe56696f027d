package game

import "math"

// Step avança um frame da simulação. Fora de Running não altera nada.
func (s *State) Step() {
	if s.run != Running {
		return
	}
	s.movePlayer()
	s.moveCPU()
	s.moveBall()
}

func (s *State) movePlayer() {
	// Com toque ativo a posição já foi definida pelo evento.
	if s.Input.TouchActive {
		return
	}
	if s.Input.Up {
		s.Left.Y -= s.Left.Speed
	}
	if s.Input.Down {
		s.Left.Y += s.Left.Speed
	}
	s.Left.clampY(s.Height)
}

// moveCPU aproxima a raquete direita do alvo uma fração por frame.
func (s *State) moveCPU() {
	target := s.Ball.Y - s.Right.Height/2
	s.Right.Y += (target - s.Right.Y) * s.cfg.ReactionFactor
	s.Right.clampY(s.Height)
}

func (s *State) moveBall() {
	b := &s.Ball
	b.X += b.VX
	b.Y += b.VY

	// Teto/Chão
	if b.Y-b.Radius <= 0 || b.Y+b.Radius >= s.Height {
		b.VY = -b.VY
	}

	if b.VX < 0 && b.hits(s.Left) {
		s.bounce(s.Left, 1)
	}
	if b.VX > 0 && b.hits(s.Right) {
		s.bounce(s.Right, -1)
	}

	// Ponto / Saque
	if b.X < -b.Radius {
		s.point(Right)
		s.serve(1)
	}
	if b.X > s.Width+b.Radius {
		s.point(Left)
		s.serve(-1)
	}

	b.VY = Clamp(b.VY, -s.cfg.MaxVY, s.cfg.MaxVY)
}

// bounce rebate a bola para dir, acelerando e dando efeito conforme o ponto de contato.
func (s *State) bounce(p Paddle, dir float64) {
	b := &s.Ball
	relative := (b.Y - p.CenterY()) / (p.Height / 2)
	b.VX = dir * math.Abs(b.VX) * s.cfg.SpeedUp
	b.VY += relative * s.cfg.Spin
}

func (s *State) point(side Side) {
	if side == Left {
		s.Score.Left++
	} else {
		s.Score.Right++
	}
	s.showScore(side)
	s.log.Debug("point scored", "side", side, "left", s.Score.Left, "right", s.Score.Right)

	if s.Score.Of(side) >= s.cfg.WinningScore {
		s.setRun(GameOver)
		s.log.Info("game over", "winner", side, "left", s.Score.Left, "right", s.Score.Right)
	}
}
