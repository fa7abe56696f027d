package game

import "math"

// Resize recalcula o canvas a partir da largura disponível, mantendo a proporção,
// e reescala raquetes e bola. Devolve false se as dimensões não mudaram.
func (s *State) Resize(containerWidth float64) bool {
	prevW, prevH := s.Width, s.Height
	if prevW <= 0 {
		prevW = s.cfg.CanvasWidth
	}
	if prevH <= 0 {
		prevH = s.cfg.CanvasHeight
	}

	w := Clamp(math.Round(containerWidth), s.cfg.MinWidth, s.cfg.MaxWidth)
	h := math.Round(w / s.cfg.AspectRatio)
	if w == prevW && h == prevH {
		return false
	}

	s.Width, s.Height = w, h
	xScale, yScale := w/prevW, h/prevH

	pw := math.Round(Clamp(w*0.015, 8, 14))
	ph := math.Round(Clamp(h*0.2, 56, 100))
	ps := math.Round(Clamp(h*0.015, 4, 7))
	offset := math.Round(Clamp(w*0.025, 10, 22))

	for _, p := range []*Paddle{&s.Left, &s.Right} {
		p.Width, p.Height, p.Speed = pw, ph, ps
		p.Y *= yScale
		p.clampY(h)
	}
	s.Left.X = offset
	s.Right.X = w - offset - pw

	b := &s.Ball
	b.Radius = math.Round(Clamp(w*0.011, 6, 10))
	b.Speed = Clamp(w*0.007, 3.5, 6)
	b.X = Clamp(b.X*xScale, b.Radius, w-b.Radius)
	b.Y = Clamp(b.Y*yScale, b.Radius, h-b.Radius)
	b.VX = math.Copysign(math.Max(math.Abs(b.VX), b.Speed), b.VX)

	// Com toque ativo a raquete continua sob o dedo.
	if s.Input.TouchActive {
		s.Input.TouchY *= yScale
		s.Left.Y = s.Input.TouchY - s.Left.Height/2
		s.Left.clampY(h)
	}

	s.log.Debug("canvas resized", "width", w, "height", h)
	return true
}
