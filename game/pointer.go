package game

// PointerFrame é o que o host viu de toque e mouse em um frame. Os Y estão em
// coordenadas do cliente.
type PointerFrame struct {
	JustTouched []float64 // toques que começaram neste frame
	Touches     []float64 // todos os toques ativos

	MousePressed  bool
	MouseReleased bool
	MouseY        float64
}

// Pointer decide entre toque e botão esquerdo do mouse. Enquanto o mouse está
// pressionado ele é o dono do toque e os toques da tela são ignorados.
type Pointer struct {
	mouse bool
}

func (p *Pointer) MouseHeld() bool { return p.mouse }

func (p *Pointer) Apply(s *State, rect Rect, f PointerFrame) {
	switch {
	case len(f.JustTouched) > 0:
		s.TouchStart(rect, f.JustTouched)
	case p.mouse:
	case len(f.Touches) > 0:
		s.TouchMove(rect, f.Touches)
	case s.Input.TouchActive:
		s.TouchEnd()
	}

	ys := []float64{f.MouseY}
	switch {
	case f.MousePressed:
		p.mouse = true
		s.TouchStart(rect, ys)
	case f.MouseReleased:
		p.mouse = false
		s.TouchEnd()
	case p.mouse:
		s.TouchMove(rect, ys)
	}
}
