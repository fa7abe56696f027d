package game

import (
	"slices"
	"strings"
)

// Estado da entrada entre frames. Com toque ativo o teclado não move a raquete esquerda.
type Input struct {
	Up   bool
	Down bool

	TouchActive bool
	TouchY      float64
}

// Rect é o retângulo do canvas na tela, em coordenadas do cliente.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// KeyDown aplica uma tecla pressionada. Devolve false se a tecla não tem ação.
func (s *State) KeyDown(key string) bool {
	key = strings.ToLower(key)
	keys := s.cfg.Keys

	switch {
	case slices.Contains(keys.Up, key):
		s.Input.Up = true
	case slices.Contains(keys.Down, key):
		s.Input.Down = true
	case slices.Contains(keys.Toggle, key):
		s.Toggle()
	case slices.Contains(keys.Reset, key):
		s.Reset()
	default:
		return false
	}
	return true
}

func (s *State) KeyUp(key string) {
	key = strings.ToLower(key)
	if slices.Contains(s.cfg.Keys.Up, key) {
		s.Input.Up = false
	}
	if slices.Contains(s.cfg.Keys.Down, key) {
		s.Input.Down = false
	}
}

// TouchStart assume o controle da raquete esquerda pelo primeiro toque.
// Sem pontos de toque é ignorado.
func (s *State) TouchStart(rect Rect, touches []float64) {
	if len(touches) == 0 {
		return
	}
	s.Input.TouchActive = true
	s.movePlayerTo(rect, touches[0])
}

func (s *State) TouchMove(rect Rect, touches []float64) {
	if !s.Input.TouchActive || len(touches) == 0 {
		return
	}
	s.movePlayerTo(rect, touches[0])
}

// TouchEnd devolve o controle ao teclado. Serve também para cancel.
func (s *State) TouchEnd() {
	s.Input.TouchActive = false
}

// movePlayerTo converte o Y do cliente para o canvas e centraliza a raquete nele.
func (s *State) movePlayerTo(rect Rect, clientY float64) {
	if rect.Height <= 0 {
		return
	}
	y := (clientY - rect.Y) * s.Height / rect.Height
	s.Input.TouchY = y
	s.Left.Y = y - s.Left.Height/2
	s.Left.clampY(s.Height)
}
