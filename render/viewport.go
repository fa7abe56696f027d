package render

import "github.com/wvoliveira/pong/game"

// Viewport encaixa o canvas na janela mantendo a proporção e centralizando.
// O retângulo resultante é o que o toque usa para converter coordenadas.
func Viewport(windowW, windowH, canvasW, canvasH float64) game.Rect {
	if windowW <= 0 || windowH <= 0 || canvasW <= 0 || canvasH <= 0 {
		return game.Rect{}
	}
	scale := min(windowW/canvasW, windowH/canvasH)
	w, h := canvasW*scale, canvasH*scale
	return game.Rect{
		X:      (windowW - w) / 2,
		Y:      (windowH - h) / 2,
		Width:  w,
		Height: h,
	}
}
