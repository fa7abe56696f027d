package render

import "image/color"

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Font struct {
	Size float64
	Bold bool
}

// Surface é o contexto 2D que o jogo precisa, em pixels lógicos do canvas.
// Y de FillText é a linha de base do texto.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	FillText(s string, x, y float64, font Font, align Align, clr color.Color)
}
