package term

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/pong/game"
	"github.com/wvoliveira/pong/render"
)

// Largura nominal de uma célula em pixels do canvas, usada para derivar a
// largura do canvas a partir do número de colunas.
const CellWidth = 8

var Background = color.RGBA{0x10, 0x10, 0x18, 0xff}

// Hints do terminal: não há toque nem botões.
var Hints = render.Hints{
	Start: "Press Space to start",
	Over:  "Press R to reset",
}

type cell struct {
	bg   color.RGBA
	fg   color.RGBA
	ch   rune
	bold bool
}

// Surface rasteriza o canvas na grade do terminal, a partir da linha top.
type Surface struct {
	screen tcell.Screen
	top    int

	cols, rows   int
	cellW, cellH float64
	cells        []cell
}

func New(screen tcell.Screen, top int) *Surface {
	return &Surface{screen: screen, top: top}
}

// Layout ajusta a grade ao tamanho atual do terminal e do canvas.
func (s *Surface) Layout(canvasW, canvasH float64) {
	cols, rows := s.screen.Size()
	rows -= s.top
	s.cols, s.rows = max(cols, 1), max(rows, 1)
	s.cellW = canvasW / float64(s.cols)
	s.cellH = canvasH / float64(s.rows)
	if len(s.cells) != s.cols*s.rows {
		s.cells = make([]cell, s.cols*s.rows)
	}
}

// ContainerWidth é a largura em pixels que o terminal oferece ao canvas.
func (s *Surface) ContainerWidth() float64 {
	cols, _ := s.screen.Size()
	return float64(cols * CellWidth)
}

// Bounds é o retângulo do canvas na tela em células, para mapear o mouse.
func (s *Surface) Bounds() game.Rect {
	return game.Rect{Y: float64(s.top), Width: float64(s.cols), Height: float64(s.rows)}
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	s.each(x, y, w, h, func(c *cell, _ float64) {
		*c = cell{bg: Background}
	})
}

func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	s.each(x, y, w, h, func(c *cell, cover float64) {
		c.bg = blend(c.bg, clr, cover)
		if c.ch != 0 {
			c.fg = blend(c.fg, clr, cover)
		}
	})
}

func (s *Surface) FillCircle(cx, cy, r float64, clr color.Color) {
	col, row := s.cellAt(cx, cy)
	for j := 0; j < s.rows; j++ {
		for i := 0; i < s.cols; i++ {
			mx := (float64(i) + 0.5) * s.cellW
			my := (float64(j) + 0.5) * s.cellH
			if (i == col && j == row) || math.Hypot(mx-cx, my-cy) <= r {
				c := &s.cells[j*s.cols+i]
				c.bg = blend(c.bg, clr, 1)
			}
		}
	}
}

// FillText escreve uma célula por rune na linha que contém a base y.
func (s *Surface) FillText(str string, x, y float64, font render.Font, align render.Align, clr color.Color) {
	n := utf8.RuneCountInString(str)
	col, row := s.cellAt(x, y)
	switch align {
	case render.AlignCenter:
		col -= n / 2
	case render.AlignRight:
		col -= n
	}
	if row < 0 || row >= s.rows {
		return
	}
	fg := blend(color.RGBA{}, clr, 1)
	for _, r := range str {
		if col >= 0 && col < s.cols {
			c := &s.cells[row*s.cols+col]
			c.ch, c.fg, c.bold = r, fg, font.Bold
		}
		col++
	}
}

// Flush copia a grade para a tela. Quem chama faz o Show.
func (s *Surface) Flush() {
	for j := 0; j < s.rows; j++ {
		for i := 0; i < s.cols; i++ {
			c := s.cells[j*s.cols+i]
			style := tcell.StyleDefault.Background(rgb(c.bg))
			ch := ' '
			if c.ch != 0 {
				ch = c.ch
				style = style.Foreground(rgb(c.fg)).Bold(c.bold)
			}
			s.screen.SetContent(i, s.top+j, ch, nil, style)
		}
	}
}

func (s *Surface) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

// each chama fn para cada célula que o retângulo toca, com a fração coberta.
func (s *Surface) each(x, y, w, h float64, fn func(c *cell, cover float64)) {
	x0, y0 := s.cellAt(x, y)
	x1, y1 := s.cellAt(x+w, y+h)
	for j := max(y0, 0); j <= min(y1, s.rows-1); j++ {
		oy := overlap(y, y+h, float64(j)*s.cellH, float64(j+1)*s.cellH) / s.cellH
		for i := max(x0, 0); i <= min(x1, s.cols-1); i++ {
			ox := overlap(x, x+w, float64(i)*s.cellW, float64(i+1)*s.cellW) / s.cellW
			if cover := ox * oy; cover > 0 {
				fn(&s.cells[j*s.cols+i], cover)
			}
		}
	}
}

func overlap(a0, a1, b0, b1 float64) float64 {
	return max(0, min(a1, b1)-max(a0, b0))
}

// blend compõe src sobre dst (alpha pré-multiplicado) com a cobertura dada.
func blend(dst color.RGBA, src color.Color, cover float64) color.RGBA {
	r, g, b, a := src.RGBA()
	k := float64(a) / 0xffff * cover
	mix := func(d uint8, s uint32) uint8 {
		return uint8(math.Round(float64(s)/0x101*cover + float64(d)*(1-k)))
	}
	return color.RGBA{
		R: mix(dst.R, r),
		G: mix(dst.G, g),
		B: mix(dst.B, b),
		A: mix(dst.A, a),
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
