package screen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wvoliveira/pong/render"
)

// Surface desenha em uma *ebiten.Image.
type Surface struct {
	img     *ebiten.Image
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[render.Font]*text.GoTextFace
}

func New() (*Surface, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &Surface{
		regular: regular,
		bold:    bold,
		faces:   make(map[render.Font]*text.GoTextFace),
	}, nil
}

// SetTarget troca a imagem de destino, por exemplo depois de um resize.
func (s *Surface) SetTarget(img *ebiten.Image) { s.img = img }

func (s *Surface) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	switch {
	case s.img.Bounds().In(r):
		s.img.Clear()
	case !r.Empty():
		s.img.SubImage(r).(*ebiten.Image).Clear()
	}
}

func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.FillRect(s.img, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.FillCircle(s.img, float32(cx), float32(cy), float32(r), clr, true)
}

func (s *Surface) FillText(str string, x, y float64, font render.Font, align render.Align, clr color.Color) {
	face := s.face(font)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	switch align {
	case render.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case render.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(s.img, str, face, op)
}

func (s *Surface) face(font render.Font) *text.GoTextFace {
	if f, ok := s.faces[font]; ok {
		return f
	}
	src := s.regular
	if font.Bold {
		src = s.bold
	}
	f := &text.GoTextFace{Source: src, Size: font.Size}
	s.faces[font] = f
	return f
}
