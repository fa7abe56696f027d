package render

import (
	"image/color"

	"github.com/wvoliveira/pong/game"
)

var (
	CenterLineColor = color.RGBA{0x40, 0x40, 0x40, 0x40}
	PaddleColor     = color.White
	BallColor       = color.RGBA{0x9c, 0xf4, 0xff, 0xff}
	OverlayColor    = color.RGBA{0, 0, 0, 0x73}
	TextColor       = color.White

	TitleFont    = Font{Size: 42, Bold: true}
	SubtitleFont = Font{Size: 22}
)

// Textos de ajuda do overlay; cada front-end fala da sua forma de entrada.
type Hints struct {
	Start string
	Over  string
}

var DefaultHints = Hints{
	Start: "Press Space or Tap Start",
	Over:  "Press R or Tap Reset",
}

// Frame desenha o estado atual. Não altera nada em s.
func Frame(dst Surface, s *game.State, hints Hints) {
	w, h := s.Width, s.Height

	dst.ClearRect(0, 0, w, h)
	centerLine(dst, w, h)
	paddle(dst, s.Left)
	paddle(dst, s.Right)
	dst.FillCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius, BallColor)

	switch s.Run() {
	case game.NotStarted, game.Paused:
		overlay(dst, w, h, s.Config().Title, hints.Start)
	case game.GameOver:
		overlay(dst, w, h, WinnerText(s.Winner()), hints.Over)
	}
}

func WinnerText(side game.Side) string {
	if side == game.Left {
		return "You Win!"
	}
	return "CPU Wins!"
}

func centerLine(dst Surface, w, h float64) {
	for y := 10.0; y < h; y += 28 {
		dst.FillRect(w/2-2, y, 4, 16, CenterLineColor)
	}
}

func paddle(dst Surface, p game.Paddle) {
	dst.FillRect(p.X, p.Y, p.Width, p.Height, PaddleColor)
}

func overlay(dst Surface, w, h float64, title, subtitle string) {
	dst.FillRect(0, 0, w, h, OverlayColor)
	dst.FillText(title, w/2, h/2-10, TitleFont, AlignCenter, TextColor)
	dst.FillText(subtitle, w/2, h/2+28, SubtitleFont, AlignCenter, TextColor)
}
