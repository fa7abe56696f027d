package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/game"
	"github.com/wvoliveira/pong/render"
	"github.com/wvoliveira/pong/render/screen"
)

var helpFace = text.NewGoXFace(basicfont.Face7x13)

type Game struct {
	loop    *game.Loop
	state   *game.State
	surface *screen.Surface
	canvas  *ebiten.Image
	started bool

	// Placar exibido fora do canvas, indexado por game.Side.
	score [2]int

	// Tamanho da janela visto no último Layout e o retângulo do canvas nela.
	winW, winH int
	view       game.Rect

	keys     []ebiten.Key
	touchIDs []ebiten.TouchID
	pointer  game.Pointer
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.loop.Stop()
	}

	g.relayout()
	// O primeiro saque usa a velocidade do canvas já ajustado à janela.
	if !g.started && g.winW > 0 {
		g.state.Reset()
		g.started = true
	}
	g.readKeys()
	g.pointer.Apply(g.state, g.view, g.readPointer())

	if !g.loop.Tick() {
		return ebiten.Termination
	}
	return nil
}

// relayout aplica o tamanho da janela ao canvas. A largura disponível é a da janela.
func (g *Game) relayout() {
	if g.winW == 0 || g.winH == 0 {
		return
	}
	g.state.Resize(float64(g.winW))
	g.view = render.Viewport(float64(g.winW), float64(g.winH), g.state.Width, g.state.Height)
}

func (g *Game) readKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.loop.KeyDown(keyName(k))
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.loop.KeyUp(keyName(k))
	}
}

// readPointer junta toques e o botão esquerdo do mouse vistos neste frame.
func (g *Game) readPointer() game.PointerFrame {
	var f game.PointerFrame
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	f.JustTouched = touchYs(g.touchIDs)
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	f.Touches = touchYs(g.touchIDs)

	_, y := ebiten.CursorPosition()
	f.MouseY = float64(y)
	f.MousePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	f.MouseReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return f
}

func (g *Game) Draw(dst *ebiten.Image) {
	// Fundo cinza escuro
	dst.Fill(color.RGBA{0x20, 0x20, 0x30, 0xff})

	w, h := int(g.state.Width), int(g.state.Height)
	if g.canvas == nil || g.canvas.Bounds().Dx() != w || g.canvas.Bounds().Dy() != h {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(w, h)
		g.surface.SetTarget(g.canvas)
	}

	render.Frame(g.surface, g.state, render.DefaultHints)

	// Fundo do canvas; o Frame deixa transparente o que não desenha.
	vector.FillRect(dst, float32(g.view.X), float32(g.view.Y), float32(g.view.Width), float32(g.view.Height), color.RGBA{0x0b, 0x12, 0x20, 0xff}, false)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.view.Width/g.state.Width, g.view.Height/g.state.Height)
	op.GeoM.Translate(g.view.X, g.view.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(g.canvas, op)

	// Placar e ajuda
	score := &text.DrawOptions{}
	score.GeoM.Translate(float64(g.winW)/2, 4)
	score.PrimaryAlign = text.AlignCenter
	text.Draw(dst, fmt.Sprintf("%d  :  %d", g.score[game.Left], g.score[game.Right]), helpFace, score)

	help := &text.DrawOptions{}
	help.GeoM.Translate(4, float64(g.winH)-16)
	msg := fmt.Sprintf("W/S or arrows: move  |  Space: %s  |  R: reset  |  Esc: quit", game.ToggleLabel(g.state.Run()))
	text.Draw(dst, msg, helpFace, help)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.winW, g.winH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// keyName devolve o nome da tecla no formato das configs ("arrowup", "w", "space").
func keyName(k ebiten.Key) string {
	return strings.ToLower(k.String())
}

func touchYs(ids []ebiten.TouchID) []float64 {
	ys := make([]float64, 0, len(ids))
	for _, id := range ids {
		_, y := ebiten.TouchPosition(id)
		ys = append(ys, float64(y))
	}
	return ys
}

func main() {
	var (
		cfg   = configs.New()
		seed  = flag.Uint64("seed", 0, "random seed, 0 uses the clock")
		debug = flag.Bool("debug", false, "log debug messages")
	)
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := cfg.Validate(); err != nil {
		slog.Error("error to load config", "error", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	surface, err := screen.New()
	if err != nil {
		slog.Error("error to load fonts", "error", err)
		os.Exit(1)
	}

	g := &Game{surface: surface}
	g.state = game.New(cfg,
		game.WithRand(rand.New(rand.NewPCG(*seed, *seed>>1))),
		game.WithScoreSink(game.ScoreSinkFunc(func(side game.Side, value int) { g.score[side] = value })),
	)
	g.loop = game.NewLoop(g.state)
	g.loop.OnStop(func() { slog.Info("closing window") })

	ebiten.SetWindowSize(int(cfg.CanvasWidth), int(cfg.CanvasHeight))
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)

	slog.Info("starting game", "seed", *seed, "winning_score", cfg.WinningScore)
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
}
