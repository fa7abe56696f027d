package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/game"
	"github.com/wvoliveira/pong/render"
	"github.com/wvoliveira/pong/render/term"
)

// Terminais não mandam key-up: a tecla é solta quando para de repetir.
// Até a primeira repetição o prazo cobre o atraso de auto-repeat do sistema.
const (
	firstRepeatTimeout = 700 * time.Millisecond
	repeatTimeout      = 150 * time.Millisecond
)

type heldKey struct {
	last     time.Time
	repeated bool
}

type terminal struct {
	screen  tcell.Screen
	loop    *game.Loop
	state   *game.State
	surface *term.Surface
	pointer game.Pointer

	// Placar na linha de status, indexado por game.Side.
	score [2]int
	held  map[string]heldKey
}

func newTerminal(scr tcell.Screen, cfg configs.Config, opts ...game.Option) *terminal {
	t := &terminal{
		screen:  scr,
		surface: term.New(scr, 1),
		held:    make(map[string]heldKey),
	}
	sink := game.ScoreSinkFunc(func(side game.Side, value int) { t.score[side] = value })
	t.state = game.New(cfg, append(opts, game.WithScoreSink(sink))...)
	t.loop = game.NewLoop(t.state)

	t.resize()
	t.state.Reset()
	return t
}

// run é o loop do jogo: eventos e ticks chegam pelo mesmo select, então só
// esta goroutine mexe no estado.
func (t *terminal) run(ctx context.Context, tps int) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	t.loop.OnStop(cancel)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.loop.Stop()
			return

		case ev := <-events:
			t.handle(ev)

		case now := <-ticker.C:
			t.releaseKeys(now)
			if !t.loop.Tick() {
				return
			}
			t.draw()
		}
	}
}

func (t *terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if name := keyName(ev); name != "" {
			t.press(name, ev.When())
		}

	case *tcell.EventMouse:
		_, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		t.pointer.Apply(t.state, t.surface.Bounds(), game.PointerFrame{
			MousePressed:  down && !t.pointer.MouseHeld(),
			MouseReleased: !down && t.pointer.MouseHeld(),
			MouseY:        float64(y) + 0.5,
		})

	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
}

// press trata uma tecla vinda do terminal. Repetições de uma tecla segura só
// renovam o prazo.
func (t *terminal) press(name string, at time.Time) {
	k, ok := t.held[name]
	if !ok {
		t.loop.KeyDown(name)
	}
	t.held[name] = heldKey{last: at, repeated: ok || k.repeated}
}

func (t *terminal) releaseKeys(now time.Time) {
	for name, k := range t.held {
		timeout := firstRepeatTimeout
		if k.repeated {
			timeout = repeatTimeout
		}
		if now.Sub(k.last) > timeout {
			delete(t.held, name)
			t.loop.KeyUp(name)
		}
	}
}

func (t *terminal) resize() {
	t.state.Resize(t.surface.ContainerWidth())
	t.surface.Layout(t.state.Width, t.state.Height)
}

func (t *terminal) draw() {
	render.Frame(t.surface, t.state, term.Hints)
	t.surface.Flush()

	cols, _ := t.screen.Size()
	status := fmt.Sprintf(" YOU %d : %d CPU   [Space] %s  [R] Reset  [Esc] Quit",
		t.score[game.Left], t.score[game.Right], game.ToggleLabel(t.state.Run()))
	style := tcell.StyleDefault.Reverse(true)
	for x, r := range []rune(fmt.Sprintf("%-*s", cols, status)) {
		t.screen.SetContent(x, 0, r, nil, style)
	}
	t.screen.Show()
}

// keyName converte o evento para o nome usado nas configs.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrowup"
	case tcell.KeyDown:
		return "arrowdown"
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "escape"
	case tcell.KeyRune:
		return strings.ToLower(string(ev.Rune()))
	}
	return ""
}

func main() {
	var (
		cfg     = configs.New()
		seed    = flag.Uint64("seed", 0, "random seed, 0 uses the clock")
		debug   = flag.Bool("debug", false, "log debug messages")
		logPath = flag.String("log", "", "write logs to this file")
	)
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	// O stderr é o próprio terminal do jogo.
	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))

	if err := cfg.Validate(); err != nil {
		slog.Error("error to load config", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		slog.Error("error to create screen", "error", err)
		os.Exit(1)
	}
	if err := scr.Init(); err != nil {
		slog.Error("error to init screen", "error", err)
		os.Exit(1)
	}
	defer scr.Fini()
	scr.EnableMouse()
	scr.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t := newTerminal(scr, cfg, game.WithRand(rand.New(rand.NewPCG(*seed, *seed>>1))))
	slog.Info("starting game", "seed", *seed, "winning_score", cfg.WinningScore)
	t.run(ctx, cfg.TPS)
}
