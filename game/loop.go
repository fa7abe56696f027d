package game

import (
	"slices"
	"strings"
)

// Loop dirige a simulação a cada tick do host e pode ser parado explicitamente.
type Loop struct {
	state   *State
	stopped bool
	onStop  []func()
}

func NewLoop(s *State) *Loop {
	return &Loop{state: s}
}

func (l *Loop) State() *State { return l.state }

// Tick roda um frame. Devolve false depois de Stop.
func (l *Loop) Tick() bool {
	if l.stopped {
		return false
	}
	l.state.Step()
	return true
}

// KeyDown trata a tecla de sair e repassa o resto para o estado.
func (l *Loop) KeyDown(key string) {
	if slices.Contains(l.state.cfg.Keys.Quit, strings.ToLower(key)) {
		l.Stop()
		return
	}
	l.state.KeyDown(key)
}

func (l *Loop) KeyUp(key string) { l.state.KeyUp(key) }

// OnStop registra uma função de limpeza chamada uma vez no Stop.
func (l *Loop) OnStop(fn func()) {
	l.onStop = append(l.onStop, fn)
}

func (l *Loop) Stop() {
	if l.stopped {
		return
	}
	l.stopped = true
	l.state.log.Info("game loop stopped")
	for _, fn := range l.onStop {
		fn()
	}
}

func (l *Loop) Stopped() bool { return l.stopped }
