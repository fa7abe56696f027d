package configs

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

// Constantes do jogo, compartilhadas pelos dois front-ends.
type Config struct {
	Title string

	// Canvas inicial, antes do primeiro resize.
	CanvasWidth  float64
	CanvasHeight float64
	AspectRatio  float64
	MinWidth     float64
	MaxWidth     float64

	WinningScore   int
	ReactionFactor float64
	SpeedUp        float64
	Spin           float64
	MaxVY          float64
	ServeVY        float64
	ServeFallback  float64

	TPS int

	Keys KeyBindings
}

// Nomes de tecla em minúsculo, como chegam do front-end.
type KeyBindings struct {
	Up     []string
	Down   []string
	Toggle []string
	Reset  []string
	Quit   []string
}

func New() Config {
	return Config{
		Title: "Ping Pong",

		CanvasWidth:  900,
		CanvasHeight: 500,
		AspectRatio:  9.0 / 5.0,
		MinWidth:     320,
		MaxWidth:     900,

		WinningScore:   7,
		ReactionFactor: 0.1,
		SpeedUp:        1.03,
		Spin:           2.1,
		MaxVY:          8,
		ServeVY:        2,
		ServeFallback:  1.5,

		TPS: 60,

		Keys: KeyBindings{
			Up:     []string{"arrowup", "w"},
			Down:   []string{"arrowdown", "s"},
			Toggle: []string{" ", "space"},
			Reset:  []string{"r"},
			Quit:   []string{"escape"},
		},
	}
}

func (c Config) Validate() error {
	switch {
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return fmt.Errorf("canvas %gx%g: %w", c.CanvasWidth, c.CanvasHeight, ErrInvalidConfig)
	case c.AspectRatio <= 0:
		return fmt.Errorf("aspect ratio %g: %w", c.AspectRatio, ErrInvalidConfig)
	case c.MinWidth <= 0 || c.MinWidth > c.MaxWidth:
		return fmt.Errorf("width bounds [%g, %g]: %w", c.MinWidth, c.MaxWidth, ErrInvalidConfig)
	case c.WinningScore < 1:
		return fmt.Errorf("winning score %d: %w", c.WinningScore, ErrInvalidConfig)
	case c.ReactionFactor <= 0 || c.ReactionFactor > 1:
		return fmt.Errorf("reaction factor %g: %w", c.ReactionFactor, ErrInvalidConfig)
	case c.SpeedUp < 1:
		return fmt.Errorf("speed up %g: %w", c.SpeedUp, ErrInvalidConfig)
	case c.MaxVY <= 0:
		return fmt.Errorf("max vy %g: %w", c.MaxVY, ErrInvalidConfig)
	case c.ServeVY < 0 || c.ServeFallback == 0:
		return fmt.Errorf("serve vy %g fallback %g: %w", c.ServeVY, c.ServeFallback, ErrInvalidConfig)
	case c.TPS <= 0:
		return fmt.Errorf("tps %d: %w", c.TPS, ErrInvalidConfig)
	}
	return nil
}
