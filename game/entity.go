package game

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Raquete. X fica fixo contra a borda, Y é a borda de cima.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

func (p Paddle) CenterY() float64 { return p.Y + p.Height/2 }

func (p *Paddle) clampY(surfaceHeight float64) {
	p.Y = Clamp(p.Y, 0, surfaceHeight-p.Height)
}

// Bola. Speed é a velocidade base do saque, VX/VY a velocidade atual.
type Ball struct {
	X, Y   float64
	Radius float64
	Speed  float64
	VX, VY float64
}

// hits testa a caixa da bola contra o retângulo da raquete.
func (b Ball) hits(p Paddle) bool {
	return b.X-b.Radius < p.X+p.Width &&
		b.X+b.Radius > p.X &&
		b.Y+b.Radius > p.Y &&
		b.Y-b.Radius < p.Y+p.Height
}

type Score struct {
	Left  int
	Right int
}

func (s Score) Of(side Side) int {
	if side == Left {
		return s.Left
	}
	return s.Right
}

// ScoreSink recebe o placar de um lado sempre que ele muda.
type ScoreSink interface {
	ShowScore(side Side, value int)
}

type ScoreSinkFunc func(side Side, value int)

func (f ScoreSinkFunc) ShowScore(side Side, value int) { f(side, value) }
