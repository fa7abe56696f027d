package configs

import "flag"

// RegisterFlags liga os campos ajustáveis pela linha de comando.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.WinningScore, "score", c.WinningScore, "points needed to win a game")
	fs.Float64Var(&c.ReactionFactor, "reaction", c.ReactionFactor, "cpu paddle reaction factor (0, 1]")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
}
