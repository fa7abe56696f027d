package game

import "math/rand/v2"

// Clamp limita value ao intervalo [min, max]. Assume min <= max.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RandRange sorteia um valor em [min, max).
func RandRange(r *rand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}
