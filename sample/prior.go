package sample

import (
	"math"

	"github.com/spatialepi/diseasemap/dist"
)

// UniformPrior returns a uniform prior on [min, max]; incmin and incmax
// control whether the boundaries are part of the support.
func UniformPrior(min, max float64, incmin, incmax bool) func(float64) float64 {
	if max <= min {
		panic("max <= min")
	}
	return func(x float64) float64 {
		if (incmin && x < min) ||
			(!incmin && x <= min) ||
			(incmax && x > max) ||
			(!incmax && x >= max) {
			return math.Inf(-1)
		}
		return -math.Log(max - min)
	}
}

// NormalPrior returns a normal prior with the given mean and standard
// deviation.
func NormalPrior(mean, sd float64) func(float64) float64 {
	if sd <= 0 {
		panic("sd of normal prior must be > 0")
	}
	return func(x float64) float64 {
		return dist.NormalLogProb(mean, sd, x)
	}
}

// GammaPrior returns a gamma prior parameterized by shape and rate.
// Used for precision parameters; support is the positive reals, zero
// included only if inczero is true.
func GammaPrior(shape, rate float64, inczero bool) func(float64) float64 {
	if shape <= 0 || rate <= 0 {
		panic("shape and rate of gamma distribution must be > 0")
	}
	return func(x float64) float64 {
		if x < 0 || (x == 0 && !inczero) {
			return math.Inf(-1)
		}
		return dist.GammaLogProb(shape, rate, x)
	}
}

// BetaPrior returns a beta prior on [0, 1]. Used for spatial-smoothing
// mixing parameters.
func BetaPrior(a, b float64) func(float64) float64 {
	if a <= 0 || b <= 0 {
		panic("parameters of beta distribution must be > 0")
	}
	return func(x float64) float64 {
		return dist.BetaLogProb(a, b, x)
	}
}

// ExponentialPrior returns an exponential prior with the given rate.
func ExponentialPrior(rate float64, inczero bool) func(float64) float64 {
	if rate <= 0 {
		panic("exponential rate should be > 0")
	}
	return func(x float64) float64 {
		if x < 0 || (x == 0 && !inczero) {
			return math.Inf(-1)
		}
		return math.Log(rate) - rate*x
	}
}
