// Package dist implements log-densities and quantile functions used by the
// priors, the likelihoods and the posterior summaries.
package dist

import (
	"math"
)

// NormalLogProb returns the log-density of the normal distribution with
// mean mu and standard deviation sd at x.
func NormalLogProb(mu, sd, x float64) float64 {
	if sd <= 0 {
		panic("sd of normal distribution must be > 0")
	}
	z := (x - mu) / sd
	return -0.5*z*z - math.Log(sd) - 0.5*math.Log(2*math.Pi)
}

// GammaLogProb returns the log-density of the gamma distribution with the
// given shape and rate at x. -Inf is returned outside of the support.
func GammaLogProb(shape, rate, x float64) float64 {
	if shape <= 0 || rate <= 0 {
		panic("shape and rate of gamma distribution must be > 0")
	}
	if x <= 0 {
		return math.Inf(-1)
	}
	g, _ := math.Lgamma(shape)
	return shape*math.Log(rate) + (shape-1)*math.Log(x) - rate*x - g
}

// BetaLogProb returns the log-density of the beta distribution with
// parameters a and b at x. -Inf is returned outside of [0, 1]. Terms with
// a zero coefficient are skipped so that the boundaries of the support do
// not produce 0*(-Inf) under a unit parameter.
func BetaLogProb(a, b, x float64) float64 {
	if a <= 0 || b <= 0 {
		panic("parameters of beta distribution must be > 0")
	}
	if x < 0 || x > 1 {
		return math.Inf(-1)
	}
	l := -LnBeta(a, b)
	if a != 1 {
		l += (a - 1) * math.Log(x)
	}
	if b != 1 {
		l += (b - 1) * math.Log(1-x)
	}
	return l
}

// PoissonLogProb returns the log-probability of observing k events under a
// Poisson distribution with the given rate. -Inf is returned for negative
// counts and for non-positive or non-finite rates.
func PoissonLogProb(rate float64, k int) float64 {
	if k < 0 || rate <= 0 || math.IsInf(rate, 1) || math.IsNaN(rate) {
		return math.Inf(-1)
	}
	g, _ := math.Lgamma(float64(k) + 1)
	return float64(k)*math.Log(rate) - rate - g
}

// LnBeta returns log of the Beta function.
func LnBeta(p, q float64) float64 {
	lgp, _ := math.Lgamma(p)
	lgq, _ := math.Lgamma(q)
	lgpq, _ := math.Lgamma(p + q)
	return lgp + lgq - lgpq
}
