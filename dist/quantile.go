package dist

import (
	"math"

	"github.com/gonum/mathext"
)

// QuantileNormal returns the quantile of the standard normal distribution.
func QuantileNormal(prob float64) float64 {
	return mathext.NormalQuantile(prob)
}

// CDFGamma returns the distribution function of the gamma distribution
// with the given shape and rate.
func CDFGamma(x, shape, rate float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathext.GammaInc(shape, x*rate)
}

// QuantileGamma returns z so that Prob{x<z}=prob where x is gamma
// distributed with the given shape and rate. The quantile is located by
// bisection on the regularized incomplete gamma function.
func QuantileGamma(prob, shape, rate float64) float64 {
	if shape <= 0 || rate <= 0 {
		panic("shape and rate of gamma distribution must be > 0")
	}
	if prob <= 0 {
		return 0
	}
	if prob >= 1 {
		return math.Inf(+1)
	}
	// bracket the quantile around the mean
	lo, hi := 0.0, shape/rate
	for CDFGamma(hi, shape, rate) < prob {
		hi *= 2
	}
	for i := 0; i < 200 && hi-lo > 1e-12*(1+hi); i++ {
		mid := (lo + hi) / 2
		if CDFGamma(mid, shape, rate) < prob {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// CDFBeta returns the distribution function of the standard form of the
// beta distribution, the incomplete beta ratio I_x(p,q).
func CDFBeta(x, p, q float64) float64 {
	return mathext.RegIncBeta(p, q, x)
}

// QuantileBeta returns the quantile of the beta distribution.
func QuantileBeta(prob, p, q float64) float64 {
	return mathext.InvRegIncBeta(p, q, prob)
}
