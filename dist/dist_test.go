package dist

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestNormalLogProb(tst *testing.T) {
	// standard normal at zero: -0.5*log(2*pi)
	got := NormalLogProb(0, 1, 0)
	want := -0.5 * math.Log(2*math.Pi)
	if math.Abs(got-want) > tol {
		tst.Errorf("NormalLogProb(0,1,0)=%v, want %v", got, want)
	}
	// shift and scale
	got = NormalLogProb(1, 2, 3)
	want = -0.5 - math.Log(2) - 0.5*math.Log(2*math.Pi)
	if math.Abs(got-want) > tol {
		tst.Errorf("NormalLogProb(1,2,3)=%v, want %v", got, want)
	}
}

func TestGammaLogProb(tst *testing.T) {
	// Gamma(1, rate) is exponential: log(rate) - rate*x
	got := GammaLogProb(1, 2, 0.5)
	want := math.Log(2) - 1
	if math.Abs(got-want) > tol {
		tst.Errorf("GammaLogProb(1,2,0.5)=%v, want %v", got, want)
	}
	if !math.IsInf(GammaLogProb(2, 2, -1), -1) {
		tst.Error("gamma density outside support should be -Inf")
	}
	if !math.IsInf(GammaLogProb(2, 2, 0), -1) {
		tst.Error("gamma density at zero should be -Inf")
	}
}

func TestBetaLogProb(tst *testing.T) {
	// Beta(1,1) is uniform on [0,1]
	if math.Abs(BetaLogProb(1, 1, 0.3)) > tol {
		tst.Error("Beta(1,1) log-density should be 0 on [0,1]")
	}
	// Beta(2,2): density 6x(1-x), at 0.5: log(1.5)
	got := BetaLogProb(2, 2, 0.5)
	want := math.Log(1.5)
	if math.Abs(got-want) > tol {
		tst.Errorf("BetaLogProb(2,2,0.5)=%v, want %v", got, want)
	}
	if !math.IsInf(BetaLogProb(2, 2, 1.5), -1) {
		tst.Error("beta density outside [0,1] should be -Inf")
	}
}

func TestBetaLogProbBoundaries(tst *testing.T) {
	// Beta(1,1) is uniform including the boundaries, never NaN
	for _, x := range []float64{0, 1} {
		if got := BetaLogProb(1, 1, x); got != 0 {
			tst.Errorf("BetaLogProb(1,1,%v)=%v, want 0", x, got)
		}
	}
	// for parameters > 1 the density vanishes at the boundaries
	if !math.IsInf(BetaLogProb(2, 2, 0), -1) {
		tst.Errorf("BetaLogProb(2,2,0)=%v, want -Inf", BetaLogProb(2, 2, 0))
	}
	if !math.IsInf(BetaLogProb(2, 2, 1), -1) {
		tst.Errorf("BetaLogProb(2,2,1)=%v, want -Inf", BetaLogProb(2, 2, 1))
	}
}

func TestPoissonLogProb(tst *testing.T) {
	// P(k=0) = exp(-rate)
	got := PoissonLogProb(3, 0)
	if math.Abs(got+3) > tol {
		tst.Errorf("PoissonLogProb(3,0)=%v, want -3", got)
	}
	// P(k=2) with rate 1: exp(-1)/2
	got = PoissonLogProb(1, 2)
	want := -1 - math.Log(2)
	if math.Abs(got-want) > tol {
		tst.Errorf("PoissonLogProb(1,2)=%v, want %v", got, want)
	}
	if !math.IsInf(PoissonLogProb(1, -1), -1) {
		tst.Error("negative count should have -Inf log-probability")
	}
	if !math.IsInf(PoissonLogProb(math.Inf(1), 1), -1) {
		tst.Error("infinite rate should have -Inf log-probability")
	}
}

func TestQuantileNormal(tst *testing.T) {
	if math.Abs(QuantileNormal(0.5)) > tol {
		tst.Error("median of standard normal should be 0")
	}
	q := QuantileNormal(0.975)
	if math.Abs(q-1.959964) > 1e-5 {
		tst.Errorf("QuantileNormal(0.975)=%v, want 1.959964", q)
	}
}

func TestQuantileGamma(tst *testing.T) {
	// exponential with rate 1: quantile is -log(1-p)
	for _, p := range []float64{0.1, 0.5, 0.9} {
		got := QuantileGamma(p, 1, 1)
		want := -math.Log(1 - p)
		if math.Abs(got-want) > 1e-8 {
			tst.Errorf("QuantileGamma(%v,1,1)=%v, want %v", p, got, want)
		}
	}
	// round trip through the CDF
	q := QuantileGamma(0.7, 2.5, 1.5)
	if math.Abs(CDFGamma(q, 2.5, 1.5)-0.7) > 1e-8 {
		tst.Error("gamma quantile does not invert the CDF")
	}
}

func TestQuantileBeta(tst *testing.T) {
	// Beta(1,1): identity
	if math.Abs(QuantileBeta(0.3, 1, 1)-0.3) > 1e-8 {
		tst.Error("Beta(1,1) quantile should be identity")
	}
	q := QuantileBeta(0.25, 2, 3)
	if math.Abs(CDFBeta(q, 2, 3)-0.25) > 1e-8 {
		tst.Error("beta quantile does not invert the CDF")
	}
}
