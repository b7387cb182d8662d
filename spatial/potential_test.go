package spatial

import (
	"math"
	"testing"
)

const tol = 1e-12

var (
	// two mutually adjacent areas
	node1 = []int{0, 1}
	node2 = []int{1, 0}
)

func TestPairwiseDiffValue(tst *testing.T) {
	phi := []float64{1, 3}
	// directed edges double the pair: -0.5 * 2 * (1-3)^2 = -4
	got := PairwiseDiff(1, phi, node1, node2)
	if math.Abs(got+4) > tol {
		tst.Errorf("PairwiseDiff(1)=%v, want -4", got)
	}
	got = PairwiseDiff(0.5, phi, node1, node2)
	if math.Abs(got+2) > tol {
		tst.Errorf("PairwiseDiff(0.5)=%v, want -2", got)
	}
}

func TestPairwiseDiffVanishesAtZero(tst *testing.T) {
	phi := []float64{0.3, -1.2, 5}
	n1 := []int{0, 1, 1, 2}
	n2 := []int{1, 0, 2, 1}
	if got := PairwiseDiff(0, phi, n1, n2); got != 0 {
		tst.Errorf("PairwiseDiff(rho=0)=%v, want 0", got)
	}
}

func TestRidgeVanishesAtOne(tst *testing.T) {
	phi := []float64{0.3, -1.2, 5}
	if got := Ridge(1, phi); got != 0 {
		tst.Errorf("Ridge(rho=1)=%v, want 0", got)
	}
	if got := Leroux(1, phi[:2], node1, node2); got != PairwiseDiff(1, phi[:2], node1, node2) {
		tst.Error("Leroux at rho=1 should equal the pure pairwise term")
	}
}

func TestLerouxEndpoints(tst *testing.T) {
	phi := []float64{1, -1}
	// rho=0: pure ridge, -0.5*(1+1) = -1
	got := Leroux(0, phi, node1, node2)
	if math.Abs(got+1) > tol {
		tst.Errorf("Leroux(rho=0)=%v, want -1", got)
	}
	// rho=0.5: both terms present
	want := PairwiseDiff(0.5, phi, node1, node2) + Ridge(0.5, phi)
	if got := Leroux(0.5, phi, node1, node2); math.Abs(got-want) > tol {
		tst.Errorf("Leroux(rho=0.5)=%v, want %v", got, want)
	}
}

func TestSumZeroMonotone(tst *testing.T) {
	prev := math.Inf(+1)
	for _, s := range []float64{0, 0.01, 0.1, 1, 10} {
		phi := []float64{s / 2, s / 2}
		got := SumZero(phi, DefaultSumZeroVariance)
		if got >= prev {
			tst.Errorf("SumZero not strictly decreasing in |sum| at sum=%v", s)
		}
		prev = got
	}
}

func TestSumZeroSymmetric(tst *testing.T) {
	a := SumZero([]float64{2, -1}, 0.001)
	b := SumZero([]float64{-2, 1}, 0.001)
	if math.Abs(a-b) > tol {
		tst.Error("SumZero should depend on |sum| only")
	}
}

func TestSumZeroUsesSumNotEntries(tst *testing.T) {
	// entries differ wildly but sums agree
	a := SumZero([]float64{100, -100}, 0.001)
	b := SumZero([]float64{0, 0}, 0.001)
	if math.Abs(a-b) > tol {
		tst.Error("SumZero must be evaluated at the sum of the vector")
	}
}

func TestPairwiseDiffPanics(tst *testing.T) {
	defer func() {
		if recover() == nil {
			tst.Error("Expected panic for mismatched edge lists")
		}
	}()
	PairwiseDiff(1, []float64{0, 0}, []int{0}, []int{1, 0})
}
