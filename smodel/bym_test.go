package smodel

import (
	"math"
	"strings"
	"testing"

	"github.com/op/go-logging"

	"github.com/spatialepi/diseasemap/areal"
)

func init() {
	// disable progress logging for tests
	logging.SetLevel(logging.WARNING, "sample")
	logging.SetLevel(logging.ERROR, "smodel")
	logging.SetLevel(logging.ERROR, "areal")
}

// triangle returns three fully connected areas.
func triangle(tst testing.TB) *areal.Dataset {
	g, err := areal.NewGraph([][]int{{1, 2}, {0, 2}, {0, 1}}, 3)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	return &areal.Dataset{
		Areas: []areal.Area{
			{Index: 0, Y: 5, E: 4.0, X: 0.2},
			{Index: 1, Y: 1, E: 2.0, X: -0.5},
			{Index: 2, Y: 9, E: 7.5, X: 1.1},
		},
		Graph: g,
	}
}

func TestBYMStructure(tst *testing.T) {
	m := NewBYM(triangle(tst))
	pars := m.GetFloatParameters()

	// beta0, beta1, 2 precisions, theta x3, phi x3
	if len(pars) != 10 {
		tst.Fatalf("Expected 10 parameters, got %d", len(pars))
	}

	var precisions, phis, thetas int
	for _, par := range pars {
		switch {
		case strings.HasPrefix(par.Name(), "tau_"):
			precisions++
		case strings.HasPrefix(par.Name(), "phi"):
			phis++
		case strings.HasPrefix(par.Name(), "theta"):
			thetas++
		}
	}
	if precisions != 2 {
		tst.Errorf("Expected exactly 2 precision parameters, got %d", precisions)
	}
	if phis != 3 || thetas != 3 {
		tst.Errorf("Expected phi and theta of length 3, got %d and %d", phis, thetas)
	}

	s := m.Summary().(modelSummary)
	if s.NAreas != 3 {
		tst.Errorf("Poisson likelihood should cover 3 areas, got %d", s.NAreas)
	}
}

func TestBYMLikelihoodFinite(tst *testing.T) {
	m := NewBYM(triangle(tst))
	l := m.Likelihood()
	if math.IsNaN(l) || math.IsInf(l, 0) {
		tst.Errorf("Log-posterior at defaults should be finite, got %v", l)
	}
}

func TestBYMSmoothingPenalty(tst *testing.T) {
	m := NewBYM(triangle(tst))
	l0 := m.Likelihood()
	// a rough spatial field is penalized by the ICAR potential
	m.phi[0] = 10
	m.phi[1] = -10
	if m.Likelihood() >= l0 {
		tst.Error("Rough phi should lower the log-posterior")
	}
}

func TestBYMCopy(tst *testing.T) {
	m := NewBYM(triangle(tst))
	m.beta0 = 0.7
	c := m.Copy().(*BYM)
	if c.beta0 != 0.7 {
		tst.Error("Copy should preserve parameter values")
	}
	c.GetFloatParameters()[0].Set(-1)
	if m.beta0 != 0.7 {
		tst.Error("Copy parameters should be independent")
	}
	if math.Abs(m.Likelihood()-m.Copy().Likelihood()) > 1e-9 {
		tst.Error("Copy should have the same log-posterior")
	}
}

func TestBYMOverflowRejected(tst *testing.T) {
	m := NewBYM(triangle(tst))
	m.beta0 = 1e4
	if !math.IsInf(m.Likelihood(), -1) {
		tst.Error("Overflowing Poisson rate should yield -Inf")
	}
}

func TestBYMSumZeroVariance(tst *testing.T) {
	m := NewBYM(triangle(tst))
	m.phi = []float64{1, 1, 1}
	// re-register so the parameters track the new slice
	m.setupParameters()
	l1 := m.Likelihood()
	m.SetSumZeroVariance(0.1)
	l2 := m.Likelihood()
	// a looser constraint penalizes the nonzero sum less
	if l2 <= l1 {
		tst.Error("Larger sum-to-zero variance should penalize less")
	}
}
