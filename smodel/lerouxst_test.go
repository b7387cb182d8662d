package smodel

import (
	"math"
	"testing"

	"github.com/spatialepi/diseasemap/areal"
)

func testPanel(tst testing.TB) *areal.Panel {
	d := triangle(tst)
	cfg := areal.DefaultSyntheticPanelConfig()
	cfg.Seed = 42
	p, err := areal.NewSyntheticPanel(d, cfg)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	return p
}

func TestLerouxSTStructure(tst *testing.T) {
	p := testPanel(tst)
	m := NewLerouxST(p)
	pars := m.GetFloatParameters()
	// beta0, beta1, alpha, tau/rho x2, phi x3, delta x3
	if len(pars) != 13 {
		tst.Fatalf("Expected 13 parameters, got %d", len(pars))
	}
	s := m.Summary().(modelSummary)
	if s.NAreas != 3 || s.NTimeSteps != 5 {
		tst.Errorf("Expected a 3x5 likelihood, got %dx%d", s.NAreas, s.NTimeSteps)
	}
}

func TestLerouxSTLikelihoodFinite(tst *testing.T) {
	m := NewLerouxST(testPanel(tst))
	l := m.Likelihood()
	if math.IsNaN(l) || math.IsInf(l, 0) {
		tst.Errorf("Log-posterior at defaults should be finite, got %v", l)
	}
}

func TestLerouxSTSlope(tst *testing.T) {
	p := testPanel(tst)
	m := NewLerouxST(p)
	l0 := m.Likelihood()
	// the overall time slope enters through tdiff only
	m.alpha = 0.05
	l1 := m.Likelihood()
	if l0 == l1 {
		tst.Error("Changing alpha should change the log-posterior")
	}
}

func TestLerouxSTCopy(tst *testing.T) {
	m := NewLerouxST(testPanel(tst))
	m.delta[2] = 0.4
	c := m.Copy().(*LerouxST)
	if c.delta[2] != 0.4 {
		tst.Error("Copy should preserve parameter values")
	}
	if math.Abs(m.Likelihood()-c.Likelihood()) > 1e-9 {
		tst.Error("Copy should have the same log-posterior")
	}
}
