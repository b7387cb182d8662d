package smodel

import (
	"math"
	"testing"

	"github.com/spatialepi/diseasemap/spatial"
)

func TestLerouxStructure(tst *testing.T) {
	m := NewLeroux(triangle(tst))
	pars := m.GetFloatParameters()
	// beta0, beta1, tau_phi, rho, phi x3
	if len(pars) != 7 {
		tst.Fatalf("Expected 7 parameters, got %d", len(pars))
	}
	names := pars.Names(nil)
	if names[0] != "beta0" || names[1] != "beta1" || names[2] != "tau_phi" || names[3] != "rho" {
		tst.Errorf("Unexpected parameter order: %v", names)
	}
	if names[4] != "phi0" || names[6] != "phi2" {
		tst.Errorf("Unexpected vector parameter names: %v", names)
	}
}

func TestLerouxInterpolation(tst *testing.T) {
	m := NewLeroux(triangle(tst))
	m.phi = []float64{0.5, -0.2, 0.1}
	m.setupParameters()
	g := m.g

	// rho only enters through the Leroux potential, so the posterior
	// difference between two rho values is the potential difference
	m.rho = 1
	l1 := m.Likelihood()
	m.rho = 0
	l0 := m.Likelihood()

	want := spatial.Leroux(1, m.phi, g.Node1, g.Node2) -
		spatial.Leroux(0, m.phi, g.Node1, g.Node2)
	if math.Abs((l1-l0)-want) > 1e-9 {
		tst.Errorf("Posterior difference %v, want potential difference %v", l1-l0, want)
	}

	// at rho=1 the potential is the pure ICAR term
	if math.Abs(spatial.Leroux(1, m.phi, g.Node1, g.Node2)-
		spatial.ICAR(m.phi, g.Node1, g.Node2)) > 1e-12 {
		tst.Error("Leroux at rho=1 should be the pure ICAR potential")
	}
}

func TestLerouxRhoBounds(tst *testing.T) {
	m := NewLeroux(triangle(tst))
	var rho interface {
		GetMin() float64
		GetMax() float64
	}
	for _, par := range m.GetFloatParameters() {
		if par.Name() == "rho" {
			rho = par
		}
	}
	if rho == nil {
		tst.Fatal("No rho parameter declared")
	}
	if rho.GetMin() != 0 || rho.GetMax() != 1 {
		tst.Errorf("rho bounds [%v, %v], want [0, 1]", rho.GetMin(), rho.GetMax())
	}
}

func TestLerouxCopy(tst *testing.T) {
	m := NewLeroux(triangle(tst))
	m.rho = 0.8
	m.phi[1] = 0.3
	c := m.Copy().(*Leroux)
	if c.rho != 0.8 || c.phi[1] != 0.3 {
		tst.Error("Copy should preserve parameter values")
	}
	c.phi[1] = -5
	if m.phi[1] != 0.3 {
		tst.Error("Copy vectors should be independent")
	}
}
