package smodel

import (
	"testing"

	"github.com/spatialepi/diseasemap/sample"
)

func TestMHSmoke(tst *testing.T) {
	m := NewLeroux(triangle(tst))
	chain := sample.NewMH(false, 0)
	chain.Quiet = true
	chain.SetSampleable(m)
	chain.SetReportPeriod(1000)
	chain.Run(500)
	if chain.GetMaxL() == 0 {
		tst.Error("Expected a nonzero maximum log-posterior")
	}
	if !m.GetFloatParameters().InRange() {
		tst.Error("Parameters left their bounds during sampling")
	}
}

func TestChainsOnBYM(tst *testing.T) {
	m := NewBYM(triangle(tst))
	chains := sample.NewChains(2)
	chains.BurnIn = 100
	traces := chains.Run(m, 600)
	for i, tr := range traces {
		if tr.Len() != 500 {
			tst.Errorf("Chain %d: expected 500 draws, got %d", i, tr.Len())
		}
		if tr.Draws("beta0") == nil {
			tst.Errorf("Chain %d: missing beta0 draws", i)
		}
	}
}

func BenchmarkMCMCBYM(b *testing.B) {
	m := NewBYM(triangle(b))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m.SetDefaults()
		chain := sample.NewMH(false, 0)
		chain.Quiet = true
		chain.SetSampleable(m)
		chain.SetReportPeriod(1000)
		chain.Run(100)
	}
}
