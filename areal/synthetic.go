package areal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Panel is an N x T spatio-temporal expansion of a Dataset.
type Panel struct {
	// N is the number of areas, T the number of time steps.
	N, T int
	// Y[i][t] is the observed count for area i at time step t.
	Y [][]int
	// X[i][t] is the covariate, LogE[i][t] the log expected count.
	X    [][]float64
	LogE [][]float64
	// TDiff[t] is the centered time index shared by all areas.
	TDiff []float64
	// Graph is the neighborhood graph of the underlying dataset.
	Graph *Graph
}

// SyntheticPanelConfig controls the synthetic spatio-temporal generator.
type SyntheticPanelConfig struct {
	// T is the number of time steps.
	T int
	// Growth holds the T multiplicative growth factors. If nil,
	// equally spaced factors 1, 1+GrowthStep, ... are used.
	Growth []float64
	// GrowthStep is the per-step growth increment used when Growth is nil.
	GrowthStep float64
	// SlopeSD is the standard deviation of the per-area temporal
	// growth perturbation (mean 1).
	SlopeSD float64
	// XNoiseSD and ENoiseSD are the noise levels on the covariate and
	// the expected count.
	XNoiseSD, ENoiseSD float64
	// Seed seeds the generator.
	Seed uint64
}

// DefaultSyntheticPanelConfig returns the reference generator settings:
// five time steps with 5% growth per step.
func DefaultSyntheticPanelConfig() SyntheticPanelConfig {
	return SyntheticPanelConfig{
		T:          5,
		GrowthStep: 0.05,
		SlopeSD:    0.1,
		XNoiseSD:   0.1,
		ENoiseSD:   0.5,
		Seed:       1,
	}
}

// NewSyntheticPanel expands the dataset along a synthetic time axis. For
// every area one temporal-growth perturbation is drawn (normal, mean 1);
// counts are re-drawn from a Poisson with the grown rate, covariates and
// offsets are re-drawn with noise around their grown base values. The
// exact noise distributions are a reference default, not a contract.
func NewSyntheticPanel(d *Dataset, cfg SyntheticPanelConfig) (*Panel, error) {
	if cfg.T < 2 {
		return nil, fmt.Errorf("need at least 2 time steps, got %d", cfg.T)
	}
	growth := cfg.Growth
	if growth == nil {
		growth = make([]float64, cfg.T)
		for t := range growth {
			growth[t] = 1 + float64(t)*cfg.GrowthStep
		}
	}
	if len(growth) != cfg.T {
		return nil, fmt.Errorf("got %d growth factors for %d time steps", len(growth), cfg.T)
	}

	src := rand.NewPCG(cfg.Seed, cfg.Seed+1)
	slope := distuv.Normal{Mu: 1, Sigma: cfg.SlopeSD, Src: src}

	n := d.N()
	p := &Panel{
		N:     n,
		T:     cfg.T,
		Y:     make([][]int, n),
		X:     make([][]float64, n),
		LogE:  make([][]float64, n),
		TDiff: make([]float64, cfg.T),
		Graph: d.Graph,
	}
	// centered integer range of width T; for T=5 this is -3..1
	for t := 0; t < cfg.T; t++ {
		p.TDiff[t] = float64(t - cfg.T + 2)
	}

	for i, a := range d.Areas {
		g := slope.Rand()
		p.Y[i] = make([]int, cfg.T)
		p.X[i] = make([]float64, cfg.T)
		p.LogE[i] = make([]float64, cfg.T)
		for t := 0; t < cfg.T; t++ {
			rate := float64(a.Y) * growth[t] * g
			if rate < 1e-6 {
				rate = 1e-6
			}
			p.Y[i][t] = int(distuv.Poisson{Lambda: rate, Src: src}.Rand())

			p.X[i][t] = a.X * growth[t]
			if cfg.XNoiseSD > 0 {
				p.X[i][t] = distuv.Normal{Mu: p.X[i][t], Sigma: cfg.XNoiseSD, Src: src}.Rand()
			}

			e := a.E * growth[t]
			if cfg.ENoiseSD > 0 {
				e = distuv.Normal{Mu: e, Sigma: cfg.ENoiseSD, Src: src}.Rand()
			}
			// the offset enters in log space; keep it positive
			if e < 1e-6 {
				e = 1e-6
			}
			p.LogE[i][t] = math.Log(e)
		}
	}
	log.Infof("Synthetic panel: %d areas x %d time steps", p.N, p.T)
	return p, nil
}
