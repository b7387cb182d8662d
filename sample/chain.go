package sample

import (
	"fmt"
	"io"
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/spatialepi/diseasemap/dist"
)

// Trace stores ordered posterior draws for a set of named parameters.
type Trace struct {
	names []string
	draws [][]float64
}

// NewTrace creates an empty trace for the given parameter names.
func NewTrace(names []string) *Trace {
	return &Trace{names: names}
}

// Record appends the current parameter values as one draw.
func (t *Trace) Record(p FloatParameters) {
	if len(p) != len(t.names) {
		panic("incorrect number of parameters")
	}
	t.draws = append(t.draws, p.Values(nil))
}

// Len returns the number of draws.
func (t *Trace) Len() int {
	return len(t.draws)
}

// Names returns the parameter names.
func (t *Trace) Names() []string {
	return t.names
}

// Draws returns the ordered sequence of draws for a named parameter.
func (t *Trace) Draws(name string) []float64 {
	for i, n := range t.names {
		if n == name {
			res := make([]float64, len(t.draws))
			for k, draw := range t.draws {
				res[k] = draw[i]
			}
			return res
		}
	}
	return nil
}

// WriteTSV writes the trace as a tab-separated table with a header.
func (t *Trace) WriteTSV(w io.Writer) error {
	for i, n := range t.names {
		if i > 0 {
			if _, err := fmt.Fprint(w, "\t"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, n); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, draw := range t.draws {
		for i, v := range draw {
			if i > 0 {
				if _, err := fmt.Fprint(w, "\t"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%g", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// VariableSummary is the posterior summary of one parameter.
type VariableSummary struct {
	Name string `json:"name"`
	// Mean and SD are the posterior mean and standard deviation.
	Mean float64 `json:"mean"`
	SD   float64 `json:"sd"`
	// MCSE is the naive Monte-Carlo standard error of the mean.
	MCSE float64 `json:"mcse"`
	// MeanLower and MeanUpper are the normal-approximation bounds of
	// the posterior mean estimate, Mean -/+ z*MCSE.
	MeanLower float64 `json:"meanLower"`
	MeanUpper float64 `json:"meanUpper"`
	// Lower, Median and Upper are the central credible interval
	// bounds and the posterior median.
	Lower  float64 `json:"lower"`
	Median float64 `json:"median"`
	Upper  float64 `json:"upper"`
}

// Summarize computes per-parameter posterior summaries with a central
// credible interval of the given level (e.g. 0.95).
func (t *Trace) Summarize(level float64) []VariableSummary {
	if level <= 0 || level >= 1 {
		panic("credible level must be in (0, 1)")
	}
	z := dist.QuantileNormal((1 + level) / 2)
	res := make([]VariableSummary, len(t.names))
	for i, name := range t.names {
		x := t.Draws(name)
		mean, sd := stat.MeanStdDev(x, nil)
		mcse := sd / math.Sqrt(float64(len(x)))
		sort.Float64s(x)
		res[i] = VariableSummary{
			Name:      name,
			Mean:      mean,
			SD:        sd,
			MCSE:      mcse,
			MeanLower: mean - z*mcse,
			MeanUpper: mean + z*mcse,
			Lower:     stat.Quantile((1-level)/2, stat.Empirical, x, nil),
			Median:    stat.Quantile(0.5, stat.Empirical, x, nil),
			Upper:     stat.Quantile((1+level)/2, stat.Empirical, x, nil),
		}
	}
	return res
}

// PooledTrace merges draws from several chains of the same model.
func PooledTrace(traces []*Trace) *Trace {
	if len(traces) == 0 {
		return nil
	}
	pooled := NewTrace(traces[0].names)
	for _, t := range traces {
		if len(t.names) != len(pooled.names) {
			panic("traces have different parameters")
		}
		pooled.draws = append(pooled.draws, t.draws...)
	}
	return pooled
}

// Chains runs several independent Metropolis-Hastings chains over copies
// of a model and collects one trace per chain. The concurrency is owned
// entirely by the engine; models only need a working Copy.
type Chains struct {
	// N is the number of chains.
	N int
	// BurnIn and Thin control trace recording per chain.
	BurnIn int
	Thin   int
	// AccPeriod is the acceptance-rate reporting period.
	AccPeriod int
	// ReportPeriod is the trajectory reporting period.
	ReportPeriod int
	// Randomize draws a random starting point for every chain after
	// the first.
	Randomize bool
}

// NewChains creates a multi-chain runner with n chains.
func NewChains(n int) *Chains {
	return &Chains{
		N:            n,
		Thin:         1,
		AccPeriod:    200,
		ReportPeriod: 10,
	}
}

// Run samples all chains concurrently and returns their traces in chain
// order.
func (c *Chains) Run(m Sampleable, iterations int) []*Trace {
	if c.N < 1 {
		panic("need at least one chain")
	}
	if c.BurnIn >= iterations {
		panic("burn-in exceeds the number of iterations")
	}
	names := m.GetFloatParameters().Names(nil)
	traces := make([]*Trace, c.N)
	var wg sync.WaitGroup
	for chain := 0; chain < c.N; chain++ {
		model := m.Copy()
		if c.Randomize && chain > 0 {
			model.GetFloatParameters().Randomize()
		}
		traces[chain] = NewTrace(names)

		wg.Add(1)
		go func(chain int, model Sampleable, trace *Trace) {
			defer wg.Done()
			mh := NewMH(false, 0)
			mh.Quiet = chain != 0
			mh.AccPeriod = c.AccPeriod
			mh.BurnIn = c.BurnIn
			mh.Thin = c.Thin
			mh.SetSampleable(model)
			mh.SetReportPeriod(c.ReportPeriod)
			mh.SetTrace(trace)
			mh.Run(iterations)
			log.Infof("Chain %d: %d draws, max lnL=%f", chain, trace.Len(), mh.GetMaxL())
		}(chain, model, traces[chain])
	}
	wg.Wait()
	return traces
}
