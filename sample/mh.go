package sample

import (
	"math"
	"math/rand"
)

// MH is a component-wise random-scan Metropolis-Hastings sampler.
type MH struct {
	BaseSampler
	// AccPeriod is the acceptance-rate reporting period.
	AccPeriod int
	// BurnIn is the number of iterations discarded before draws are
	// recorded into the trace.
	BurnIn int
	// Thin records every Thin-th post-burn-in iteration.
	Thin int

	annealing bool
	// iterations to skip before annealing
	annealingSkip int

	trace *Trace
}

// NewMH creates a new Metropolis-Hastings sampler. With annealing
// enabled the posterior is tempered instead of sampled.
func NewMH(annealing bool, annealingSkip int) *MH {
	return &MH{
		AccPeriod:     200,
		Thin:          1,
		annealing:     annealing,
		annealingSkip: annealingSkip,
	}
}

// SetTrace attaches a trace collecting posterior draws.
func (m *MH) SetTrace(t *Trace) {
	m.trace = t
}

// Run starts sampling.
func (m *MH) Run(iterations int) {
	if m.AccPeriod <= 0 {
		m.AccPeriod = 200
	}
	if m.Thin <= 0 {
		m.Thin = 1
	}
	m.startRun()
	defer m.finishRun()

	l := m.Likelihood()
	m.calls++
	m.updateMax(l)
	m.PrintHeader()

	accepted := 0
Iter:
	for m.i = 0; m.i < iterations; m.i++ {
		var T float64
		if m.annealing && m.i >= m.annealingSkip {
			T = math.Pow(0.9, float64(m.i-m.annealingSkip)/float64(iterations-m.annealingSkip)*100)
		} else {
			T = 1
		}

		if m.i > 0 && m.i%m.AccPeriod == 0 {
			log.Infof("Acceptance rate %.2f%%", 100*float64(accepted)/float64(m.AccPeriod))
			accepted = 0
		}

		if m.i%m.repPeriod == 0 {
			log.Debugf("%d: L=%f", m.i, l)
			m.PrintLine(l)
		}

		p := rand.Intn(len(m.parameters))
		par := m.parameters[p]
		par.Propose()
		newL := m.Likelihood()
		m.calls++

		var a float64
		if m.annealing {
			a = math.Exp((newL - l) / T)
		} else {
			a = math.Exp(par.Prior() - par.OldPrior() + newL - l)
		}

		if a > 1 || rand.Float64() < a {
			l = newL
			par.Accept(m.i)
			accepted++
			m.updateMax(l)
		} else {
			par.Reject()
		}

		if !m.annealing && m.trace != nil && m.i >= m.BurnIn && (m.i-m.BurnIn)%m.Thin == 0 {
			m.trace.Record(m.parameters)
		}

		m.SaveCheckpoint(l, false)

		if m.interrupted() {
			break Iter
		}
	}

	m.PrintLine(l)
	m.SaveCheckpoint(l, true)
}
