package smodel

import (
	"github.com/spatialepi/diseasemap/areal"
	"github.com/spatialepi/diseasemap/sample"
	"github.com/spatialepi/diseasemap/spatial"
)

// LerouxST is the linear-time spatio-temporal Leroux model over an N x T
// panel: phi smooths the area intercepts and delta the area time-slopes,
// each with its own precision and mixing parameter,
//
//	log mu_it = log E_it + beta0 + beta1*x_it +
//	            sigma_phi*phi_i + (alpha + sigma_delta*delta_i)*tdiff_t .
type LerouxST struct {
	*BaseModel

	p *areal.Panel

	beta0    float64
	beta1    float64
	alpha    float64
	tauPhi   float64
	rhoPhi   float64
	tauDelta float64
	rhoDelta float64
	phi      []float64
	delta    []float64
}

// NewLerouxST creates a spatio-temporal Leroux model for the panel.
func NewLerouxST(p *areal.Panel) *LerouxST {
	m := &LerouxST{
		p:     p,
		phi:   make([]float64, p.N),
		delta: make([]float64, p.N),
	}
	m.BaseModel = NewBaseModel(m)
	m.setupParameters()
	m.SetDefaults()
	return m
}

// Copy returns a deep copy of the model.
func (m *LerouxST) Copy() sample.Sampleable {
	newM := &LerouxST{
		p:        m.p,
		beta0:    m.beta0,
		beta1:    m.beta1,
		alpha:    m.alpha,
		tauPhi:   m.tauPhi,
		rhoPhi:   m.rhoPhi,
		tauDelta: m.tauDelta,
		rhoDelta: m.rhoDelta,
		phi:      append([]float64(nil), m.phi...),
		delta:    append([]float64(nil), m.delta...),
	}
	newM.BaseModel = m.copyBase(newM)
	newM.setupParameters()
	return newM
}

func (m *LerouxST) addParameters(gen sample.FloatParameterGenerator) {
	m.addScalar(gen, &m.beta0, "beta0", sample.NormalPrior(0, 5), 0.05)
	m.addScalar(gen, &m.beta1, "beta1", sample.NormalPrior(0, 5), 0.05)
	m.addScalar(gen, &m.alpha, "alpha", sample.NormalPrior(0, 5), 0.05)
	m.addPrecision(gen, &m.tauPhi, "tau_phi")
	m.addMixing(gen, &m.rhoPhi, "rho_phi")
	m.addPrecision(gen, &m.tauDelta, "tau_delta")
	m.addMixing(gen, &m.rhoDelta, "rho_delta")
	m.addVector(gen, m.phi, "phi", 0.1)
	m.addVector(gen, m.delta, "delta", 0.1)
}

// SetDefaults resets the parameters to their default values.
func (m *LerouxST) SetDefaults() {
	m.beta0 = 0
	m.beta1 = 0
	m.alpha = 0
	m.tauPhi = 1
	m.rhoPhi = 0.5
	m.tauDelta = 1
	m.rhoDelta = 0.5
	for i := range m.phi {
		m.phi[i] = 0
		m.delta[i] = 0
	}
}

// Likelihood computes the joint unnormalized log-posterior: a Leroux
// potential and a sum-to-zero constraint for each latent vector and the
// Poisson likelihood over all N x T cells.
func (m *LerouxST) Likelihood() float64 {
	sPhi := sigma(m.tauPhi)
	sDelta := sigma(m.tauDelta)
	g := m.p.Graph

	l := spatial.Leroux(m.rhoPhi, m.phi, g.Node1, g.Node2)
	l += spatial.SumZero(m.phi, m.sumZeroVar)
	l += spatial.Leroux(m.rhoDelta, m.delta, g.Node1, g.Node2)
	l += spatial.SumZero(m.delta, m.sumZeroVar)

	for i := 0; i < m.p.N; i++ {
		slope := m.alpha + sDelta*m.delta[i]
		for t := 0; t < m.p.T; t++ {
			eta := m.p.LogE[i][t] + m.beta0 + m.beta1*m.p.X[i][t] +
				sPhi*m.phi[i] + slope*m.p.TDiff[t]
			l += poissonLogLike(m.p.Y[i][t], eta)
		}
	}
	return l
}

// Summary returns the model summary.
func (m *LerouxST) Summary() interface{} {
	return modelSummary{
		Variant:         "lerouxst",
		NAreas:          m.p.N,
		NEdges:          m.p.Graph.NEdges(),
		NTimeSteps:      m.p.T,
		SumZeroVariance: m.sumZeroVar,
	}
}
