package smodel

import (
	"github.com/spatialepi/diseasemap/areal"
	"github.com/spatialepi/diseasemap/dist"
	"github.com/spatialepi/diseasemap/sample"
	"github.com/spatialepi/diseasemap/spatial"
)

// BYM is the Besag-York-Mollié model: an independent normal effect
// theta plus a pure ICAR spatial effect phi per area,
//
//	log mu_i = beta0 + beta1*x_i + log E_i + theta_i + sigma_phi*phi_i .
type BYM struct {
	*BaseModel

	y    []int
	x    []float64
	logE []float64
	g    *areal.Graph

	beta0    float64
	beta1    float64
	tauTheta float64
	tauPhi   float64
	theta    []float64
	phi      []float64
}

// NewBYM creates a BYM model for the dataset.
func NewBYM(d *areal.Dataset) *BYM {
	n := d.N()
	m := &BYM{
		y:     d.Counts(),
		x:     d.Covariates(),
		logE:  d.LogOffsets(),
		g:     d.Graph,
		theta: make([]float64, n),
		phi:   make([]float64, n),
	}
	m.BaseModel = NewBaseModel(m)
	m.setupParameters()
	m.SetDefaults()
	return m
}

// Copy returns a deep copy of the model.
func (m *BYM) Copy() sample.Sampleable {
	newM := &BYM{
		y:        m.y,
		x:        m.x,
		logE:     m.logE,
		g:        m.g,
		beta0:    m.beta0,
		beta1:    m.beta1,
		tauTheta: m.tauTheta,
		tauPhi:   m.tauPhi,
		theta:    append([]float64(nil), m.theta...),
		phi:      append([]float64(nil), m.phi...),
	}
	newM.BaseModel = m.copyBase(newM)
	newM.setupParameters()
	return newM
}

func (m *BYM) addParameters(gen sample.FloatParameterGenerator) {
	m.addScalar(gen, &m.beta0, "beta0", sample.NormalPrior(0, 5), 0.05)
	m.addScalar(gen, &m.beta1, "beta1", sample.NormalPrior(0, 5), 0.05)
	m.addPrecision(gen, &m.tauTheta, "tau_theta")
	m.addPrecision(gen, &m.tauPhi, "tau_phi")
	m.addVector(gen, m.theta, "theta", 0.1)
	m.addVector(gen, m.phi, "phi", 0.1)
}

// SetDefaults resets the parameters to their default values.
func (m *BYM) SetDefaults() {
	m.beta0 = 0
	m.beta1 = 0
	m.tauTheta = 1
	m.tauPhi = 1
	for i := range m.theta {
		m.theta[i] = 0
		m.phi[i] = 0
	}
}

// Likelihood computes the joint unnormalized log-posterior: the ICAR
// potential and sum-to-zero constraints of the latent vectors, the iid
// normal density of theta, and the Poisson likelihood.
func (m *BYM) Likelihood() float64 {
	sTheta := sigma(m.tauTheta)
	sPhi := sigma(m.tauPhi)

	l := spatial.ICAR(m.phi, m.g.Node1, m.g.Node2)
	l += spatial.SumZero(m.phi, m.sumZeroVar)
	l += spatial.SumZero(m.theta, m.sumZeroVar)

	for i, y := range m.y {
		l += dist.NormalLogProb(0, sTheta, m.theta[i])
		eta := m.beta0 + m.beta1*m.x[i] + m.logE[i] + m.theta[i] + sPhi*m.phi[i]
		l += poissonLogLike(y, eta)
	}
	return l
}

// Summary returns the model summary.
func (m *BYM) Summary() interface{} {
	return modelSummary{
		Variant:         "bym",
		NAreas:          len(m.y),
		NEdges:          m.g.NEdges(),
		SumZeroVariance: m.sumZeroVar,
	}
}
