package smodel

import (
	"github.com/spatialepi/diseasemap/areal"
	"github.com/spatialepi/diseasemap/sample"
	"github.com/spatialepi/diseasemap/spatial"
)

// Leroux is the static Leroux model: a single spatial effect phi whose
// prior interpolates between ICAR smoothing and independent effects via
// the mixing parameter rho,
//
//	log mu_i = beta0 + beta1*x_i + log E_i + sigma_phi*phi_i .
type Leroux struct {
	*BaseModel

	y    []int
	x    []float64
	logE []float64
	g    *areal.Graph

	beta0  float64
	beta1  float64
	tauPhi float64
	rho    float64
	phi    []float64
}

// NewLeroux creates a static Leroux model for the dataset.
func NewLeroux(d *areal.Dataset) *Leroux {
	m := &Leroux{
		y:    d.Counts(),
		x:    d.Covariates(),
		logE: d.LogOffsets(),
		g:    d.Graph,
		phi:  make([]float64, d.N()),
	}
	m.BaseModel = NewBaseModel(m)
	m.setupParameters()
	m.SetDefaults()
	return m
}

// Copy returns a deep copy of the model.
func (m *Leroux) Copy() sample.Sampleable {
	newM := &Leroux{
		y:      m.y,
		x:      m.x,
		logE:   m.logE,
		g:      m.g,
		beta0:  m.beta0,
		beta1:  m.beta1,
		tauPhi: m.tauPhi,
		rho:    m.rho,
		phi:    append([]float64(nil), m.phi...),
	}
	newM.BaseModel = m.copyBase(newM)
	newM.setupParameters()
	return newM
}

func (m *Leroux) addParameters(gen sample.FloatParameterGenerator) {
	m.addScalar(gen, &m.beta0, "beta0", sample.NormalPrior(0, 5), 0.05)
	m.addScalar(gen, &m.beta1, "beta1", sample.NormalPrior(0, 5), 0.05)
	m.addPrecision(gen, &m.tauPhi, "tau_phi")
	m.addMixing(gen, &m.rho, "rho")
	m.addVector(gen, m.phi, "phi", 0.1)
}

// SetDefaults resets the parameters to their default values.
func (m *Leroux) SetDefaults() {
	m.beta0 = 0
	m.beta1 = 0
	m.tauPhi = 1
	m.rho = 0.5
	for i := range m.phi {
		m.phi[i] = 0
	}
}

// Likelihood computes the joint unnormalized log-posterior. Both Leroux
// terms are evaluated at every rho; at rho=1 the model reduces to a pure
// ICAR prior and at rho=0 to an independent ridge prior.
func (m *Leroux) Likelihood() float64 {
	sPhi := sigma(m.tauPhi)

	l := spatial.Leroux(m.rho, m.phi, m.g.Node1, m.g.Node2)
	l += spatial.SumZero(m.phi, m.sumZeroVar)

	for i, y := range m.y {
		eta := m.beta0 + m.beta1*m.x[i] + m.logE[i] + sPhi*m.phi[i]
		l += poissonLogLike(y, eta)
	}
	return l
}

// Summary returns the model summary.
func (m *Leroux) Summary() interface{} {
	return modelSummary{
		Variant:         "leroux",
		NAreas:          len(m.y),
		NEdges:          m.g.NEdges(),
		SumZeroVariance: m.sumZeroVar,
	}
}
