// Package smodel provides Bayesian disease-mapping models for areal
// count data: BYM, Leroux and a linear-time spatio-temporal Leroux
// variant. Models declare named parameters with priors and expose the
// joint unnormalized log-posterior to the samplers.
package smodel

import (
	"fmt"
	"math"

	"github.com/op/go-logging"

	"github.com/spatialepi/diseasemap/dist"
	"github.com/spatialepi/diseasemap/sample"
	"github.com/spatialepi/diseasemap/spatial"
)

// log is the global logging variable.
var log = logging.MustGetLogger("smodel")

// ArealModel is an extension of sample.Sampleable for areal
// disease-mapping models.
type ArealModel interface {
	sample.Sampleable
	// SetAdaptive enables adaptive MCMC for the model.
	SetAdaptive(*sample.AdaptiveSettings)
	// SetSumZeroVariance changes the variance of the soft sum-to-zero
	// constraints.
	SetSumZeroVariance(float64)
	// Summary returns the model summary for the JSON output.
	Summary() interface{}
}

// Model is the variant-specific part of a model: it registers all the
// parameters of the variant.
type Model interface {
	addParameters(sample.FloatParameterGenerator)
}

// BaseModel stores the parameter registry and the settings shared by all
// variants.
type BaseModel struct {
	Model

	parameters sample.FloatParameters
	as         *sample.AdaptiveSettings
	sumZeroVar float64
}

// NewBaseModel creates a BaseModel for the given variant implementation.
func NewBaseModel(model Model) *BaseModel {
	return &BaseModel{
		Model:      model,
		sumZeroVar: spatial.DefaultSumZeroVariance,
	}
}

// GetFloatParameters returns the flat parameter vector.
func (m *BaseModel) GetFloatParameters() sample.FloatParameters {
	return m.parameters
}

// SetAdaptive enables adaptive MCMC and re-registers the parameters with
// adaptive proposals.
func (m *BaseModel) SetAdaptive(as *sample.AdaptiveSettings) {
	m.as = as
	m.setupParameters()
}

// SetSumZeroVariance changes the variance of the soft sum-to-zero
// constraints.
func (m *BaseModel) SetSumZeroVariance(v float64) {
	if v <= 0 {
		panic("sum-to-zero variance must be > 0")
	}
	m.sumZeroVar = v
}

// setupParameters registers the variant parameters, replacing any
// previous registration.
func (m *BaseModel) setupParameters() {
	m.parameters = nil
	var gen sample.FloatParameterGenerator = sample.BasicFloatParameterGenerator
	if m.as != nil {
		gen = m.as.ParameterGenerator
	}
	m.Model.addParameters(gen)
}

// copyBase returns a BaseModel copy bound to a new variant
// implementation. The caller re-registers parameters afterwards.
func (m *BaseModel) copyBase(model Model) *BaseModel {
	return &BaseModel{
		Model:      model,
		as:         m.as,
		sumZeroVar: m.sumZeroVar,
	}
}

// flatPrior is used for latent effect vectors whose density is carried
// by the potentials inside Likelihood.
func flatPrior(x float64) float64 {
	return 0
}

// addScalar registers one scalar parameter.
func (m *BaseModel) addScalar(gen sample.FloatParameterGenerator, v *float64, name string,
	prior func(float64) float64, proposalSD float64) sample.FloatParameter {
	par := gen(v, name)
	par.SetPriorFunc(prior)
	par.SetProposalFunc(sample.NormalProposal(proposalSD))
	m.parameters.Append(par)
	return par
}

// addVector registers one latent effect vector as individual parameters
// name0 .. name{n-1} with a flat prior.
func (m *BaseModel) addVector(gen sample.FloatParameterGenerator, v []float64, name string,
	proposalSD float64) {
	for i := range v {
		par := gen(&v[i], fmt.Sprintf("%s%d", name, i))
		par.SetPriorFunc(flatPrior)
		par.SetProposalFunc(sample.NormalProposal(proposalSD))
		m.parameters.Append(par)
	}
}

// addPrecision registers a precision parameter with its gamma hyperprior.
func (m *BaseModel) addPrecision(gen sample.FloatParameterGenerator, v *float64, name string) {
	par := m.addScalar(gen, v, name, sample.GammaPrior(2, 2, false), 0.05)
	par.SetMin(0)
}

// addMixing registers a spatial-smoothing mixing parameter with its beta
// hyperprior on [0, 1].
func (m *BaseModel) addMixing(gen sample.FloatParameterGenerator, v *float64, name string) {
	par := m.addScalar(gen, v, name, sample.BetaPrior(1, 1), 0.05)
	par.SetMin(0)
	par.SetMax(1)
}

// poissonLogLike returns the Poisson log-likelihood of count y with
// log-rate eta. Overflowing rates yield -Inf, which the samplers reject.
func poissonLogLike(y int, eta float64) float64 {
	return dist.PoissonLogProb(math.Exp(eta), y)
}

// sigma converts a precision into a standard deviation.
func sigma(tau float64) float64 {
	return 1 / math.Sqrt(tau)
}

// modelSummary is the JSON summary shared by all variants.
type modelSummary struct {
	Variant         string  `json:"variant"`
	NAreas          int     `json:"nAreas"`
	NEdges          int     `json:"nEdges"`
	NTimeSteps      int     `json:"nTimeSteps,omitempty"`
	SumZeroVariance float64 `json:"sumZeroVariance"`
}
