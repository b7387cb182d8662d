package main

import (
	"fmt"
	"os"

	"github.com/spatialepi/diseasemap/sample"
	"github.com/spatialepi/diseasemap/smodel"
)

// samplerSettings stores settings for creation of a new sampler.
type samplerSettings struct {
	method string
	model  smodel.ArealModel

	iterations int

	report int

	accept   int
	adaptive bool
	skip     int
	maxAdapt int

	trajF *os.File
}

// newSamplerSettings creates a new samplerSettings from
// the command line parameters (global variables).
func newSamplerSettings(model smodel.ArealModel, trajF *os.File) *samplerSettings {
	return &samplerSettings{
		method: *method,
		model:  model,

		iterations: *iterations,

		report: *report,

		accept:   *accept,
		adaptive: *adaptive,
		skip:     *skip,
		maxAdapt: *maxAdapt,

		trajF: trajF,
	}
}

// create creates and initializes a new sampler from samplerSettings.
func (ss *samplerSettings) create() (sample.Sampler, error) {
	// iterations to skip before adapting, for adaptive mcmc
	if ss.adaptive {
		as := sample.NewAdaptiveSettings()
		if ss.skip < 0 {
			ss.skip = ss.iterations / 20
		}
		if ss.maxAdapt < 0 {
			ss.maxAdapt = ss.iterations / 5
		}
		log.Infof("Setting adaptive parameters, skip=%v, maxAdapt=%v", ss.skip, ss.maxAdapt)
		as.Skip = ss.skip
		as.MaxAdapt = ss.maxAdapt
		ss.model.SetAdaptive(as)
	}

	s, err := ss.getSampler()
	if err != nil {
		return nil, err
	}
	log.Infof("Using %s method.", ss.method)

	s.SetOutput(ss.trajF)
	s.SetSampleable(ss.model)

	s.SetReportPeriod(ss.report)

	return s, nil
}

// getSampler returns a sampler from settings.
func (ss *samplerSettings) getSampler() (sample.Sampler, error) {
	switch ss.method {
	case "mh":
		chain := sample.NewMH(false, 0)
		chain.AccPeriod = ss.accept
		return chain, nil
	case "annealing":
		annealingSkip := ss.maxAdapt
		if annealingSkip < 0 {
			annealingSkip = 0
		}
		chain := sample.NewMH(true, annealingSkip)
		chain.AccPeriod = ss.accept
		return chain, nil
	case "lbfgsb":
		return sample.NewLBFGSB(), nil
	case "none":
		return sample.NewNone(), nil
	}
	return nil, fmt.Errorf("Unknown sampling method: %s", ss.method)
}
