package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spatialepi/diseasemap/areal"
	"github.com/spatialepi/diseasemap/smodel"
)

// modelSettings stores settings for creating a new model.
type modelSettings struct {
	name string
	data *areal.Dataset

	sumZeroVar float64

	// synthetic panel settings for the spatio-temporal variant
	timeSteps  int
	growthStep float64
	slopeSD    float64
	xNoiseSD   float64
	eNoiseSD   float64
	seed       int64

	startF    string
	randomize bool
}

// newModelSettings initializes modelSettings from global
// variables (command-line arguments).
func newModelSettings(data *areal.Dataset) *modelSettings {
	return &modelSettings{
		name: *model,
		data: data,

		sumZeroVar: *sumVar,

		timeSteps:  *timeSteps,
		growthStep: *growthStep,
		slopeSD:    *slopeSD,
		xNoiseSD:   *xNoiseSD,
		eNoiseSD:   *eNoiseSD,
		seed:       *seed,

		startF:    *startF,
		randomize: *randomize,
	}
}

// createModel creates a new model from modelSettings.
func (ms *modelSettings) createModel() (smodel.ArealModel, error) {
	switch ms.name {
	case "bym":
		log.Info("Using BYM model")
		return smodel.NewBYM(ms.data), nil
	case "leroux":
		log.Info("Using Leroux model")
		return smodel.NewLeroux(ms.data), nil
	case "lerouxst":
		log.Info("Using spatio-temporal Leroux model")
		cfg := areal.DefaultSyntheticPanelConfig()
		cfg.T = ms.timeSteps
		cfg.GrowthStep = ms.growthStep
		cfg.SlopeSD = ms.slopeSD
		cfg.XNoiseSD = ms.xNoiseSD
		cfg.ENoiseSD = ms.eNoiseSD
		cfg.Seed = uint64(ms.seed)
		panel, err := areal.NewSyntheticPanel(ms.data, cfg)
		if err != nil {
			return nil, err
		}
		return smodel.NewLerouxST(panel), nil
	}
	return nil, fmt.Errorf("Unknown model specification: %s", ms.name)
}

// createInitalized creates and initializes a model from modelSettings.
func (ms *modelSettings) createInitalized() (smodel.ArealModel, error) {
	m, err := ms.createModel()
	if err != nil {
		return nil, err
	}

	m.SetSumZeroVariance(ms.sumZeroVar)
	m.SetDefaults()

	log.Infof("Model has %d parameters.", len(m.GetFloatParameters()))

	if ms.startF != "" {
		l, err := lastLine(ms.startF)
		par := m.GetFloatParameters()
		if err == nil {
			err = par.ReadLine(l)
		}
		if err != nil {
			log.Debug("Reading start file as JSON")
			err2 := par.ReadFromJSON(ms.startF)
			// startF is neither trajectory nor correct JSON
			if err2 != nil {
				log.Error("Error reading start position from JSON:", err2)
				return nil, fmt.Errorf("Error reading start position from trajectory file: %v", err)
			}
		}
		if !par.InRange() {
			return nil, errors.New("Initial parameters are not in the range")
		}
	} else if ms.randomize {
		log.Info("Using uniform (in the boundaries) random starting point")
		par := m.GetFloatParameters()
		par.Randomize()
	}

	return m, nil
}

// readData loads the areal dataset from the input table using the
// column names from the command line.
func readData() (*areal.Dataset, error) {
	f, err := os.Open(*dataFileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	spec := areal.ColumnSpec{
		Observed:  *obsCol,
		Expected:  *expCol,
		Covariate: *covCol,
		Neighbors: *adjCol,
	}
	data, err := areal.ReadCSV(f, spec)
	if err != nil {
		return nil, err
	}
	log.Infof("Read %d areas, %d neighbor pairs", data.N(), data.Graph.NPairs())
	return data, nil
}
