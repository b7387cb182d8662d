package main

import (
	"fmt"
	"os"
	"syscall"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/spatialepi/diseasemap/checkpoint"
	"github.com/spatialepi/diseasemap/sample"
	"github.com/spatialepi/diseasemap/smodel"
)

func run() (summary *RunSummary) {
	startTime := time.Now()
	summary = &RunSummary{
		Version:     version,
		CommandLine: os.Args,
		Seed:        *seed,
	}

	data, err := readData()
	if err != nil {
		log.Fatal(err)
	}

	ms := newModelSettings(data)
	m, err := ms.createInitalized()
	if err != nil {
		log.Fatal(err)
	}

	if *burnIn < 0 {
		*burnIn = *iterations / 5
	}
	if err := checkSamplingFlags(*iterations, *burnIn, *thin, *accept); err != nil {
		log.Fatal(err)
	}

	trajF := os.Stdout
	if *outF != "" {
		trajF, err = os.Create(*outF)
		if err != nil {
			log.Fatal("Error creating trajectory file:", err)
		}
		defer trajF.Close()
	}

	var posterior *sample.Trace

	if *method == "mh" && *nChains > 1 {
		posterior = runChains(m)
		summary.Chains = *nChains
	} else {
		posterior = runSingle(m, trajF, summary)
		if *method == "mh" {
			summary.Chains = 1
		}
	}

	summary.Model = m.Summary()

	if posterior != nil {
		summary.Draws = posterior.Len()
		summary.Posterior = posterior.Summarize(*level)
		logPosterior(summary.Posterior)
		if *outTrace != "" {
			f, err := os.Create(*outTrace)
			if err != nil {
				log.Error("Error creating trace file:", err)
			} else {
				if err := posterior.WriteTSV(f); err != nil {
					log.Error("Error writing trace: ", err)
				}
				f.Close()
			}
		}
	}

	deltaT := time.Since(startTime)
	log.Noticef("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	return
}

// runChains samples several independent chains concurrently and returns
// the pooled posterior trace.
func runChains(m smodel.ArealModel) *sample.Trace {
	if *adaptive {
		as := sample.NewAdaptiveSettings()
		if *skip < 0 {
			*skip = *iterations / 20
		}
		if *maxAdapt < 0 {
			*maxAdapt = *iterations / 5
		}
		log.Infof("Setting adaptive parameters, skip=%v, maxAdapt=%v", *skip, *maxAdapt)
		as.Skip = *skip
		as.MaxAdapt = *maxAdapt
		m.SetAdaptive(as)
	}

	log.Infof("Running %d chains, burn-in %d, thinning %d", *nChains, *burnIn, *thin)
	chains := sample.NewChains(*nChains)
	chains.BurnIn = *burnIn
	chains.Thin = *thin
	chains.AccPeriod = *accept
	chains.ReportPeriod = *report
	chains.Randomize = *randomize

	traces := chains.Run(m, *iterations)
	return sample.PooledTrace(traces)
}

// runSingle runs one sampler (or optimizer) on the model. For the
// Metropolis-Hastings method it returns the posterior trace, otherwise
// nil.
func runSingle(m smodel.ArealModel, trajF *os.File, summary *RunSummary) *sample.Trace {
	ss := newSamplerSettings(m, trajF)
	s, err := ss.create()
	if err != nil {
		log.Fatal(err)
	}

	var trace *sample.Trace
	if mh, ok := s.(*sample.MH); ok && *method == "mh" {
		mh.BurnIn = *burnIn
		mh.Thin = *thin
		trace = sample.NewTrace(m.GetFloatParameters().Names(nil))
		mh.SetTrace(trace)
	}

	if *checkpointFileName != "" {
		db, err := bolt.Open(*checkpointFileName, 0666, nil)
		if err != nil {
			log.Fatal("Error opening checkpoint database:", err)
		}
		defer db.Close()
		cp := checkpoint.NewCheckpointIO(db, []byte("sampler"), *checkpointInterval)
		s.SetCheckpointIO(cp)
		iter, err := s.RestoreCheckpoint()
		if err != nil {
			log.Error("Error restoring checkpoint: ", err)
		} else if iter > 0 {
			log.Noticef("Restored parameters from checkpoint (iter=%d)", iter)
		}
	}

	s.WatchSignals(os.Interrupt, syscall.SIGTERM)

	s.Run(*iterations)
	ssum := s.Summary()
	summary.Sampler = &ssum

	s.PrintResults()
	return trace
}

// checkSamplingFlags validates the sampling-related command-line values
// before they reach the engine.
func checkSamplingFlags(iterations, burnIn, thin, accept int) error {
	if iterations < 1 {
		return fmt.Errorf("need at least 1 iteration, got %d", iterations)
	}
	if burnIn >= iterations {
		return fmt.Errorf("burn-in (%d) must be smaller than the number of iterations (%d)", burnIn, iterations)
	}
	if thin < 1 {
		return fmt.Errorf("thinning period must be >= 1, got %d", thin)
	}
	if accept < 1 {
		return fmt.Errorf("acceptance-rate report period must be >= 1, got %d", accept)
	}
	return nil
}

// logPosterior prints the posterior summary table to the log.
func logPosterior(vars []sample.VariableSummary) {
	log.Noticef("%-12s%12s%12s%12s%12s%12s", "parameter", "mean", "sd", "lower", "median", "upper")
	for _, v := range vars {
		log.Noticef("%-12s%12.4f%12.4f%12.4f%12.4f%12.4f", v.Name, v.Mean, v.SD, v.Lower, v.Median, v.Upper)
	}
}
