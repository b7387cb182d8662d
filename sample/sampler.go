// Package sample implements Markov-chain Monte-Carlo sampling and MAP
// estimation for models exposing a flat vector of named parameters with
// priors and an unnormalized log-posterior.
package sample

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/op/go-logging"

	"github.com/spatialepi/diseasemap/checkpoint"
)

// log is the global logging variable.
var log = logging.MustGetLogger("sample")

// Sampleable is a model the samplers can work with. Likelihood returns
// the joint unnormalized log-posterior of everything except the
// per-parameter priors, which are attached to the parameters themselves.
type Sampleable interface {
	// GetFloatParameters returns the flat parameter vector.
	GetFloatParameters() FloatParameters
	// Likelihood computes the unnormalized log-posterior for the
	// current parameter values.
	Likelihood() float64
	// Copy returns a deep copy with an independent parameter vector.
	Copy() Sampleable
	// SetDefaults resets parameters to their default values.
	SetDefaults()
}

// Sampler is a sampler or optimizer running on a Sampleable.
type Sampler interface {
	SetSampleable(Sampleable)
	WatchSignals(...os.Signal)
	SetReportPeriod(period int)
	SetOutput(io.Writer)
	SetCheckpointIO(*checkpoint.CheckpointIO)
	RestoreCheckpoint() (int, error)
	Run(iterations int)
	GetMaxL() float64
	GetMaxLParameters() map[string]float64
	PrintResults()
	Summary() Summary
}

// Summary stores the run summary of a sampler.
type Summary struct {
	// MaxLnL is the maximum log-posterior encountered.
	MaxLnL float64 `json:"maxLnL"`
	// MaxLParameters are the parameter values at MaxLnL.
	MaxLParameters map[string]float64 `json:"maxLParameters"`
	// Iterations is the number of iterations performed.
	Iterations int `json:"iterations"`
	// Calls is the number of likelihood evaluations.
	Calls int `json:"likelihoodCalls"`
	// Time is the run time in seconds.
	Time float64 `json:"time"`
}

// BaseSampler provides the shared plumbing: trajectory output, signal
// watching, checkpointing and maximum tracking.
type BaseSampler struct {
	Sampleable
	parameters FloatParameters

	i     int
	calls int

	maxL    float64
	maxLPar []float64

	repPeriod int
	output    io.Writer
	Quiet     bool

	sig chan os.Signal
	cp  *checkpoint.CheckpointIO

	startTime time.Time
	deltaT    time.Duration
}

// SetSampleable sets the model to sample from.
func (b *BaseSampler) SetSampleable(m Sampleable) {
	b.Sampleable = m
	b.parameters = m.GetFloatParameters()
	b.maxL = math.Inf(-1)
}

// WatchSignals installs a signal handler stopping the run cleanly.
func (b *BaseSampler) WatchSignals(sigs ...os.Signal) {
	b.sig = make(chan os.Signal, 1)
	signal.Notify(b.sig, sigs...)
}

// SetReportPeriod sets the trajectory reporting period.
func (b *BaseSampler) SetReportPeriod(period int) {
	b.repPeriod = period
}

// SetOutput sets the trajectory output writer.
func (b *BaseSampler) SetOutput(w io.Writer) {
	b.output = w
}

// SetCheckpointIO enables periodic state checkpoints.
func (b *BaseSampler) SetCheckpointIO(cp *checkpoint.CheckpointIO) {
	b.cp = cp
}

func (b *BaseSampler) startRun() {
	b.startTime = time.Now()
	if b.repPeriod <= 0 {
		b.repPeriod = 10
	}
}

func (b *BaseSampler) finishRun() {
	b.deltaT = time.Since(b.startTime)
	log.Noticef("Sampling time: %v", b.deltaT)
}

// interrupted reports whether a watched signal arrived.
func (b *BaseSampler) interrupted() bool {
	select {
	case s := <-b.sig:
		log.Warningf("Received signal %v, exiting.", s)
		return true
	default:
	}
	return false
}

// PrintHeader prints the trajectory header.
func (b *BaseSampler) PrintHeader() {
	if b.Quiet || b.output == nil {
		return
	}
	fmt.Fprintf(b.output, "iteration\tlikelihood\t%s\n", b.parameters.NamesString())
}

// PrintLine prints one trajectory line.
func (b *BaseSampler) PrintLine(l float64) {
	if b.Quiet || b.output == nil {
		return
	}
	fmt.Fprintf(b.output, "%d\t%f\t%s\n", b.i, l, b.parameters.ValuesString())
}

// PrintResults logs the best point found.
func (b *BaseSampler) PrintResults() {
	if b.Quiet {
		return
	}
	log.Noticef("Maximum log-posterior: %v", b.maxL)
	for name, v := range b.GetMaxLParameters() {
		log.Infof("%s=%v", name, v)
	}
}

// updateMax keeps track of the best point seen so far.
func (b *BaseSampler) updateMax(l float64) {
	if l > b.maxL {
		b.maxL = l
		b.maxLPar = b.parameters.Values(b.maxLPar)
	}
}

// GetMaxL returns the maximum log-posterior encountered.
func (b *BaseSampler) GetMaxL() float64 {
	return b.maxL
}

// GetMaxLParameters returns parameter values at the maximum.
func (b *BaseSampler) GetMaxLParameters() map[string]float64 {
	res := make(map[string]float64, len(b.parameters))
	if b.maxLPar == nil {
		return res
	}
	for i, par := range b.parameters {
		res[par.Name()] = b.maxLPar[i]
	}
	return res
}

// SaveCheckpoint saves the sampler state if a checkpoint writer is
// configured and enough time has passed (or final is true).
func (b *BaseSampler) SaveCheckpoint(l float64, final bool) {
	if b.cp == nil {
		return
	}
	if !final && !b.cp.Old() {
		return
	}
	data := &checkpoint.CheckpointData{
		Parameters: b.parameters.ValuesMap(),
		LnPost:     l,
		Iter:       b.i,
		Final:      final,
	}
	if err := b.cp.Save(data); err != nil {
		log.Error("Error saving checkpoint: ", err)
	}
}

// RestoreCheckpoint loads parameter values from a checkpoint if one is
// present. It returns the stored iteration number (0 if none).
func (b *BaseSampler) RestoreCheckpoint() (int, error) {
	if b.cp == nil {
		return 0, nil
	}
	data, err := b.cp.Load()
	if err != nil || data == nil {
		return 0, err
	}
	if err := b.parameters.SetFromMap(data.Parameters); err != nil {
		return 0, err
	}
	return data.Iter, nil
}

// Summary returns the sampler run summary.
func (b *BaseSampler) Summary() Summary {
	return Summary{
		MaxLnL:         b.maxL,
		MaxLParameters: b.GetMaxLParameters(),
		Iterations:     b.i,
		Calls:          b.calls,
		Time:           b.deltaT.Seconds(),
	}
}
