package sample

import (
	"math"

	lbfgsb "github.com/idavydov/go-lbfgsb"
)

// LBFGSB is a maximum-a-posteriori estimator using the bounded
// limited-memory BFGS method with numerical gradients. It is useful for
// finding a starting point before sampling.
type LBFGSB struct {
	BaseSampler
	// dH is the step for the central-difference gradient.
	dH   float64
	grad []float64
}

// NewLBFGSB creates a new LBFGSB estimator.
func NewLBFGSB() *LBFGSB {
	return &LBFGSB{
		dH: 1e-6,
	}
}

// logPosterior is the objective: log-posterior plus parameter priors.
func logPosterior(m Sampleable) float64 {
	l := m.Likelihood()
	for _, par := range m.GetFloatParameters() {
		l += par.Prior()
	}
	return l
}

// Logger reports optimization progress.
func (l *LBFGSB) Logger(info *lbfgsb.OptimizationIterationInformation) {
	l.i = info.Iteration
	l.parameters.SetValues(info.X)
	l.PrintLine(-info.F)
	if l.interrupted() {
		log.Fatal("Interrupted during optimization, exiting")
	}
}

// EvaluateFunction returns the negated objective at x.
func (l *LBFGSB) EvaluateFunction(x []float64) float64 {
	if !l.parameters.ValuesInRange(x) {
		return math.Inf(+1)
	}

	l.parameters.SetValues(x)

	L := logPosterior(l.Sampleable)
	l.calls++
	if L > l.maxL {
		l.maxL = L
		l.maxLPar = l.parameters.Values(l.maxLPar)
	}
	return -L
}

// EvaluateGradient computes a central-difference numerical gradient on
// model copies so the sampler state stays untouched.
func (l *LBFGSB) EvaluateGradient(x []float64) (grad []float64) {
	if l.grad == nil {
		l.grad = make([]float64, len(x))
	}
	grad = l.grad
	for i := range x {
		no1 := l.Sampleable.Copy()
		par1 := no1.GetFloatParameters()
		par1.SetValues(x)
		par1[i].Set(x[i] - l.dH)
		l1 := -logPosterior(no1)
		l.calls++

		no2 := no1.Copy()
		par2 := no2.GetFloatParameters()
		par2[i].Set(x[i] + l.dH)
		l2 := -logPosterior(no2)
		l.calls++

		grad[i] = (l2 - l1) / 2 / l.dH
	}
	if l.interrupted() {
		log.Fatal("Interrupted during optimization, exiting")
	}
	return
}

// Run starts the optimization.
func (l *LBFGSB) Run(iterations int) {
	l.startRun()
	defer l.finishRun()

	l.PrintHeader()
	bounds := make([][2]float64, len(l.parameters))
	for i, par := range l.parameters {
		bounds[i][0] = par.GetMin() + 1e-5
		bounds[i][1] = par.GetMax() - 1e-5
	}

	opt := new(lbfgsb.Lbfgsb)
	opt.SetApproximationSize(10)
	opt.SetFTolerance(1e-9)
	opt.SetGTolerance(1e-9)

	opt.SetBounds(bounds)
	opt.SetLogger(l.Logger)

	_, exitStatus := opt.Minimize(l, l.parameters.Values(nil))

	log.Info("Exit status: ", exitStatus)
	if l.maxLPar != nil {
		l.parameters.SetValues(l.maxLPar)
	}
	l.SaveCheckpoint(l.maxL, true)
	if !l.Quiet {
		log.Infof("Likelihood function calls: %v", l.calls)
	}
	l.PrintLine(l.maxL)
}
