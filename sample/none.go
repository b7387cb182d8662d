package sample

// None is a sampler which computes the initial log-posterior and exits.
type None struct {
	BaseSampler
}

// NewNone creates a sampler which evaluates the model once.
func NewNone() *None {
	return &None{}
}

// Run evaluates the log-posterior at the current parameter values.
func (n *None) Run(iterations int) {
	n.startRun()
	defer n.finishRun()
	l := n.Likelihood()
	n.calls++
	n.updateMax(l)
	n.PrintHeader()
	n.PrintLine(l)
}
