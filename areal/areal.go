// Package areal provides the data model for areal disease-mapping:
// county-level counts with covariates, the neighborhood graph, and
// synthetic spatio-temporal panels.
package areal

import (
	"fmt"
	"math"

	"github.com/op/go-logging"
)

// log is the global logging variable.
var log = logging.MustGetLogger("areal")

// Area is a single spatial unit. Areas are immutable once loaded.
type Area struct {
	// Index is the zero-based area index.
	Index int
	// Y is the observed count.
	Y int
	// E is the expected count, used as a Poisson offset in log space.
	E float64
	// X is the covariate.
	X float64
}

// Dataset stores the areas together with their neighborhood graph.
type Dataset struct {
	Areas []Area
	Graph *Graph
}

// N returns the number of areas.
func (d *Dataset) N() int {
	return len(d.Areas)
}

// Validate checks that the dataset can feed a Poisson disease-mapping
// model: non-negative counts, positive expected counts, and a graph
// matching the number of areas.
func (d *Dataset) Validate() error {
	if d.Graph == nil {
		return fmt.Errorf("dataset has no neighborhood graph")
	}
	if d.Graph.N != len(d.Areas) {
		return fmt.Errorf("graph has %d areas, dataset has %d",
			d.Graph.N, len(d.Areas))
	}
	for _, a := range d.Areas {
		if a.Y < 0 {
			return fmt.Errorf("area %d: negative observed count %d", a.Index, a.Y)
		}
		if a.E <= 0 || math.IsInf(a.E, 0) || math.IsNaN(a.E) {
			return fmt.Errorf("area %d: expected count must be positive and finite, got %v", a.Index, a.E)
		}
	}
	return nil
}

// Counts returns the observed counts as a slice.
func (d *Dataset) Counts() []int {
	y := make([]int, len(d.Areas))
	for i, a := range d.Areas {
		y[i] = a.Y
	}
	return y
}

// Covariates returns the covariate values as a slice.
func (d *Dataset) Covariates() []float64 {
	x := make([]float64, len(d.Areas))
	for i, a := range d.Areas {
		x[i] = a.X
	}
	return x
}

// LogOffsets returns log(E) for every area.
func (d *Dataset) LogOffsets() []float64 {
	le := make([]float64, len(d.Areas))
	for i, a := range d.Areas {
		le[i] = math.Log(a.E)
	}
	return le
}
