package areal

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ColumnSpec names the columns of the input table.
type ColumnSpec struct {
	// Observed is the observed-count column.
	Observed string
	// Expected is the expected-count column.
	Expected string
	// Covariate is the covariate column.
	Covariate string
	// Neighbors is the neighbor-list column, a bracketed,
	// comma-separated, 1-based index list per row.
	Neighbors string
}

// DefaultColumns returns the column names used by the reference
// cancer-incidence tables.
func DefaultColumns() ColumnSpec {
	return ColumnSpec{
		Observed:  "y",
		Expected:  "E",
		Covariate: "x",
		Neighbors: "adj",
	}
}

// ReadCSV reads a tabular file with a header row and materializes a
// Dataset, including the neighborhood graph from the neighbor-list
// column. Row numbers in errors are 1-based and include the header.
func ReadCSV(r io.Reader, spec ColumnSpec) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %v", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	var idx [4]int
	for i, name := range []string{spec.Observed, spec.Expected, spec.Covariate, spec.Neighbors} {
		j, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
		idx[i] = j
	}

	var (
		areas     []Area
		neighbors [][]int
	)
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %v", row, err)
		}

		y, err := parseCount(record[idx[0]])
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %v", row, spec.Observed, err)
		}
		e, err := strconv.ParseFloat(strings.TrimSpace(record[idx[1]]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %v", row, spec.Expected, err)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(record[idx[2]]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %v", row, spec.Covariate, err)
		}
		nbs, err := ParseNeighbors(record[idx[3]])
		if err != nil {
			return nil, fmt.Errorf("row %d: %v", row, err)
		}

		areas = append(areas, Area{Index: len(areas), Y: y, E: e, X: x})
		neighbors = append(neighbors, nbs)
	}

	graph, err := NewGraph(neighbors, len(areas))
	if err != nil {
		return nil, err
	}
	d := &Dataset{Areas: areas, Graph: graph}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	log.Infof("Read %d areas, %d directed edges", d.N(), graph.NEdges())
	return d, nil
}

// parseCount parses a non-negative integer count. Values like "12.0"
// coming from float-typed exports are accepted as long as they are
// integral.
func parseCount(s string) (int, error) {
	t := strings.TrimSpace(s)
	if v, err := strconv.Atoi(t); err == nil {
		if v < 0 {
			return 0, fmt.Errorf("negative count %d", v)
		}
		return v, nil
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("bad count %q: %v", s, err)
	}
	if f < 0 || f != math.Trunc(f) {
		return 0, fmt.Errorf("count %q is not a non-negative integer", s)
	}
	return int(f), nil
}
