package areal

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
)

// Graph is the undirected neighborhood graph over areas. It is stored
// both as a dense symmetric 0/1 matrix and as a directed edge list.
// Every undirected pair appears twice in the edge list (i->j and j->i);
// the pairwise-difference potentials rely on this doubling together
// with their -0.5 coefficient.
type Graph struct {
	// N is the number of areas.
	N int
	// Matrix is the N x N 0/1 adjacency matrix.
	Matrix *mat64.SymDense
	// Node1 and Node2 list every directed edge: Matrix[Node1[k], Node2[k]] == 1.
	Node1 []int
	Node2 []int
}

// NEdges returns the number of directed edges, i.e. twice the number of
// unordered neighbor pairs.
func (g *Graph) NEdges() int {
	return len(g.Node1)
}

// NPairs returns the number of unordered neighbor pairs.
func (g *Graph) NPairs() int {
	return len(g.Node1) / 2
}

// NewGraph builds a Graph from per-area 0-based neighbor lists. The
// neighbor relation must be mutual; a one-sided relation is an error
// rather than silently symmetrized.
func NewGraph(neighbors [][]int, n int) (*Graph, error) {
	if len(neighbors) != n {
		return nil, fmt.Errorf("got neighbor lists for %d areas, expected %d", len(neighbors), n)
	}
	m := mat64.NewSymDense(n, nil)
	for i, nbs := range neighbors {
		for _, j := range nbs {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("area %d: neighbor index %d out of range [0, %d)", i, j, n)
			}
			if j == i {
				return nil, fmt.Errorf("area %d: self-neighbor", i)
			}
			m.SetSym(i, j, 1)
		}
	}
	// mutuality check against the original lists
	for i, nbs := range neighbors {
		seen := make(map[int]bool, len(nbs))
		for _, j := range nbs {
			seen[j] = true
		}
		for j := 0; j < n; j++ {
			if m.At(i, j) != 0 && !seen[j] {
				return nil, fmt.Errorf("asymmetric adjacency: area %d lists %d but not vice versa", j, i)
			}
		}
	}
	g := GraphFromMatrix(m)
	log.Debugf("graph: %d areas, %d directed edges", g.N, g.NEdges())
	return g, nil
}

// GraphFromMatrix builds a Graph from an explicit symmetric adjacency
// matrix by enumerating all non-zero entries row-major. Each undirected
// edge yields two directed entries.
func GraphFromMatrix(m *mat64.SymDense) *Graph {
	n := m.Symmetric()
	g := &Graph{N: n, Matrix: m}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m.At(i, j) != 0 {
				g.Node1 = append(g.Node1, i)
				g.Node2 = append(g.Node2, j)
			}
		}
	}
	return g
}
