package areal

import (
	"testing"

	"github.com/gonum/matrix/mat64"
)

func TestGraphTwoAreas(tst *testing.T) {
	// two mutually adjacent areas
	g, err := NewGraph([][]int{{1}, {0}}, 2)
	if err != nil {
		tst.Error("Error: ", err)
	}
	if g.NEdges() != 2 {
		tst.Errorf("Expected 2 directed edges, got %d", g.NEdges())
	}
	if g.Node1[0] != 0 || g.Node1[1] != 1 || g.Node2[0] != 1 || g.Node2[1] != 0 {
		tst.Errorf("Expected node1=[0 1], node2=[1 0], got %v, %v", g.Node1, g.Node2)
	}
}

func TestGraphDoubleCounting(tst *testing.T) {
	// a path 0-1-2 plus edge 0-2: 3 undirected pairs
	g, err := NewGraph([][]int{{1, 2}, {0, 2}, {0, 1}}, 3)
	if err != nil {
		tst.Error("Error: ", err)
	}
	if g.NEdges() != 6 {
		tst.Errorf("Expected twice the undirected pair count (6), got %d", g.NEdges())
	}
	if g.NPairs() != 3 {
		tst.Errorf("Expected 3 neighbor pairs, got %d", g.NPairs())
	}
	for k := range g.Node1 {
		if g.Matrix.At(g.Node1[k], g.Node2[k]) != 1 {
			tst.Errorf("Edge %d->%d not in matrix", g.Node1[k], g.Node2[k])
		}
	}
}

func TestGraphIsland(tst *testing.T) {
	g, err := NewGraph([][]int{{1}, {0}, {}}, 3)
	if err != nil {
		tst.Error("Error: ", err)
	}
	if g.NEdges() != 2 {
		tst.Errorf("Expected 2 directed edges, got %d", g.NEdges())
	}
}

func TestGraphErrors(tst *testing.T) {
	if _, err := NewGraph([][]int{{1}, {}}, 2); err == nil {
		tst.Error("Expected error for one-sided neighbor relation")
	}
	if _, err := NewGraph([][]int{{5}, {0}}, 2); err == nil {
		tst.Error("Expected error for out-of-range neighbor")
	}
	if _, err := NewGraph([][]int{{0}}, 1); err == nil {
		tst.Error("Expected error for self-neighbor")
	}
	if _, err := NewGraph([][]int{{1}}, 2); err == nil {
		tst.Error("Expected error for missing neighbor list")
	}
}

func TestGraphFromMatrix(tst *testing.T) {
	m := mat64.NewSymDense(2, []float64{0, 1, 1, 0})
	g := GraphFromMatrix(m)
	if g.NEdges() != 2 || g.Node1[0] != 0 || g.Node2[0] != 1 {
		tst.Errorf("Unexpected edges: %v, %v", g.Node1, g.Node2)
	}
}
